package service

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"campaign-studio/models"
	"campaign-studio/repository"
	"campaign-studio/utils"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var (
	ErrBriefRequired  = errors.New("brief is required")
	ErrUnknownProduct = errors.New("product does not belong to the organization")
	ErrUnknownPersona = errors.New("buyer persona does not belong to the organization")
	ErrNoProducts     = errors.New("at least one product is required")
)

var conceptTextTemplate = template.Must(template.New("concept.txt.tmpl").Funcs(template.FuncMap{
	"inc":    func(i int) int { return i + 1 },
	"join":   strings.Join,
	"price":  utils.FormatPrice,
	"status": utils.MapProductStatusToLabel,
}).ParseFS(templatesFS, "templates/concept.txt.tmpl"))

// CreativeConceptServiceInterface generates creative concept briefs
type CreativeConceptServiceInterface interface {
	Generate(ctx context.Context, ownerID uuid.UUID, req models.CreativeConceptRequest) (*models.CreativeConcept, error)
}

// CreativeConceptService builds concept briefs from an organization, its products and personas.
// Concepts are returned to the caller and never stored.
type CreativeConceptService struct {
	organizations repository.OrganizationRepositoryInterface
	products      repository.ProductRepositoryInterface
	personas      repository.BuyerPersonaRepositoryInterface
	generator     TextGenerator
	now           func() time.Time
}

// NewCreativeConceptService creates a CreativeConceptService. generator may be nil.
func NewCreativeConceptService(
	organizations repository.OrganizationRepositoryInterface,
	products repository.ProductRepositoryInterface,
	personas repository.BuyerPersonaRepositoryInterface,
	generator TextGenerator,
) *CreativeConceptService {
	return &CreativeConceptService{
		organizations: organizations,
		products:      products,
		personas:      personas,
		generator:     generator,
		now:           time.Now,
	}
}

// Ensure CreativeConceptService implements CreativeConceptServiceInterface
var _ CreativeConceptServiceInterface = (*CreativeConceptService)(nil)

type conceptData struct {
	Title        string
	Organization *models.Organization
	Products     []models.Product
	Personas     []models.BuyerPersona
	Brief        string
}

// Generate renders the concept template. With req.UseAI the rendered text is also sent to the
// model and its answer attached as AIProposal; model failures only add a warning.
func (s *CreativeConceptService) Generate(ctx context.Context, ownerID uuid.UUID, req models.CreativeConceptRequest) (*models.CreativeConcept, error) {
	brief := strings.TrimSpace(req.Brief)
	if brief == "" {
		return nil, ErrBriefRequired
	}
	if len(req.ProductIDs) == 0 {
		return nil, ErrNoProducts
	}

	org, err := s.organizations.Get(ctx, req.OrganizationID, ownerID)
	if err != nil {
		return nil, err
	}

	allProducts, err := s.products.ListByOrganization(ctx, org.ID, ownerID)
	if err != nil {
		return nil, err
	}
	products, err := SelectProducts(allProducts, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	var personas []models.BuyerPersona
	if len(req.PersonaIDs) > 0 {
		allPersonas, err := s.personas.ListByOrganization(ctx, org.ID, ownerID)
		if err != nil {
			return nil, err
		}
		personas, err = selectPersonas(allPersonas, req.PersonaIDs)
		if err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = fmt.Sprintf("%s · %s", org.Name, products[0].Name)
	}

	var buf bytes.Buffer
	err = conceptTextTemplate.Execute(&buf, conceptData{
		Title:        title,
		Organization: org,
		Products:     products,
		Personas:     personas,
		Brief:        brief,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render concept: %w", err)
	}

	concept := &models.CreativeConcept{
		Title:          title,
		OrganizationID: org.ID,
		ProductIDs:     productIDs(products),
		PersonaIDs:     personaIDs(personas),
		Brief:          brief,
		Content:        buf.String(),
		CreatedAt:      s.now().UTC(),
	}
	if req.UseAI {
		s.attachProposal(ctx, concept)
	}

	log.Printf("✅ Generated creative concept %q for organization %s (%d products, %d personas)",
		title, org.ID, len(products), len(personas))
	return concept, nil
}

func (s *CreativeConceptService) attachProposal(ctx context.Context, concept *models.CreativeConcept) {
	if s.generator == nil {
		concept.Warning = ErrAIUnavailable.Error()
		return
	}

	prompt := "Eres director creativo de una agencia de marketing. A partir del siguiente brief, " +
		"propone un concepto creativo: idea central, tagline, tres piezas de campaña y canales sugeridos. " +
		"Responde en español y en texto plano.\n\n" + concept.Content

	proposal, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  AI proposal failed, returning template concept only: %v", err)
		concept.Warning = "AI proposal unavailable: " + err.Error()
		return
	}
	concept.AIProposal = proposal
}

// SelectProducts returns the products named by ids in request order, each once.
// An id missing from all yields ErrUnknownProduct.
func SelectProducts(all []models.Product, ids []uuid.UUID) ([]models.Product, error) {
	byID := make(map[uuid.UUID]models.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	picked := make([]models.Product, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
		}
		picked = append(picked, p)
	}
	return picked, nil
}

// selectPersonas returns the personas named by ids in request order, each once
func selectPersonas(all []models.BuyerPersona, ids []uuid.UUID) ([]models.BuyerPersona, error) {
	byID := make(map[uuid.UUID]models.BuyerPersona, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	picked := make([]models.BuyerPersona, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPersona, id)
		}
		picked = append(picked, p)
	}
	return picked, nil
}

func productIDs(products []models.Product) []uuid.UUID {
	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func personaIDs(personas []models.BuyerPersona) []uuid.UUID {
	ids := make([]uuid.UUID, len(personas))
	for i, p := range personas {
		ids[i] = p.ID
	}
	return ids
}
