package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"campaign-studio/app/middleware"
	"campaign-studio/models"
	"campaign-studio/repository"
	"campaign-studio/service"
)

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

func asUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), &models.SessionResponse{User: user}))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type fakeAuth struct {
	session *models.SessionResponse
	err     error
	signUps []models.SignUpRequest
	oauth   []*models.User
}

func (f *fakeAuth) SignUp(ctx context.Context, req models.SignUpRequest) (*models.SessionResponse, error) {
	f.signUps = append(f.signUps, req)
	return f.session, f.err
}

func (f *fakeAuth) SignIn(ctx context.Context, req models.SignInRequest) (*models.SessionResponse, error) {
	return f.session, f.err
}

func (f *fakeAuth) SignInOAuth(ctx context.Context, user *models.User) (*models.SessionResponse, error) {
	f.oauth = append(f.oauth, user)
	return f.session, f.err
}

func (f *fakeAuth) Session(ctx context.Context, token string) (*models.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeOAuth struct {
	user *models.User
	err  error
}

func (f *fakeOAuth) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeOAuth) Authenticate(ctx context.Context, code string) (*models.User, error) {
	return f.user, f.err
}

type memoryOrganizations struct {
	orgs map[uuid.UUID]models.Organization
}

func newMemoryOrganizations(orgs ...models.Organization) *memoryOrganizations {
	m := &memoryOrganizations{orgs: make(map[uuid.UUID]models.Organization)}
	for _, o := range orgs {
		m.orgs[o.ID] = o
	}
	return m
}

func (m *memoryOrganizations) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Organization, error) {
	out := []models.Organization{}
	for _, o := range m.orgs {
		if o.CreatedBy == ownerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryOrganizations) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Organization, error) {
	o, ok := m.orgs[id]
	if !ok || o.CreatedBy != ownerID {
		return nil, repository.ErrOrganizationNotFound
	}
	return &o, nil
}

func (m *memoryOrganizations) Create(ctx context.Context, org *models.Organization) error {
	org.ID = uuid.New()
	org.CreatedAt = time.Now()
	org.UpdatedAt = org.CreatedAt
	m.orgs[org.ID] = *org
	return nil
}

func (m *memoryOrganizations) Update(ctx context.Context, org *models.Organization) error {
	o, ok := m.orgs[org.ID]
	if !ok || o.CreatedBy != org.CreatedBy {
		return repository.ErrOrganizationNotFound
	}
	m.orgs[org.ID] = *org
	return nil
}

func (m *memoryOrganizations) UpdateLogoURL(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, logoURL string) error {
	o, ok := m.orgs[id]
	if !ok || o.CreatedBy != ownerID {
		return repository.ErrOrganizationNotFound
	}
	o.LogoURL = logoURL
	m.orgs[id] = o
	return nil
}

func (m *memoryOrganizations) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	o, ok := m.orgs[id]
	if !ok || o.CreatedBy != ownerID {
		return repository.ErrOrganizationNotFound
	}
	delete(m.orgs, id)
	return nil
}

// memoryProducts scopes by organization through orgs, like the SQL joins do
type memoryProducts struct {
	orgs     *memoryOrganizations
	products map[uuid.UUID]models.Product
}

func (m *memoryProducts) owned(organizationID, ownerID uuid.UUID) bool {
	_, err := m.orgs.Get(context.Background(), organizationID, ownerID)
	return err == nil
}

func (m *memoryProducts) ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.Product, error) {
	if !m.owned(organizationID, ownerID) {
		return nil, repository.ErrOrganizationNotFound
	}
	out := []models.Product{}
	for _, p := range m.products {
		if p.OrganizationID == organizationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryProducts) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok || !m.owned(p.OrganizationID, ownerID) {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (m *memoryProducts) Create(ctx context.Context, product *models.Product, ownerID uuid.UUID) error {
	if !m.owned(product.OrganizationID, ownerID) {
		return repository.ErrOrganizationNotFound
	}
	product.ID = uuid.New()
	m.products[product.ID] = *product
	return nil
}

func (m *memoryProducts) Update(ctx context.Context, product *models.Product, ownerID uuid.UUID) error {
	stored, ok := m.products[product.ID]
	if !ok || !m.owned(stored.OrganizationID, ownerID) {
		return repository.ErrProductNotFound
	}
	product.OrganizationID = stored.OrganizationID
	m.products[product.ID] = *product
	return nil
}

func (m *memoryProducts) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	stored, ok := m.products[id]
	if !ok || !m.owned(stored.OrganizationID, ownerID) {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

type memoryPersonas struct {
	orgs     *memoryOrganizations
	personas map[uuid.UUID]models.BuyerPersona
}

func (m *memoryPersonas) owned(organizationID, ownerID uuid.UUID) bool {
	_, err := m.orgs.Get(context.Background(), organizationID, ownerID)
	return err == nil
}

func (m *memoryPersonas) ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.BuyerPersona, error) {
	if !m.owned(organizationID, ownerID) {
		return nil, repository.ErrOrganizationNotFound
	}
	out := []models.BuyerPersona{}
	for _, p := range m.personas {
		if p.OrganizationID == organizationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryPersonas) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.BuyerPersona, error) {
	p, ok := m.personas[id]
	if !ok || !m.owned(p.OrganizationID, ownerID) {
		return nil, repository.ErrPersonaNotFound
	}
	return &p, nil
}

func (m *memoryPersonas) Create(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error {
	if !m.owned(persona.OrganizationID, ownerID) {
		return repository.ErrOrganizationNotFound
	}
	persona.ID = uuid.New()
	m.personas[persona.ID] = *persona
	return nil
}

func (m *memoryPersonas) Update(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error {
	stored, ok := m.personas[persona.ID]
	if !ok || !m.owned(stored.OrganizationID, ownerID) {
		return repository.ErrPersonaNotFound
	}
	persona.OrganizationID = stored.OrganizationID
	m.personas[persona.ID] = *persona
	return nil
}

func (m *memoryPersonas) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	stored, ok := m.personas[id]
	if !ok || !m.owned(stored.OrganizationID, ownerID) {
		return repository.ErrPersonaNotFound
	}
	delete(m.personas, id)
	return nil
}

type fakeLogos struct {
	data []byte
	err  error
}

func (f *fakeLogos) Upload(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID, data []byte) (*models.LogoUploadResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.data = data
	return &models.LogoUploadResponse{OrganizationID: organizationID, LogoURL: "/logos/" + organizationID.String() + ".jpg", Size: len(data)}, nil
}

type fakeSuggester struct {
	products []models.Product
	hint     string
	err      error
}

func (f *fakeSuggester) SuggestPersona(ctx context.Context, org *models.Organization, products []models.Product, hint string) (*models.BuyerPersona, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.products = products
	f.hint = hint
	return &models.BuyerPersona{OrganizationID: org.ID, Name: "Marta", PainPoints: []string{"tiempo"}}, nil
}

type fakeConcepts struct {
	concept *models.CreativeConcept
	err     error
	owner   uuid.UUID
	req     models.CreativeConceptRequest
}

func (f *fakeConcepts) Generate(ctx context.Context, ownerID uuid.UUID, req models.CreativeConceptRequest) (*models.CreativeConcept, error) {
	f.owner = ownerID
	f.req = req
	return f.concept, f.err
}

type fakeExporter struct {
	pdf     []byte
	err     error
	printed *models.CreativeConcept
}

func (f *fakeExporter) RenderHTML(concept *models.CreativeConcept) ([]byte, error) {
	return []byte("<html></html>"), nil
}

func (f *fakeExporter) ExportPDF(ctx context.Context, concept *models.CreativeConcept) ([]byte, error) {
	f.printed = concept
	return f.pdf, f.err
}

var (
	_ service.AuthServiceInterface            = (*fakeAuth)(nil)
	_ service.OAuthProvider                   = (*fakeOAuth)(nil)
	_ repository.ProductRepositoryInterface   = (*memoryProducts)(nil)
	_ service.LogoServiceInterface            = (*fakeLogos)(nil)
	_ service.PersonaSuggesterInterface       = (*fakeSuggester)(nil)
	_ service.CreativeConceptServiceInterface = (*fakeConcepts)(nil)
	_ service.ConceptExporterInterface        = (*fakeExporter)(nil)
)
