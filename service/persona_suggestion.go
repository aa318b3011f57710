package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"campaign-studio/models"
	"campaign-studio/utils"
)

// PersonaSuggesterInterface drafts buyer personas
type PersonaSuggesterInterface interface {
	SuggestPersona(ctx context.Context, org *models.Organization, products []models.Product, hint string) (*models.BuyerPersona, error)
}

// PersonaSuggester drafts an unsaved buyer persona with a TextGenerator
type PersonaSuggester struct {
	generator TextGenerator
}

// NewPersonaSuggester creates a PersonaSuggester; a nil generator makes every call return ErrAIUnavailable
func NewPersonaSuggester(generator TextGenerator) *PersonaSuggester {
	return &PersonaSuggester{generator: generator}
}

// Ensure PersonaSuggester implements PersonaSuggesterInterface
var _ PersonaSuggesterInterface = (*PersonaSuggester)(nil)

// SuggestPersona asks the model for a persona of org's customers and parses the reply
func (s *PersonaSuggester) SuggestPersona(ctx context.Context, org *models.Organization, products []models.Product, hint string) (*models.BuyerPersona, error) {
	if s.generator == nil {
		return nil, ErrAIUnavailable
	}

	prompt := buildPersonaPrompt(org, products, hint)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	persona := parsePersona(text)
	if persona.Name == "" {
		log.Printf("⚠️  SuggestPersona: model reply had no name: %q", text)
		return nil, fmt.Errorf("failed to parse persona suggestion")
	}

	persona.OrganizationID = org.ID
	return persona, nil
}

func buildPersonaPrompt(org *models.Organization, products []models.Product, hint string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert market researcher. Create ONE buyer persona for the company %q.\n", org.Name)
	if org.Mission != "" {
		fmt.Fprintf(&b, "Mission: %s\n", org.Mission)
	}
	if org.Vision != "" {
		fmt.Fprintf(&b, "Vision: %s\n", org.Vision)
	}
	if len(products) > 0 {
		b.WriteString("Products:\n")
		for _, p := range products {
			fmt.Fprintf(&b, "- %s (%s): %s\n", p.Name, p.Category, p.Description)
		}
	}
	if hint = strings.TrimSpace(hint); hint != "" {
		fmt.Fprintf(&b, "Focus: %s\n", hint)
	}
	b.WriteString(`
Answer ONLY with these lines, one "key: value" per line, no markdown.
List values are separated by ";".
name: a short persona nickname
age_range: e.g. 30-45
gender:
occupation:
income_level:
education_level:
location:
pain_points: 2-3 items
goals: 2-3 items
preferred_channels: 1-3 items
behavior_patterns:
motivations:
frustrations:`)
	return b.String()
}

// parsePersona reads "key: value" lines. Unknown keys and malformed lines are ignored.
func parsePersona(text string) *models.BuyerPersona {
	persona := &models.BuyerPersona{
		PainPoints:        []string{},
		Goals:             []string{},
		PreferredChannels: []string{},
	}

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.Trim(strings.TrimSpace(key), "*-` "))
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			persona.Name = value
		case "age_range":
			persona.AgeRange = value
		case "gender":
			persona.Gender = value
		case "occupation":
			persona.Occupation = value
		case "income_level":
			persona.IncomeLevel = value
		case "education_level":
			persona.EducationLevel = value
		case "location":
			persona.Location = value
		case "pain_points":
			persona.PainPoints = utils.SplitList(value, ";")
		case "goals":
			persona.Goals = utils.SplitList(value, ";")
		case "preferred_channels":
			persona.PreferredChannels = utils.SplitList(value, ";")
		case "behavior_patterns":
			persona.BehaviorPatterns = value
		case "motivations":
			persona.Motivations = value
		case "frustrations":
			persona.Frustrations = value
		}
	}

	return persona
}
