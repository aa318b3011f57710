package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"campaign-studio/models"
	"campaign-studio/service"
)

type personaFixture struct {
	controller *BuyerPersonaController
	personas   *memoryPersonas
	suggester  *fakeSuggester
	owner      *models.User
	org        models.Organization
	coffee     models.Product
	mug        models.Product
}

func newPersonaFixture(suggester *fakeSuggester) *personaFixture {
	f := &personaFixture{owner: &models.User{ID: uuid.New()}, suggester: suggester}
	f.org = models.Organization{ID: uuid.New(), Name: "Acme", CreatedBy: f.owner.ID}
	orgs := newMemoryOrganizations(f.org)
	f.coffee = models.Product{ID: uuid.New(), OrganizationID: f.org.ID, Name: "Café"}
	f.mug = models.Product{ID: uuid.New(), OrganizationID: f.org.ID, Name: "Taza"}
	products := &memoryProducts{orgs: orgs, products: map[uuid.UUID]models.Product{f.coffee.ID: f.coffee, f.mug.ID: f.mug}}
	f.personas = &memoryPersonas{orgs: orgs, personas: map[uuid.UUID]models.BuyerPersona{}}
	f.controller = NewBuyerPersonaController(f.personas, orgs, products, suggester)
	return f
}

func TestBuyerPersonaController_CreateUpdateDelete(t *testing.T) {
	f := newPersonaFixture(&fakeSuggester{})

	r := newJSONRequest(t, http.MethodPost, "/", models.BuyerPersonaRequest{
		Name:              " Laura ",
		AgeRange:          "25-34",
		PainPoints:        []string{" poco tiempo ", ""},
		PreferredChannels: []string{"Instagram"},
	})
	r.SetPathValue("id", f.org.ID.String())
	w := httptest.NewRecorder()
	f.controller.Create(w, asUser(r, f.owner))

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[models.BuyerPersona](t, w)
	require.Equal(t, "Laura", created.Name)
	require.Equal(t, []string{"poco tiempo"}, created.PainPoints)
	require.Equal(t, []string{}, created.Goals)

	r = newJSONRequest(t, http.MethodPut, "/", models.BuyerPersonaRequest{Name: "Laura M.", Goals: []string{"ahorrar"}})
	r.SetPathValue("id", created.ID.String())
	w = httptest.NewRecorder()
	f.controller.Update(w, asUser(r, f.owner))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"ahorrar"}, f.personas.personas[created.ID].Goals)
	require.Equal(t, f.org.ID, f.personas.personas[created.ID].OrganizationID)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.SetPathValue("id", f.org.ID.String())
	w = httptest.NewRecorder()
	f.controller.List(w, asUser(r, f.owner))
	require.Len(t, decodeBody[[]models.BuyerPersona](t, w), 1)

	r = httptest.NewRequest(http.MethodDelete, "/", nil)
	r.SetPathValue("id", created.ID.String())
	w = httptest.NewRecorder()
	f.controller.Delete(w, asUser(r, f.owner))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, f.personas.personas)
}

func TestBuyerPersonaController_CreateRequiresName(t *testing.T) {
	f := newPersonaFixture(&fakeSuggester{})

	r := newJSONRequest(t, http.MethodPost, "/", models.BuyerPersonaRequest{AgeRange: "25-34"})
	r.SetPathValue("id", f.org.ID.String())
	w := httptest.NewRecorder()
	f.controller.Create(w, asUser(r, f.owner))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuyerPersonaController_ListRequiresOwnedOrganization(t *testing.T) {
	f := newPersonaFixture(&fakeSuggester{})
	stranger := &models.User{ID: uuid.New()}

	for _, tc := range []struct {
		name  string
		orgID string
		user  *models.User
	}{
		{"other owner", f.org.ID.String(), stranger},
		{"unknown organization", uuid.NewString(), f.owner},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.SetPathValue("id", tc.orgID)
			w := httptest.NewRecorder()
			f.controller.List(w, asUser(r, tc.user))
			require.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestBuyerPersonaController_Suggest(t *testing.T) {
	t.Run("selected products", func(t *testing.T) {
		f := newPersonaFixture(&fakeSuggester{})
		r := newJSONRequest(t, http.MethodPost, "/", models.PersonaSuggestionRequest{ProductIDs: []uuid.UUID{f.mug.ID}, Hint: "jóvenes"})
		r.SetPathValue("id", f.org.ID.String())
		w := httptest.NewRecorder()
		f.controller.Suggest(w, asUser(r, f.owner))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Marta", decodeBody[models.BuyerPersona](t, w).Name)
		require.Len(t, f.suggester.products, 1)
		require.Equal(t, "Taza", f.suggester.products[0].Name)
		require.Equal(t, "jóvenes", f.suggester.hint)
		require.Empty(t, f.personas.personas)
	})

	t.Run("empty body uses every product", func(t *testing.T) {
		f := newPersonaFixture(&fakeSuggester{})
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.SetPathValue("id", f.org.ID.String())
		w := httptest.NewRecorder()
		f.controller.Suggest(w, asUser(r, f.owner))

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, f.suggester.products, 2)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newPersonaFixture(&fakeSuggester{})
		r := newJSONRequest(t, http.MethodPost, "/", models.PersonaSuggestionRequest{ProductIDs: []uuid.UUID{uuid.New()}})
		r.SetPathValue("id", f.org.ID.String())
		w := httptest.NewRecorder()
		f.controller.Suggest(w, asUser(r, f.owner))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ai not configured", func(t *testing.T) {
		f := newPersonaFixture(&fakeSuggester{err: service.ErrAIUnavailable})
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.SetPathValue("id", f.org.ID.String())
		w := httptest.NewRecorder()
		f.controller.Suggest(w, asUser(r, f.owner))
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("organization of another user", func(t *testing.T) {
		f := newPersonaFixture(&fakeSuggester{})
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.SetPathValue("id", f.org.ID.String())
		w := httptest.NewRecorder()
		f.controller.Suggest(w, asUser(r, &models.User{ID: uuid.New()}))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
