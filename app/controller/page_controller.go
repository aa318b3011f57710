package controller

import (
	"log"
	"net/http"

	"campaign-studio/app/middleware"
	"campaign-studio/app/web"
	"campaign-studio/repository"
	"campaign-studio/service"
	"campaign-studio/utils"
)

// PageController renders the landing page and the dashboard shell
type PageController struct {
	organizations repository.OrganizationRepositoryInterface
	googleEnabled bool
	secure        bool
}

// NewPageController creates a new PageController
func NewPageController(organizations repository.OrganizationRepositoryInterface, googleEnabled bool, secure bool) *PageController {
	return &PageController{
		organizations: organizations,
		googleEnabled: googleEnabled,
		secure:        secure,
	}
}

// Landing handles GET /
func (c *PageController) Landing(w http.ResponseWriter, r *http.Request) {
	prefs := readPreferences(r)
	err := web.Render(w, http.StatusOK, "landing", web.LandingPage{
		Title:             "Inicio",
		Theme:             prefs.Theme,
		ErrorMessage:      web.LandingErrorMessage(r.URL.Query().Get("error_code")),
		GoogleEnabled:     c.googleEnabled,
		MinPasswordLength: service.MinPasswordLength,
	})
	if err != nil {
		log.Printf("❌ Landing: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Dashboard handles GET /dashboard?section=.
// A valid section is remembered; otherwise the last remembered section is shown.
func (c *PageController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, "/?error_code=invalid", http.StatusSeeOther)
		return
	}

	prefs := readPreferences(r)
	section := prefs.ActiveSection
	if requested := r.URL.Query().Get("section"); utils.IsValidSection(requested) {
		section = utils.NormalizeCode(requested)
		if section != prefs.ActiveSection {
			setPreferenceCookie(w, sectionCookieName, section, c.secure)
		}
	}

	organizations, err := c.organizations.ListByOwner(r.Context(), session.User.ID)
	if err != nil {
		log.Printf("❌ Dashboard: failed to list organizations: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	err = web.Render(w, http.StatusOK, "dashboard", web.DashboardPage{
		Title:         utils.MapSectionToLabel(section),
		Theme:         prefs.Theme,
		User:          session.User,
		Section:       section,
		Nav:           web.NewNav(section),
		Organizations: organizations,
	})
	if err != nil {
		log.Printf("❌ Dashboard: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
