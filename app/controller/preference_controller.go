package controller

import (
	"log"
	"net/http"

	"campaign-studio/models"
	"campaign-studio/utils"
)

const (
	themeCookieName   = "theme"
	sectionCookieName = "dashboard-section"
	preferenceMaxAge  = 365 * 24 * 60 * 60
)

// PreferenceController reads and writes the theme and last dashboard section cookies
type PreferenceController struct {
	secure bool
}

// NewPreferenceController creates a new PreferenceController
func NewPreferenceController(secure bool) *PreferenceController {
	return &PreferenceController{secure: secure}
}

// Get handles GET /api/preferences
func (c *PreferenceController) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, readPreferences(r))
}

// Update handles PUT /api/preferences. Empty fields keep their current value.
func (c *PreferenceController) Update(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdatePreferences: Received %s request to %s", r.Method, r.URL.Path)

	var req models.Preferences
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ UpdatePreferences: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prefs := readPreferences(r)
	if req.Theme != "" {
		if !utils.IsValidTheme(req.Theme) {
			writeServiceError(w, "UpdatePreferences", validationError("theme must be one of light, dark, system"))
			return
		}
		prefs.Theme = utils.NormalizeCode(req.Theme)
	}
	if req.ActiveSection != "" {
		if !utils.IsValidSection(req.ActiveSection) {
			writeServiceError(w, "UpdatePreferences", validationError("unknown dashboard section"))
			return
		}
		prefs.ActiveSection = utils.NormalizeCode(req.ActiveSection)
	}

	setPreferenceCookie(w, themeCookieName, prefs.Theme, c.secure)
	setPreferenceCookie(w, sectionCookieName, prefs.ActiveSection, c.secure)

	log.Printf("✓ UpdatePreferences: theme=%s, section=%s", prefs.Theme, prefs.ActiveSection)
	writeJSON(w, http.StatusOK, prefs)
}

// readPreferences returns the stored preferences, replacing missing or tampered values with defaults
func readPreferences(r *http.Request) models.Preferences {
	prefs := models.Preferences{
		Theme:         utils.ThemeSystem,
		ActiveSection: utils.SectionOverview,
	}
	if cookie, err := r.Cookie(themeCookieName); err == nil && utils.IsValidTheme(cookie.Value) {
		prefs.Theme = utils.NormalizeCode(cookie.Value)
	}
	if cookie, err := r.Cookie(sectionCookieName); err == nil && utils.IsValidSection(cookie.Value) {
		prefs.ActiveSection = utils.NormalizeCode(cookie.Value)
	}
	return prefs
}

// setPreferenceCookie stores a long-lived preference. Not HttpOnly: the page script reads the theme.
func setPreferenceCookie(w http.ResponseWriter, name, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   preferenceMaxAge,
	})
}
