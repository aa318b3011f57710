package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"campaign-studio/models"
	"campaign-studio/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"sectionLabel": utils.MapSectionToLabel,
}).ParseFS(templatesFS, "templates/*.html"))

// Render executes the named page into w. The page is buffered so a template error still yields a clean 500.
func Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// LandingPage is the data of the public landing page
type LandingPage struct {
	Title             string
	Theme             string
	ErrorMessage      string
	GoogleEnabled     bool
	MinPasswordLength int
}

// NavItem is one dashboard navigation entry
type NavItem struct {
	Code   string
	Label  string
	Active bool
}

// DashboardPage is the data of the authenticated dashboard shell
type DashboardPage struct {
	Title         string
	Theme         string
	User          *models.User
	Section       string
	Nav           []NavItem
	Organizations []models.Organization
}

// NewNav builds the navigation with active marked
func NewNav(active string) []NavItem {
	nav := make([]NavItem, 0, len(utils.Sections))
	for _, code := range utils.Sections {
		nav = append(nav, NavItem{
			Code:   code,
			Label:  utils.MapSectionToLabel(code),
			Active: code == active,
		})
	}
	return nav
}

var landingErrors = map[string]string{
	"invalid": "Tu sesión no es válida. Inicia sesión de nuevo.",
	"expired": "Tu sesión expiró. Inicia sesión de nuevo.",
	"oauth":   "No fue posible iniciar sesión con Google.",
}

// LandingErrorMessage maps the error_code query parameter to a message; unknown codes map to ""
func LandingErrorMessage(code string) string {
	return landingErrors[code]
}
