package router

import (
	"net/http"
	"strings"

	"filippo.io/csrf"
	"github.com/rs/cors"

	"campaign-studio/app/controller"
	"campaign-studio/app/middleware"
)

// Controllers groups the handlers mounted by SetupRoutes
type Controllers struct {
	Auth            *controller.AuthController
	Organization    *controller.OrganizationController
	Product         *controller.ProductController
	BuyerPersona    *controller.BuyerPersonaController
	CreativeConcept *controller.CreativeConceptController
	Preference      *controller.PreferenceController
	Page            *controller.PageController
}

// Options configures the cross-cutting parts of the router
type Options struct {
	Authenticator *middleware.Authenticator
	CORSOrigins   []string
	// LogoDir is served under /logos/ when logos are stored locally; empty disables the route
	LogoDir string
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the application handler. API routes get CORS, HTML routes get CSRF protection.
func SetupRoutes(controllers *Controllers, opts Options) http.Handler {
	mux := http.NewServeMux()
	api := opts.Authenticator.RequireAPI
	page := opts.Authenticator.RequirePage

	// Ping endpoint
	mux.HandleFunc("GET /ping", pingHandler)

	// Auth routes
	mux.HandleFunc("POST /api/auth/signup", controllers.Auth.SignUp)
	mux.HandleFunc("POST /api/auth/signin", controllers.Auth.SignIn)
	mux.HandleFunc("POST /api/auth/signout", controllers.Auth.SignOut)
	mux.HandleFunc("GET /api/auth/session", controllers.Auth.Session)
	mux.HandleFunc("GET /auth/google/login", controllers.Auth.GoogleLogin)
	mux.HandleFunc("GET /auth/google/callback", controllers.Auth.GoogleCallback)

	// Organizations routes
	mux.Handle("GET /api/organizations", api(http.HandlerFunc(controllers.Organization.List)))
	mux.Handle("POST /api/organizations", api(http.HandlerFunc(controllers.Organization.Create)))
	mux.Handle("GET /api/organizations/{id}", api(http.HandlerFunc(controllers.Organization.Get)))
	mux.Handle("PUT /api/organizations/{id}", api(http.HandlerFunc(controllers.Organization.Update)))
	mux.Handle("DELETE /api/organizations/{id}", api(http.HandlerFunc(controllers.Organization.Delete)))
	mux.Handle("POST /api/organizations/{id}/logo", api(http.HandlerFunc(controllers.Organization.UploadLogo)))

	// Products routes
	mux.Handle("GET /api/organizations/{id}/products", api(http.HandlerFunc(controllers.Product.List)))
	mux.Handle("POST /api/organizations/{id}/products", api(http.HandlerFunc(controllers.Product.Create)))
	mux.Handle("PUT /api/products/{id}", api(http.HandlerFunc(controllers.Product.Update)))
	mux.Handle("DELETE /api/products/{id}", api(http.HandlerFunc(controllers.Product.Delete)))

	// Buyer personas routes
	mux.Handle("GET /api/organizations/{id}/personas", api(http.HandlerFunc(controllers.BuyerPersona.List)))
	mux.Handle("POST /api/organizations/{id}/personas", api(http.HandlerFunc(controllers.BuyerPersona.Create)))
	mux.Handle("POST /api/organizations/{id}/personas/suggest", api(http.HandlerFunc(controllers.BuyerPersona.Suggest)))
	mux.Handle("PUT /api/personas/{id}", api(http.HandlerFunc(controllers.BuyerPersona.Update)))
	mux.Handle("DELETE /api/personas/{id}", api(http.HandlerFunc(controllers.BuyerPersona.Delete)))

	// Creative concepts routes
	mux.Handle("POST /api/creative-concepts", api(http.HandlerFunc(controllers.CreativeConcept.Generate)))
	mux.Handle("POST /api/creative-concepts/export", api(http.HandlerFunc(controllers.CreativeConcept.Export)))

	// Preferences are readable before sign in so the landing page can apply the theme
	mux.HandleFunc("GET /api/preferences", controllers.Preference.Get)
	mux.HandleFunc("PUT /api/preferences", controllers.Preference.Update)

	// Pages
	mux.HandleFunc("GET /{$}", controllers.Page.Landing)
	mux.Handle("GET /dashboard", page(http.HandlerFunc(controllers.Page.Dashboard)))

	if opts.LogoDir != "" {
		mux.Handle("GET /logos/", http.StripPrefix("/logos/", http.FileServer(http.Dir(opts.LogoDir))))
	}

	protection := csrf.New()
	apiHandler := withCORS(opts.CORSOrigins, mux)
	pageHandler := protection.Handler(mux)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPIRoute(r.URL.Path) {
			apiHandler.ServeHTTP(w, r)
			return
		}
		pageHandler.ServeHTTP(w, r)
	})
}

func isAPIRoute(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

// withCORS lets the configured frontend origins call the JSON API with cookies
func withCORS(allowedOrigins []string, h http.Handler) http.Handler {
	middleware := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true, // Required for cookie-based authentication
	})
	return middleware.Handler(h)
}
