package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"campaign-studio/app/controller"
	"campaign-studio/app/middleware"
	"campaign-studio/app/router"
	"campaign-studio/config"
	"campaign-studio/db"
	"campaign-studio/repository"
	"campaign-studio/service"
)

// Application holds the HTTP handler and the resources to release on shutdown
type Application struct {
	Handler http.Handler
	closers []func() error
}

// Close releases the resources opened by Initialize
func (a *Application) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			log.Printf("⚠️  Error during shutdown: %v", err)
		}
	}
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	application := &Application{}

	// Initialize database connection
	if err := db.InitDB(cfg.ConnString(), cfg.AutoMigrate); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	application.closers = append(application.closers, db.CloseDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	organizationRepo := repository.NewOrganizationRepository(db.DB)
	productRepo := repository.NewProductRepository(db.DB)
	personaRepo := repository.NewBuyerPersonaRepository(db.DB)

	// Initialize auth
	sessions, err := service.NewSessionManager([]byte(cfg.SessionSecret), cfg.SessionTTL)
	if err != nil {
		return nil, err
	}
	authService := service.NewAuthService(userRepo, sessions)

	var googleOAuth service.OAuthProvider
	if cfg.GoogleOAuthEnabled() {
		google, err := service.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		if err != nil {
			return nil, err
		}
		googleOAuth = google
		log.Printf("✓ Google sign-in enabled")
	} else {
		log.Printf("⚠️  GOOGLE_CLIENT_ID/SECRET/REDIRECT_URL not set, Google sign-in disabled")
	}

	// Initialize AI; a nil generator keeps the AI features answering "not configured"
	var generator service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := service.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		generator = gemini
		application.closers = append(application.closers, gemini.Close)
		log.Printf("✓ Gemini model %s enabled", cfg.GeminiModel)
	} else {
		log.Printf("⚠️  GEMINI_API_KEY not set, AI suggestions disabled")
	}

	// Initialize logo storage
	var logoStore service.LogoStore
	logoDir := ""
	if cfg.DriveLogosEnabled() {
		driveService, err := service.NewDriveService(ctx, cfg.GoogleApplicationCredentials, cfg.LogoDriveFolderID)
		if err != nil {
			return nil, err
		}
		logoStore = driveService
		log.Printf("✓ Logos stored in Google Drive folder %s", cfg.LogoDriveFolderID)
	} else {
		localStore, err := service.NewLocalLogoStore(cfg.LogoCacheDir)
		if err != nil {
			return nil, err
		}
		logoStore = localStore
		logoDir = localStore.Dir()
		log.Printf("✓ Logos stored locally in %s", logoDir)
	}

	// Initialize services
	logoService := service.NewLogoService(organizationRepo, logoStore)
	personaSuggester := service.NewPersonaSuggester(generator)
	conceptService := service.NewCreativeConceptService(organizationRepo, productRepo, personaRepo, generator)
	exportService := service.NewConceptExportService(cfg.ChromePath)

	// Create controllers
	secure := cfg.IsProduction()
	controllers := &router.Controllers{
		Auth:            controller.NewAuthController(authService, googleOAuth, secure),
		Organization:    controller.NewOrganizationController(organizationRepo, logoService),
		Product:         controller.NewProductController(productRepo),
		BuyerPersona:    controller.NewBuyerPersonaController(personaRepo, organizationRepo, productRepo, personaSuggester),
		CreativeConcept: controller.NewCreativeConceptController(conceptService, exportService),
		Preference:      controller.NewPreferenceController(secure),
		Page:            controller.NewPageController(organizationRepo, googleOAuth != nil, secure),
	}

	// Setup routes using standard http router
	application.Handler = router.SetupRoutes(controllers, router.Options{
		Authenticator: middleware.NewAuthenticator(authService),
		CORSOrigins:   cfg.CORSOrigins,
		LogoDir:       logoDir,
	})

	return application, nil
}
