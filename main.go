package main

import (
	"context"
	"log"
	"net/http"

	"campaign-studio/app"
	"campaign-studio/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize application
	application, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer application.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	addr := cfg.ListenAddr()
	log.Printf("Server starting on %s", addr)
	log.Printf("Landing page: %s/", cfg.BaseURL)

	if err := http.ListenAndServe(addr, application.Handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
