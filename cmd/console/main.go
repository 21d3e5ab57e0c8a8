package main

import (
	"log"
	"net/http"
	"time"

	"jnv/console/internal/api"
	"jnv/console/internal/config"
	"jnv/console/internal/console"
	"jnv/console/internal/session"
)

func main() {
	cfg := config.Load()

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is required")
	}

	var sess session.Session
	switch cfg.AuthMode {
	case "dev":
		sess = session.NewStatic(cfg.DevToken)
	case "firebase":
		firebaseSession, err := session.NewFirebase(cfg.FirebaseAPIKey)
		if err != nil {
			log.Fatalf("failed to initialize firebase session: %v", err)
		}
		sess = firebaseSession
	default:
		log.Fatalf("unsupported AUTH_MODE: %s", cfg.AuthMode)
	}

	client := api.New(cfg.APIBaseURL, sess)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      console.New(client, sess).Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	log.Printf("jnv admin console listening on %s (api %s)", cfg.HTTPAddr, cfg.APIBaseURL)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
