package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/juliusphilipponce/menu-miner/internal/auth"
	"github.com/juliusphilipponce/menu-miner/internal/config"
	"github.com/juliusphilipponce/menu-miner/internal/imagesearch"
	"github.com/juliusphilipponce/menu-miner/internal/llm"
	"github.com/juliusphilipponce/menu-miner/internal/ratelimit"
	"github.com/juliusphilipponce/menu-miner/internal/router"
	"github.com/juliusphilipponce/menu-miner/internal/scan"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	log.Println("Environment loaded successfully")

	// ───────────────────────── CLIENTS ─────────────────────────
	extractor := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	searcher := imagesearch.NewGoogleClient(cfg.SearchAPIKey, cfg.SearchEngineID)
	verifier := auth.NewGoogleVerifier()

	// ───────────────────────── AUTH ─────────────────────────
	sessions := auth.NewSessionManager(cfg.SessionSecret)
	authService := auth.NewService(verifier, cfg.GoogleClientID, cfg.AllowedEmail, sessions)
	authHandler := auth.NewHandler(authService)

	// ───────────────────────── SCAN PIPELINE ─────────────────────────
	limiter := ratelimit.New(ratelimit.DefaultMaxRequests, ratelimit.DefaultWindow)
	scanService := scan.NewService(extractor, searcher, limiter, scan.NewStore())

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		Auth:     authHandler,
		Analyze:  llm.NewHandler(extractor),
		Search:   imagesearch.NewHandler(searcher),
		Scan:     scan.NewHandler(scanService),
		Sessions: sessions,
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
