package main

import (
	"log"

	"github.com/baajeelectronics/baaje-golang/internal/auth"
	"github.com/baajeelectronics/baaje-golang/internal/config"
	"github.com/baajeelectronics/baaje-golang/internal/database"
	"github.com/baajeelectronics/baaje-golang/internal/handlers"
	"github.com/baajeelectronics/baaje-golang/internal/routes"
	"github.com/baajeelectronics/baaje-golang/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	// --- Database ---
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Database initialized")

	// --- Application Setup ---
	// All dependencies are built here once and injected downwards.
	app := &handlers.Handlers{
		Store:  store.New(db),
		Tokens: auth.NewTokenService(cfg.JWTSecret),
	}
	policy := &auth.FixedEmailPolicy{DB: db, Email: auth.AdminEmail}

	// --- Router Setup ---
	router := routes.SetupRouter(app, policy)

	// --- Start Server ---
	log.Printf("Starting Baaje Electronics API server on %s...", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
