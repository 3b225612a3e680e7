package main

import (
	"context"
	"log"

	"github.com/7aib/spots-backend/internal/router"
	"github.com/7aib/spots-backend/pkg/config"
	"github.com/7aib/spots-backend/pkg/firebase"
	"github.com/7aib/spots-backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase (optional, disabled when no credentials configured)
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, firebaseApp.AuthClient)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
