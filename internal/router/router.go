package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/7aib/spots-backend/internal/handlers"
	"github.com/7aib/spots-backend/internal/middleware"
	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
	"github.com/7aib/spots-backend/internal/services"
	"github.com/7aib/spots-backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.City{},
		&models.Category{},
		&models.Place{},
		&models.Like{},
		&models.Comment{},
		&models.Share{},
		&models.Follow{},
		&models.Activity{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	placeRepo := repositories.NewPostgresPlaceRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	shareRepo := repositories.NewPostgresShareRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	activityRepo := repositories.NewPostgresActivityRepository(pgdb)
	mediaRepo := repositories.NewMongoMediaRepository(mgClient.Database(cfg.MongoDBName))

	// --- Content resolution and services ---
	resolver := services.NewContentResolver()
	services.RegisterDefaultResolvers(resolver, mediaRepo, placeRepo, profileRepo, commentRepo, userRepo)

	activityService := services.NewActivityService(activityRepo, userRepo, profileRepo, resolver)
	socialService := services.NewSocialService(likeRepo, commentRepo, shareRepo, resolver, activityService)
	followService := services.NewFollowService(followRepo, userRepo, activityService)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, profileRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo, profileRepo, likeRepo, commentRepo, shareRepo, followRepo)
	userHandler.RegisterProfileRoutes(api)

	mediaHandler := handlers.NewMediaHandler(mediaRepo, placeRepo, activityService)
	mediaHandler.RegisterMediaRoutes(api)

	placeHandler := handlers.NewPlaceHandler(placeRepo, activityService)
	placeHandler.RegisterPlaceRoutes(api)

	socialHandler := handlers.NewSocialHandler(socialService)
	socialHandler.RegisterSocialRoutes(api)

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)

	activityHandler := handlers.NewActivityHandler(activityService)
	activityHandler.RegisterActivityRoutes(api)

	log.Println("All routes configured.")
}
