package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ny11/wellness-app/internal/api"
	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/clock"
	"ny11/wellness-app/internal/config"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/planner"
	"ny11/wellness-app/internal/repository"
	"ny11/wellness-app/internal/repository/mongo"
	"ny11/wellness-app/internal/service"
	"ny11/wellness-app/internal/storage"
	"ny11/wellness-app/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title NY11 Wellness API
// @version 1.0
// @description API for meal and exercise plans, the healthy market and coach chat.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Wellness App Server...")

	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, using process environment")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Seed Data ---
	seed := catalog.DefaultSeed()
	if cfg.Seed.Source == config.SeedSourceMongo {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		dbClient, err := mongo.ConnectDB(ctx, cfg.Database.URI)
		if err != nil {
			cancel()
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		appDB := dbClient.Database(cfg.Database.Name)
		mongo.EnsureSeedIndexes(ctx, appDB)

		seed, err = repository.LoadSeed(ctx, mongo.NewMongoSeedRepository(appDB), seed)
		cancel()
		log.Println("Disconnecting MongoDB...")
		if derr := mongo.DisconnectDB(dbClient); derr != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", derr)
		}
		if err != nil {
			log.Fatalf("FATAL: Could not load seed data: %v", err)
		}
		log.Printf("Seed data loaded from database %q.", cfg.Database.Name)
	}

	// --- Store ---
	cat := catalog.New(seed)
	st := store.New(cat, planner.New(cat), clock.System(), store.Timings{
		ToastTTL:            cfg.Timing.ToastTTL,
		NotificationTTL:     cfg.Timing.NotificationTTL,
		PlanGenerationDelay: cfg.Timing.PlanGenerationDelay,
		CoachReplyDelay:     cfg.Timing.CoachReplyDelay,
		PlanDeliveryDelay:   cfg.Timing.PlanDeliveryDelay,
	})
	if lang := domain.Language(cfg.App.DefaultLanguage); !st.SetLanguage(lang) {
		log.Printf("WARN: Ignoring unsupported default language %q", lang)
	}

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3)
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Println("WARN: No S3 bucket configured, media uploads are disabled")
		fileStorage = nil
	case err != nil:
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	services := api.Services{
		Auth:     service.NewAuthService(st, cfg.JWT.Secret, cfg.JWT.Expiration),
		Chat:     service.NewChatService(st, cat),
		Market:   service.NewMarketService(st, cat),
		Plan:     service.NewPlanService(st),
		Admin:    service.NewAdminService(st, cat),
		Media:    service.NewMediaService(st, fileStorage, cfg.S3.PresignTTL),
		Settings: service.NewSettingsService(st, cat),
	}

	// --- Initialize Gin Engine ---
	router := gin.Default()

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, services)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	st.Logout()
	log.Println("Server exiting.")
}
