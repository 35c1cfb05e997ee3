package main

import (
	"alcyxob/fitlife/internal/api"
	"alcyxob/fitlife/internal/config"
	"alcyxob/fitlife/internal/gateway"
	"alcyxob/fitlife/internal/media"
	"alcyxob/fitlife/internal/repository"
	"alcyxob/fitlife/internal/repository/memory"
	"alcyxob/fitlife/internal/repository/mongo"
	"alcyxob/fitlife/internal/secrets"
	"alcyxob/fitlife/internal/service"
	"alcyxob/fitlife/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting FitLife Server...")

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: Could not read .env: %v", err)
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Credentials ---
	secretStore := secrets.NewStore(cfg.Secrets.ProjectID)
	secretCtx, cancelSecret := context.WithTimeout(context.Background(), 10*time.Second)
	apiKey, err := secretStore.GetSecret(secretCtx, cfg.ExerciseAPI.KeySecret)
	cancelSecret()
	if err != nil {
		// Exercise pages show their error panels until a key is configured.
		log.Printf("WARN: No exercise API key (%s): %v", cfg.ExerciseAPI.KeySecret, err)
	}

	// --- Category Catalog ---
	categoryRepo, closeCatalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not load category catalog: %v", err)
	}
	defer closeCatalog()

	// --- Initialize Storage ---
	var assetStorage storage.AssetStorage
	if cfg.S3.Enabled() {
		log.Println("Initializing asset storage service...")
		assetStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Printf("WARN: Failed to initialize S3 storage, using public background URLs: %v", err)
			assetStorage = nil
		}
	} else {
		log.Println("S3 not configured, using public background URLs.")
	}

	// --- Initialize Gateways ---
	rapidAPI := &gateway.RapidAPITransport{Key: apiKey, Host: cfg.ExerciseAPI.Host}
	exerciseGateway := gateway.NewExerciseGateway(cfg.ExerciseAPI.BaseURL, gateway.NewHTTPClient(cfg.HTTP.Timeout, rapidAPI))
	referenceGateway := gateway.NewReferenceGateway(cfg.ReferenceAPI.BaseURL, gateway.NewHTTPClient(cfg.HTTP.Timeout, nil))

	// --- Initialize Services ---
	log.Println("Initializing services...")
	exerciseService := service.NewExerciseService(categoryRepo, referenceGateway, exerciseGateway)
	assetService := service.NewAssetService(assetStorage, cfg.Assets)
	resolver := media.NewResolver(cfg.Media.Animations, cfg.Media.Images)
	fetcher := media.NewHTTPFetcher(gateway.NewHTTPClient(cfg.HTTP.Timeout, nil))

	// --- Initialize Gin Engine ---
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware
	router.Use(api.RequestIDMiddleware())

	tmpl, err := api.ParseTemplates()
	if err != nil {
		log.Fatalf("FATAL: Could not parse templates: %v", err)
	}
	router.SetHTMLTemplate(tmpl)

	// --- Setup Routes ---
	log.Println("Setting up routes...")
	api.SetupRoutes(router,
		api.NewPageHandler(exerciseService, assetService, resolver, cfg.UI.FilterableCategories),
		api.NewExerciseHandler(exerciseService, resolver),
		api.NewMediaHandler(resolver, fetcher),
	)

	// --- Start HTTP Server ---
	// No WriteTimeout: an upstream that never answers keeps its page loading
	// until the client gives up, unless http.timeout is set.
	server := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     api.NewCORSHandler(router, cfg.CORS.AllowedOrigins),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// loadCatalog builds the browse category repository. With the mongo source
// the collection is read once; categories do not change while running.
func loadCatalog(cfg config.Config) (repository.CategoryRepository, func(), error) {
	if cfg.Catalog.Source != "mongo" {
		log.Println("Using configured category catalog.")
		return memory.NewCategoryRepositoryFromConfig(cfg.Catalog), func() {}, nil
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongo.EnsureCategoryIndexes(ctx, appDB.Collection(mongo.CategoryCollectionName))
	categoryRepo, err := memory.Snapshot(ctx, mongo.NewMongoCategoryRepository(appDB))
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	log.Println("Category catalog loaded from MongoDB.")
	return categoryRepo, closeDB, nil
}
