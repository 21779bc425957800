package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/joho/godotenv"

	"relief-coordination-backend/config"
	"relief-coordination-backend/internal/api"
	"relief-coordination-backend/internal/auth"
	"relief-coordination-backend/internal/db"
	"relief-coordination-backend/internal/notification"
	"relief-coordination-backend/internal/relief"
	"relief-coordination-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "relief-backend ", log.LstdFlags)

	// Load .env for local development; missing file is fine
	_ = godotenv.Load()

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Secrets may come from the environment instead of the config file
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Fatalf("auth.jwt_secret must be configured (config file or JWT_SECRET env)")
	}

	// Check for VAPID keys
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Fatalf("VAPID keys must be configured. Please generate them and add them to your config file.")
	}

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the store and the domain services
	appStore := store.NewGormStore(gormDB, cfg.Database.QueryTimeout)
	reliefSvc := relief.NewService(appStore)
	authSvc := auth.NewService(appStore, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	logger.Println("services initialized")

	// Start the match-notification worker pool in the background
	pool := notification.NewWorkerPool(cfg.WorkerPool.Size, appStore, reliefSvc, &webpushOptions)
	pool.Start(ctx)

	// Initialize router
	handler := api.NewHandler(reliefSvc, authSvc, appStore, pool, cfg.Push.PublicKey)
	router := api.NewRouter(handler, authSvc, cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
