package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	api "ministryhub-backend/internal/api/http"
	"ministryhub-backend/internal/config"
	"ministryhub-backend/internal/logger"
	"ministryhub-backend/internal/push"
	"ministryhub-backend/internal/repository/firestoredb"
	"ministryhub-backend/internal/security"
	"ministryhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting MinistryHub Notification Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID, "auth_emulator", cfg.Firebase.AuthEmulator)

	ctx := context.Background()

	// Initialize Firebase clients
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		logger.Error("Failed to initialize firebase app", "error", err)
		log.Fatalf("Failed to initialize firebase app: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to initialize firestore client", "error", err)
		log.Fatalf("Failed to initialize firestore client: %v", err)
	}
	defer fsClient.Close()

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		logger.Error("Failed to initialize messaging client", "error", err)
		log.Fatalf("Failed to initialize messaging client: %v", err)
	}

	// Initialize Repositories
	store := firestoredb.NewStore(fsClient)

	// Initialize token verification
	var verifier security.TokenVerifier
	if cfg.Firebase.AuthEmulator {
		logger.Warn("Auth emulator mode enabled, accepting unsigned ID tokens")
		verifier = security.NewEmulatorVerifier()
	} else {
		authClient, err := app.Auth(ctx)
		if err != nil {
			logger.Error("Failed to initialize auth client", "error", err)
			log.Fatalf("Failed to initialize auth client: %v", err)
		}
		verifier = security.NewFirebaseVerifier(authClient)
	}

	// Initialize Email Service (optional channel)
	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		logger.Info("Email alert channel enabled", "from", cfg.Email.FromEmail)
		emailSvc = service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	}

	// Initialize Services
	resolver := service.NewRecipientResolver(store.UserProfileRepository)
	dispatcher := service.NewFanoutDispatcher(store.InboxRepository, push.NewFCMPusher(msgClient), emailSvc)
	notifier := service.NewJoinRequestNotifier(store.MinistryRepository, resolver, dispatcher)
	adminSvc := service.NewAdminService(store.UserProfileRepository, cfg.IsAllowlisted, cfg.Firebase.AuthEmulator)
	inboxSvc := service.NewInboxService(store.InboxRepository)

	// Set up HTTP server
	router := api.NewRouter(notifier, adminSvc, inboxSvc, verifier)
	srv := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
