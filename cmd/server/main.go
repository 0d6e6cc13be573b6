package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackdesk-service/internal/infrastructure/config"
	"trackdesk-service/internal/infrastructure/oauth"
	"trackdesk-service/internal/infrastructure/persistence"
	"trackdesk-service/internal/interface/gmail"
	"trackdesk-service/internal/interface/httpapi"
	mongoRepo "trackdesk-service/internal/interface/repository"
	"trackdesk-service/internal/usecase"
	"trackdesk-service/pkg/logger"
	"trackdesk-service/pkg/metrics"
	"trackdesk-service/pkg/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Create logger
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	log := logger.NewLogger(cfg.Env)
	defer log.Sync()
	log.Info("Starting Trackdesk Service", "version", cfg.AppVersion, "env", cfg.Env)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Package catalog lives in PostgreSQL
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	callbackRepo := mongoRepo.NewMongoCallbackRepository(db)
	contactRepo := mongoRepo.NewMongoContactRepository(db)
	orderRepo := mongoRepo.NewMongoOrderRepository(db)

	packageRepo, err := mongoRepo.NewGormPackageRepository(gormDB)
	if err != nil {
		log.Fatal("Failed to prepare package catalog", "error", err)
	}

	// Set up Gmail OAuth and the mail transport; verify before serving.
	gmailOAuth := oauth.NewGmailOAuth(
		cfg.GmailClientID,
		cfg.GmailClientSecret,
		cfg.GmailRefreshToken,
		log,
	)
	tokenSource := gmailOAuth.GetTokenSource(ctx)

	mailer, err := gmail.NewGmailMailer(ctx, tokenSource, cfg.SenderEmail, log)
	if err != nil {
		log.Fatal("Failed to create Gmail mailer", "error", err)
	}
	if err := mailer.Verify(ctx); err != nil {
		log.Fatal("Gmail transport verification failed", "error", err)
	}

	// Set up usecases
	m := metrics.NewMetrics("trackdesk")
	notifier := usecase.NewEmailNotifier(mailer, cfg.SalesTeamEmail, m, log)

	callbackService := usecase.NewCallbackService(callbackRepo, notifier, m, log)
	contactService := usecase.NewContactService(contactRepo, notifier, m, log)
	orderService := usecase.NewOrderService(orderRepo, packageRepo, notifier, m, log)

	// Set up HTTP server
	debug := !cfg.IsProduction()
	callbackHandler := httpapi.NewCallbackHandler(callbackService, log, debug)
	contactHandler := httpapi.NewContactHandler(contactService, log, debug)
	orderHandler := httpapi.NewOrderHandler(orderService, log, debug)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(httpapi.RequestMetrics(m))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	httpapi.RegisterRoutes(e, callbackHandler, contactHandler, orderHandler)

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop any in-flight notification sends

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Trackdesk Service stopped")
}
