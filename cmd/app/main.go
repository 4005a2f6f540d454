package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/casedrop/casedrop/internal/bootstrap"
	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/concurrency"
	"github.com/casedrop/casedrop/internal/config"
	"github.com/casedrop/casedrop/internal/database"
	"github.com/casedrop/casedrop/internal/draw"
	"github.com/casedrop/casedrop/internal/ledger"
	"github.com/casedrop/casedrop/internal/opening"
	"github.com/casedrop/casedrop/internal/presentation"
	"github.com/casedrop/casedrop/internal/server"
	"github.com/casedrop/casedrop/internal/user"
)

const (
	dbMaxConnections  = 10
	dbMaxIdleTime     = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute
	shutdownTimeout   = 10 * time.Second
	startupTimeout    = 30 * time.Second
)

// @title Casedrop API
// @version 1.0
// @description Card case-opening storefront: buy cases, draw cards, keep or sell.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	slog.Info(bootstrap.LogMsgStartingStorefront, "port", cfg.Port, "environment", cfg.Environment)

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	if err := bootstrap.SyncCatalog(startupCtx, cfg.CatalogPath, repos.Catalog); err != nil {
		cancelStartup()
		slog.Error("Catalog sync failed", "error", err)
		os.Exit(1)
	}
	cancelStartup()

	locks := concurrency.NewLockManager()
	catalogService := catalog.NewService(repos.Catalog)
	drawEngine := draw.NewEngine(draw.NewRandSource())
	revealAdapter := presentation.NewEventBusAdapter(publisher)
	ledgerService := ledger.NewService(repos.Ledger, publisher, locks)
	openingService := opening.NewService(repos.Opening, catalogService, drawEngine, revealAdapter, publisher, locks)
	userService := user.NewService(repos.User, ledgerService, publisher, locks, cfg.StartingBalance)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, catalogService, openingService, ledgerService, userService)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	bootstrap.GracefulShutdown(&bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
	}, shutdownTimeout)
}
