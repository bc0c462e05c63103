package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partymenu/internal/api"
	"partymenu/internal/catalog"
	"partymenu/internal/config"
	"partymenu/internal/database"
	"partymenu/internal/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")
	port       = flag.Int("port", 0, "API server port (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("Party Menu API stopped", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run serves until shutdown. Deferred cleanup always runs before it returns.
func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	store, err := initializeStore(cfg, sugar)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer store.Close()

	current, err := store.LoadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := monitoring.NewMetrics()
	menuAPI := api.NewMenuAPI(current, api.Options{
		Source:       store,
		Monitor:      monitoring.NewMonitor(),
		Metrics:      metrics,
		Logger:       sugar,
		JWTSecret:    cfg.JWTSecret,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	var metricsServer *http.Server
	if cfg.MetricsConfig.Enabled {
		metricsServer = newMetricsServer(cfg, metrics)
		go func() {
			sugar.Infow("Starting metrics server", "port", cfg.MetricsConfig.Port)
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				sugar.Errorw("Metrics server error", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: menuAPI.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		sugar.Info("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				sugar.Errorw("Metrics server shutdown error", "error", err)
			}
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("API server shutdown error", "error", err)
		}
	}()

	sugar.Infow("Starting API server", "port", cfg.Port, "dishes", len(current.Dishes))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("API server error: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	z := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		z = zap.NewDevelopmentConfig()
	}
	z.Level = zap.NewAtomicLevelAt(lvl)
	return z.Build()
}

// initializeStore opens the database and seeds it on first run
func initializeStore(cfg *config.Config, logger *zap.SugaredLogger) (*database.Store, error) {
	store, err := database.Open(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	var seed *catalog.Catalog
	if cfg.Catalog.DishesFile != "" {
		seed, err = catalog.LoadFiles(cfg.Catalog.DishesFile, cfg.Catalog.IngredientsFile)
	} else {
		seed, err = catalog.Default()
	}
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load seed catalog: %w", err)
	}

	if _, err := store.Seed(seed); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func newMetricsServer(cfg *config.Config, metrics *monitoring.Metrics) *http.Server {
	metricsRouter := gin.New()
	metricsRouter.GET(cfg.MetricsConfig.Path, gin.WrapH(metrics.Handler()))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.MetricsConfig.Port),
		Handler: metricsRouter,
	}
}
