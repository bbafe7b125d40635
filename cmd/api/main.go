package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskmaster-ai/config"
	_ "taskmaster-ai/docs" // Swagger docs
	"taskmaster-ai/internal/httpserver"
	"taskmaster-ai/pkg/duedate"
	"taskmaster-ai/pkg/encrypter"
	"taskmaster-ai/pkg/log"
	"taskmaster-ai/pkg/postgres"
	"taskmaster-ai/pkg/scope"
)

// @title       TaskMaster AI API
// @description Task management with AI-assisted analysis and a heuristic fallback.
// @version     1
// @host        localhost:5000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskMaster AI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Postgres: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅ Postgres connected")

	// 4. Auth
	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		os.Exit(1)
	}

	// 5. Due dates
	resolver, err := duedate.NewResolver(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		resolver, _ = duedate.NewResolver("UTC")
	}

	// 6. Task analysis engine
	analyzer := newAnalyzer(ctx, logger, cfg.Analysis)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      db,
		JWTManager:      jwtManager,
		Encrypter:       encrypter.New(encrypter.DefaultCost),
		Analyzer:        analyzer,
		Resolver:        resolver,
		CORS:            cfg.CORS,
		RateLimit:       cfg.RateLimit,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		db.Close()
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
