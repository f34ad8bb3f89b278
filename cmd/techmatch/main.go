package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"techmatch/internal/api"
	"techmatch/internal/api/handlers"
	"techmatch/internal/repository"
	"techmatch/internal/service"
	"techmatch/pkg/config"
	"techmatch/pkg/logger"
	"techmatch/pkg/postgres"

	"go.uber.org/zap"
)

// @title TechMatch - API de Análise de Currículos
// @version 1.0.0
// @description API para análise de currículos com IA: sumarização individual e consultas comparativas sobre múltiplos arquivos (PDF, JPG, PNG), com OCR para imagens.

// @contact.name API Support

// @host localhost:8000
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting TechMatch service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logRepo := repository.NewLogRepository(db, appLogger)
	if err := logRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to ensure request_logs schema", zap.Error(err))
	}

	extractor := service.NewExtractor(appLogger)

	agent, err := service.NewAgent(&cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize agent client", zap.Error(err))
	}

	analysis := service.NewAnalysis(agent, appLogger)
	logSink := service.NewLogSink(logRepo, appLogger)

	healthHandler := handlers.NewHealthHandler()
	curriculoHandler := handlers.NewCurriculoHandler(extractor, analysis, logSink, appLogger)

	app := api.SetupRouter(&cfg.Server, healthHandler, curriculoHandler)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
