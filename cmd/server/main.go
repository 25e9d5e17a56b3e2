package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/inventory-assistant-service/config"
	"github.com/fekuna/inventory-assistant-service/internal/assistant"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/gemini"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/handler"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/repository"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/usecase"
	"github.com/fekuna/inventory-assistant-service/internal/server"
	"github.com/fekuna/inventory-assistant-service/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Repository (inventory backend API client)
	repo := repository.NewBackendRepository(&cfg.Backend)
	appLogger.Info("Using inventory backend", zap.String("base_url", cfg.Backend.BaseURL))

	// 4. Select chat engine
	var uc assistant.UseCase
	switch cfg.Server.Engine {
	case "gemini":
		engine, err := gemini.NewEngine(context.Background(), &cfg.Gemini, repo, cfg.Backend.TransactionLookbackDays, appLogger)
		if err != nil {
			appLogger.Fatal("Could not initialize Gemini engine", zap.Error(err))
		}
		uc = engine
		appLogger.Info("Using Gemini chat engine", zap.String("model", cfg.Gemini.Model))
	default:
		uc = usecase.NewAssistantUseCase(repo, cfg.Backend.TransactionLookbackDays, appLogger)
		appLogger.Info("Using rule-based analytics engine")
	}

	// 5. HTTP server
	assistantHandler := handler.NewAssistantHandler(uc, appLogger)
	router := server.SetupRoutes(&cfg.Server, assistantHandler)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 6. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited")
}
