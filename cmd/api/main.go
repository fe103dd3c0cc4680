package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"studio/internal/adapter/repo"
	"studio/internal/http/handlers"
	httpapi "studio/internal/http/httpapi"
	"studio/internal/infra"
	"studio/internal/providers/assistant"
	imageprovider "studio/internal/providers/image"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	app := &handlers.App{Config: cfg, Logger: logger}

	if cfg.HasAssistant() {
		client, err := assistant.New(assistant.Options{
			APIKey:      cfg.OpenAIAPIKey,
			AssistantID: cfg.OpenAIAssistantID,
			BaseURL:     cfg.OpenAIBaseURL,
			Logger:      logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to construct assistant client")
		}
		app.Assistant = client
		app.Scenarios = client
	} else {
		logger.Warn().Msg("assistant credentials absent; thread and scenario endpoints will refuse requests")
	}

	if cfg.HasImageProvider() {
		client, err := imageprovider.NewClient(imageprovider.Options{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			Logger:  logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to construct image client")
		}
		app.Images = client
	} else {
		logger.Warn().Msg("image provider key absent; image endpoint will refuse requests")
	}

	// Persistence is best-effort; the pool dials lazily on the first write so
	// the process boots even when the database is unreachable.
	if cfg.DatabaseURL != "" {
		lazyPool := infra.NewLazyPool(cfg)
		defer lazyPool.Close()
		app.Repo = repo.NewGenerationRepository(lazyPool)
	} else {
		logger.Info().Msg("DATABASE_URL absent; generation metadata persistence disabled")
	}

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
