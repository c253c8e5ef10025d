package app

import (
	"context"
	"fmt"
	"log/slog"

	"structify/internal/asset"
	"structify/internal/config"
	"structify/internal/extract"
	"structify/internal/handler/rpc"
	"structify/internal/llm"
	"structify/internal/server"
)

type App struct {
	server *server.Server
	stores *appStores
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := slog.Default()

	stores, err := initStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Dependencies
	gateway, err := llm.NewGeminiGateway(ctx, llm.GeminiConfig{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
	})
	if err != nil {
		stores.Close()
		return nil, fmt.Errorf("failed to initialize llm gateway: %w", err)
	}
	wrapped := llm.Wrap(gateway,
		llm.WithLogging(logger),
		llm.WithRateLimit(cfg.LLM.RPS, cfg.LLM.Burst),
	)

	registry := asset.NewRegistry(stores.assets, stores.blobs, logger)
	cache, err := extract.NewCache(stores.records, cfg.Cache.ResultEntries, logger)
	if err != nil {
		stores.Close()
		return nil, fmt.Errorf("failed to initialize extraction cache: %w", err)
	}
	extractSvc := extract.NewService(registry, wrapped, cache, logger)

	assetHandler := rpc.NewAssetHandler(registry)
	extractionHandler := rpc.NewExtractionHandler(extractSvc)

	// Routing & Server
	mux := server.NewMux(assetHandler, extractionHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		stores: stores,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.stores.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
