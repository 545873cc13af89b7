package app

import (
	"context"

	"go.uber.org/zap"

	"airsense/backend/services/ingest-service/internal/config"
	httpserver "airsense/backend/services/ingest-service/internal/http"
	"airsense/backend/services/ingest-service/internal/http/handlers"
	"airsense/backend/services/ingest-service/internal/service"
	"airsense/backend/services/ingest-service/internal/state"
)

// App wires ingest service dependencies.
type App struct {
	server *httpserver.Server
}

// New constructs application components.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	store := state.NewLatestStore()
	ingestService := service.NewIngestService(store, logger)

	routes := httpserver.Routes{
		Update: handlers.NewUpdateHandler(ingestService, logger),
		Data:   handlers.NewDataHandler(ingestService),
		Health: handlers.NewHealthHandler(),
	}
	router := httpserver.NewRouter(routes)

	var server *httpserver.Server
	if cfg.TLSEnabled() {
		server = httpserver.NewTLSServer(cfg.TLSAddress(), cfg.TLS.CertFile, cfg.TLS.KeyFile, router, logger)
	} else {
		server = httpserver.NewServer(cfg.HTTPAddress(), router, logger)
	}

	return &App{server: server}, nil
}

// Run starts serving HTTP requests.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}
