package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	libredis "airsense/backend/libs/redis"
	"airsense/backend/services/dashboard-service/internal/cache"
	"airsense/backend/services/dashboard-service/internal/config"
	"airsense/backend/services/dashboard-service/internal/db"
	httpserver "airsense/backend/services/dashboard-service/internal/http"
	"airsense/backend/services/dashboard-service/internal/http/handlers"
	"airsense/backend/services/dashboard-service/internal/service"
	"airsense/backend/services/dashboard-service/internal/warehouse"
)

// App wires dashboard-service dependencies.
type App struct {
	server      *httpserver.Server
	db          *sql.DB
	influxRepo  *warehouse.InfluxRepository
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	application := &App{logger: logger}

	var repo warehouse.Repository
	switch cfg.Warehouse.Driver {
	case config.DriverInflux:
		influxRepo := warehouse.NewInfluxRepository(
			cfg.Influx.URL,
			cfg.Influx.Token,
			cfg.Influx.Org,
			cfg.Influx.Bucket,
			cfg.Influx.Measurement,
		)
		application.influxRepo = influxRepo
		repo = influxRepo
	default:
		sqlDB, err := db.NewPostgres(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		application.db = sqlDB
		repo = warehouse.NewPostgresRepository(sqlDB)
	}

	var queryCache cache.Cache
	if cfg.Cache.Backend == config.CacheRedis {
		redisClient, err := libredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			application.Close()
			return nil, err
		}
		application.redisClient = redisClient
		queryCache = cache.NewRedisCache(redisClient)
	} else {
		queryCache = cache.NewMemoryCache()
	}

	cachedRepo := warehouse.NewCachedRepository(repo, queryCache, cfg.QueryTTL())
	dashboardService := service.NewDashboardService(cachedRepo, logger)

	routes := httpserver.Routes{
		Overview:  handlers.NewOverviewHandler(dashboardService, logger),
		History:   handlers.NewHistoryHandler(dashboardService, logger),
		Particles: handlers.NewParticlesHandler(dashboardService, logger),
		Records:   handlers.NewRecordsHandler(dashboardService, logger),
		Health:    handlers.NewHealthHandler(),
	}
	router := httpserver.NewRouter(routes)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	})

	application.server = httpserver.NewServer(cfg.HTTPAddress(), corsMiddleware.Handler(router), logger)
	return application, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.influxRepo != nil {
		a.influxRepo.Close()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
