package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"daylight-server/api"
	"daylight-server/api/openmeteo"
	"daylight-server/config"
	"daylight-server/dao/redis"
	"daylight-server/db"
	"daylight-server/server"
	"daylight-server/server/handlers"
	services "daylight-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient        db.RedisClient
	SeriesDao          *redis.RedisSeriesDAO
	WeatherAPI         openmeteo.WeatherAPI
	ComparisonService  *services.ComparisonService
	ComparisonHandler  *handlers.ComparisonHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	DaylightHttpServer *server.DaylightHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client. Off-prod runs fully in memory.
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis mock")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.RedisPassword(),
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize series cache DAO
	seriesDao := redis.NewRedisSeriesDAO(redisClient)

	// Initialize weather API - synthetic off-prod
	var weatherAPI openmeteo.WeatherAPI
	if env != "prod" {
		weatherAPI = openmeteo.NewOpenMeteoApiClientMock()
		log.Printf("Using mock open-meteo api")
	} else {
		log.Printf("Using prod open-meteo api")
		archiveClient := api.NewHTTPClient(config.OPEN_METEO_ARCHIVE_ENDPOINT_BASE)
		forecastClient := api.NewHTTPClient(config.OPEN_METEO_FORECAST_ENDPOINT_BASE)
		weatherAPI = openmeteo.NewOpenMeteoApiClient(archiveClient, forecastClient)
	}

	// Initialize service layer
	comparisonService := services.NewComparisonService(weatherAPI, seriesDao)

	// Initialize handlers
	comparisonHandler := handlers.NewComparisonHandler(comparisonService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(comparisonHandler, muxRouter)

	// Initialize daylight server
	daylightHttpServer := server.NewDaylightHttpServer(router, muxRouter)

	return &Container{
		RedisClient:        redisClient,
		SeriesDao:          seriesDao,
		WeatherAPI:         weatherAPI,
		ComparisonService:  comparisonService,
		ComparisonHandler:  comparisonHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		DaylightHttpServer: daylightHttpServer,
	}
}
