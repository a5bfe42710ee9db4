package config

import (
	"os"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Open-Meteo endpoints
const OPEN_METEO_ARCHIVE_ENDPOINT_BASE = "https://archive-api.open-meteo.com/v1"
const OPEN_METEO_FORECAST_ENDPOINT_BASE = "https://api.open-meteo.com/v1"

// All historical queries run against this fixed year.
const BASELINE_YEAR = 2024

// Request timeouts. Hourly payloads carry 8760+ points so they get more room.
const DAILY_REQUEST_TIMEOUT = 30 * time.Second
const HOURLY_REQUEST_TIMEOUT = 60 * time.Second
const CURRENT_WEATHER_REQUEST_TIMEOUT = 30 * time.Second

// Series cache TTL. Current-weather responses are never cached.
const SERIES_CACHE_TTL = 7 * 24 * time.Hour

// Server config
const HTTP_SERVER_ADDRESS = ":8080"
const HTTP_SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Default facility parameters, used when a request omits them.
const DEFAULT_FACADE_AREA_M2 = 1000.0
const DEFAULT_LPD_W_PER_M2 = 1.6
const DEFAULT_CONTROL_FACTOR = 0.8
const DEFAULT_GHI_ON_THRESHOLD = 10.0
const DEFAULT_GHI_OFF_THRESHOLD = 50.0

// Chart config: fixed Y range keeps two runs visually comparable.
const CHART_HOURS_AXIS_MIN = 100
const CHART_HOURS_AXIS_MAX = 600

// RedisAddress returns the Redis address, honoring the REDIS_ADDRESS env var.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// RedisPassword returns the Redis password, honoring the REDIS_PASSWORD env var.
func RedisPassword() string {
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		return pass
	}
	return REDIS_DB_PASSWORD
}
