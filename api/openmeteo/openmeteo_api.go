package openmeteo

import (
	"context"

	"daylight-server/models"
)

// WeatherAPI defines the interface for interacting with the Open-Meteo API
type WeatherAPI interface {
	GetCurrentWeather(ctx context.Context, lat, lon float64, tz string) (*models.CurrentWeather, error)
	GetDailySeries(ctx context.Context, lat, lon float64, tz string, year int) ([]models.DailyRecord, error)
	GetHourlySeries(ctx context.Context, lat, lon float64, tz string, year int) ([]models.HourlyRecord, error)
}
