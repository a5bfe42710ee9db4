package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"daylight-server/api"
	"daylight-server/config"
	"daylight-server/models"
)

// OpenMeteoApiClient talks to the Open-Meteo archive and forecast endpoints.
// Series queries go to the archive host, current conditions to the forecast
// host, hence the two embedded clients.
type OpenMeteoApiClient struct {
	archiveClient  *api.HTTPClient
	forecastClient *api.HTTPClient
}

// NewOpenMeteoApiClient creates a new instance of OpenMeteoApiClient
func NewOpenMeteoApiClient(archiveClient, forecastClient *api.HTTPClient) *OpenMeteoApiClient {
	return &OpenMeteoApiClient{
		archiveClient:  archiveClient,
		forecastClient: forecastClient,
	}
}

// GetCurrentWeather retrieves current conditions for a location.
func (c *OpenMeteoApiClient) GetCurrentWeather(ctx context.Context, lat, lon float64, tz string) (*models.CurrentWeather, error) {
	ctx, cancel := context.WithTimeout(ctx, config.CURRENT_WEATHER_REQUEST_TIMEOUT)
	defer cancel()

	query := locationQuery(lat, lon, tz)
	query.Set("current_weather", "true")

	var response models.CurrentWeatherResponse
	err := c.forecastClient.GetWithContext(ctx, "/forecast", query, &response)
	if err != nil {
		return nil, fmt.Errorf("current weather fetch failed: %w", err)
	}
	return &response.CurrentWeather, nil
}

// GetDailySeries retrieves the daylight-duration series for every day of year.
func (c *OpenMeteoApiClient) GetDailySeries(ctx context.Context, lat, lon float64, tz string, year int) ([]models.DailyRecord, error) {
	query := yearQuery(lat, lon, tz, year)
	query.Set("daily", "daylight_duration")

	var response models.DailyArchiveResponse
	err := c.archiveGet(ctx, query, config.DAILY_REQUEST_TIMEOUT, &response)
	if err != nil {
		return nil, fmt.Errorf("daily series fetch failed: %w", err)
	}
	return response.DailyRecords(tz)
}

// GetHourlySeries retrieves the shortwave-radiation (GHI) series for every
// hour of year.
func (c *OpenMeteoApiClient) GetHourlySeries(ctx context.Context, lat, lon float64, tz string, year int) ([]models.HourlyRecord, error) {
	query := yearQuery(lat, lon, tz, year)
	query.Set("hourly", "shortwave_radiation")

	var response models.HourlyArchiveResponse
	err := c.archiveGet(ctx, query, config.HOURLY_REQUEST_TIMEOUT, &response)
	if err != nil {
		return nil, fmt.Errorf("hourly series fetch failed: %w", err)
	}
	return response.HourlyRecords(tz)
}

func (c *OpenMeteoApiClient) archiveGet(ctx context.Context, query url.Values, timeout time.Duration, response interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.archiveClient.GetWithContext(ctx, "/archive", query, response)
}

func locationQuery(lat, lon float64, tz string) url.Values {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	query.Set("timezone", tz)
	return query
}

func yearQuery(lat, lon float64, tz string, year int) url.Values {
	query := locationQuery(lat, lon, tz)
	query.Set("start_date", fmt.Sprintf("%d-01-01", year))
	query.Set("end_date", fmt.Sprintf("%d-12-31", year))
	return query
}
