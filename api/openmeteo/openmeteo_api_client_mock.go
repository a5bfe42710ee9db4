package openmeteo

import (
	"context"
	"fmt"
	"math"
	"time"

	"daylight-server/models"
)

// OpenMeteoApiClientMock synthesizes a deterministic weather year so the
// service can run and be tested without network access. Daylight follows a
// latitude-scaled seasonal sinusoid; GHI follows a midday bell inside each
// day's daylight window.
type OpenMeteoApiClientMock struct{}

// NewOpenMeteoApiClientMock creates a new instance of OpenMeteoApiClientMock
func NewOpenMeteoApiClientMock() *OpenMeteoApiClientMock {
	return &OpenMeteoApiClientMock{}
}

// GetCurrentWeather returns fixed mild conditions.
func (c *OpenMeteoApiClientMock) GetCurrentWeather(ctx context.Context, lat, lon float64, tz string) (*models.CurrentWeather, error) {
	return &models.CurrentWeather{
		Temperature: 14.5,
		Windspeed:   11.0,
		WeatherCode: 2,
	}, nil
}

// GetDailySeries synthesizes one DailyRecord per day of year.
func (c *OpenMeteoApiClientMock) GetDailySeries(ctx context.Context, lat, lon float64, tz string, year int) ([]models.DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	var records []models.DailyRecord
	day := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	for day.Year() == year {
		daylightH := daylightHours(lat, day.YearDay())
		records = append(records, models.DailyRecord{
			Date:          day,
			DaylightHours: daylightH,
			NightHours:    24 - daylightH,
		})
		day = day.AddDate(0, 0, 1)
	}
	return records, nil
}

// GetHourlySeries synthesizes one HourlyRecord per hour of year.
func (c *OpenMeteoApiClientMock) GetHourlySeries(ctx context.Context, lat, lon float64, tz string, year int) ([]models.HourlyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	var records []models.HourlyRecord
	stamp := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	for stamp.Year() == year {
		records = append(records, models.HourlyRecord{
			Timestamp: stamp,
			GHI:       irradianceAt(lat, stamp),
		})
		stamp = stamp.Add(time.Hour)
	}
	return records, nil
}

// daylightHours approximates day length for a latitude and day of year:
// 12h baseline plus a seasonal swing that grows with latitude, peaking at
// the June solstice (≈ day 172).
func daylightHours(lat float64, yearDay int) float64 {
	seasonal := math.Sin(2 * math.Pi * float64(yearDay-80) / 365.25)
	amplitude := 8 * math.Abs(lat) / 90
	h := 12 + amplitude*seasonal
	if h < 0 {
		return 0
	}
	if h > 24 {
		return 24
	}
	return h
}

// irradianceAt places a clear-sky bell across the day's daylight window,
// peaking at solar noon.
func irradianceAt(lat float64, stamp time.Time) float64 {
	daylightH := daylightHours(lat, stamp.YearDay())
	sunrise := 12 - daylightH/2
	sunset := 12 + daylightH/2
	hour := float64(stamp.Hour())
	if hour < sunrise || hour > sunset || daylightH == 0 {
		return 0
	}
	peak := 650.0
	return peak * math.Sin(math.Pi*(hour-sunrise)/daylightH)
}
