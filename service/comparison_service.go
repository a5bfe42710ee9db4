package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"daylight-server/api/openmeteo"
	"daylight-server/config"
	"daylight-server/dao/redis"
	"daylight-server/lighting"
	"daylight-server/models"
)

// ComparisonRequest is the immutable input of one comparison run: the city
// selections and the facility parameters captured at request time.
type ComparisonRequest struct {
	City1      models.City
	City2      *models.City // optional
	Parameters models.FacilityParameters
	Year       int
}

// ComparisonService runs the per-city pipeline (fetch → derive → aggregate →
// estimate) and merges two cities' monthly tables for side-by-side reporting.
type ComparisonService struct {
	weatherAPI openmeteo.WeatherAPI
	seriesDao  *redis.RedisSeriesDAO
}

// NewComparisonService constructs a ComparisonService with its dependencies.
func NewComparisonService(
	weatherAPI openmeteo.WeatherAPI,
	seriesDao *redis.RedisSeriesDAO) *ComparisonService {

	return &ComparisonService{
		weatherAPI: weatherAPI,
		seriesDao:  seriesDao,
	}
}

// Compare runs independent pipelines for one or two cities concurrently and,
// when both are present, inner-joins their monthly tables on month.
func (cs *ComparisonService) Compare(ctx context.Context, req ComparisonRequest) (*models.ComparisonResult, error) {
	params := req.Parameters.Normalized()
	year := req.Year
	if year == 0 {
		year = config.BASELINE_YEAR
	}

	result := &models.ComparisonResult{Parameters: params}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		report, err := cs.ProcessCity(ctx, req.City1, params, year)
		if err != nil {
			return fmt.Errorf("pipeline failed for %s: %w", req.City1.DisplayName(), err)
		}
		result.City1 = *report
		return nil
	})
	if req.City2 != nil {
		city2 := *req.City2
		group.Go(func() error {
			report, err := cs.ProcessCity(ctx, city2, params, year)
			if err != nil {
				return fmt.Errorf("pipeline failed for %s: %w", city2.DisplayName(), err)
			}
			result.City2 = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if result.City2 != nil {
		result.Merged = mergeMonthly(result.City1.Monthly, result.City2.Monthly)
	}
	return result, nil
}

// ProcessCity runs the full pipeline for one city: both series fetched
// concurrently (through the cache), lighting states derived, monthly rollups
// joined on month, and both strategies' energy estimated. Either fetch
// failing fails the whole city; there are no partial results.
func (cs *ComparisonService) ProcessCity(ctx context.Context, city models.City, params models.FacilityParameters, year int) (*models.CityReport, error) {
	log.Printf("[ComparisonService] Processing %s for %d", city.DisplayName(), year)

	var daily []models.DailyRecord
	var hourly []models.HourlyRecord

	// Join barrier: aggregation needs both series. The derived context
	// cancels the sibling fetch as soon as either one fails.
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		daily, err = cs.fetchDaily(ctx, city, year)
		return err
	})
	group.Go(func() error {
		var err error
		hourly, err = cs.fetchHourly(ctx, city, year)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	ghi := make([]float64, len(hourly))
	for i, h := range hourly {
		ghi[i] = h.GHI
	}
	states := lighting.DeriveLightingStates(ghi, params.GHIOnThreshold, params.GHIOffThreshold)

	months := lighting.AggregateMonthly(daily, hourly, states)

	report := &models.CityReport{City: city, Year: year}
	for _, m := range months {
		row := models.MonthlyAggregate{
			Month:          m.Month,
			MonthName:      models.MonthName(m.Month),
			DaylightHours:  m.DaylightHours,
			NightHours:     m.NightHours,
			LitHoursNight:  m.NightHours,
			LitHoursGHI:    m.LitHoursGHI,
			EnergyNightKWh: lighting.EnergyKWh(m.NightHours, params),
			EnergyGHIKWh:   lighting.EnergyKWh(m.LitHoursGHI, params),
		}
		report.Monthly = append(report.Monthly, row)

		report.Totals.DaylightHours += row.DaylightHours
		report.Totals.NightHours += row.NightHours
		report.Totals.EnergyNightKWh += row.EnergyNightKWh
		report.Totals.EnergyGHIKWh += row.EnergyGHIKWh
	}

	log.Printf("[ComparisonService] %s: %d monthly rows", city.DisplayName(), len(report.Monthly))
	return report, nil
}

// GetCurrentWeather proxies current conditions for a city. Never cached.
func (cs *ComparisonService) GetCurrentWeather(ctx context.Context, city models.City) (*models.CurrentWeather, error) {
	return cs.weatherAPI.GetCurrentWeather(ctx, city.Lat, city.Lon, city.TZ)
}

func (cs *ComparisonService) fetchDaily(ctx context.Context, city models.City, year int) ([]models.DailyRecord, error) {
	cached, err := cs.seriesDao.GetDailySeries(city.Lat, city.Lon, city.TZ, year)
	if err != nil {
		log.Printf("[ComparisonService] Daily cache read failed for %s: %v", city.DisplayName(), err)
	}
	if cached != nil {
		return cached, nil
	}

	records, err := cs.weatherAPI.GetDailySeries(ctx, city.Lat, city.Lon, city.TZ, year)
	if err != nil {
		return nil, err
	}
	if err := cs.seriesDao.SetDailySeries(city.Lat, city.Lon, city.TZ, year, records, config.SERIES_CACHE_TTL); err != nil {
		log.Printf("[ComparisonService] Daily cache write failed for %s: %v", city.DisplayName(), err)
	}
	return records, nil
}

func (cs *ComparisonService) fetchHourly(ctx context.Context, city models.City, year int) ([]models.HourlyRecord, error) {
	cached, err := cs.seriesDao.GetHourlySeries(city.Lat, city.Lon, city.TZ, year)
	if err != nil {
		log.Printf("[ComparisonService] Hourly cache read failed for %s: %v", city.DisplayName(), err)
	}
	if cached != nil {
		return cached, nil
	}

	records, err := cs.weatherAPI.GetHourlySeries(ctx, city.Lat, city.Lon, city.TZ, year)
	if err != nil {
		return nil, err
	}
	if err := cs.seriesDao.SetHourlySeries(city.Lat, city.Lon, city.TZ, year, records, config.SERIES_CACHE_TTL); err != nil {
		log.Printf("[ComparisonService] Hourly cache write failed for %s: %v", city.DisplayName(), err)
	}
	return records, nil
}

// mergeMonthly inner-joins two monthly tables on calendar month.
func mergeMonthly(city1, city2 []models.MonthlyAggregate) []models.ComparisonRow {
	byMonth := make(map[int]models.MonthlyAggregate, len(city2))
	for _, row := range city2 {
		byMonth[row.Month] = row
	}

	var merged []models.ComparisonRow
	for _, row := range city1 {
		other, ok := byMonth[row.Month]
		if !ok {
			continue
		}
		merged = append(merged, models.ComparisonRow{
			Month:     row.Month,
			MonthName: row.MonthName,
			City1:     row,
			City2:     other,
		})
	}
	return merged
}
