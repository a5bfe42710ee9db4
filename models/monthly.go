package models

import "time"

// MonthlyAggregate is one month's rollup for one city: summed daylight and
// night hours, lit hours under each control strategy, and the resulting
// energy estimates.
type MonthlyAggregate struct {
	Month          int     `json:"month"`
	MonthName      string  `json:"month_name"`
	DaylightHours  float64 `json:"daylight_h"`
	NightHours     float64 `json:"night_h"`
	LitHoursNight  float64 `json:"lit_hours_night"`
	LitHoursGHI    float64 `json:"lit_hours_ghi"`
	EnergyNightKWh float64 `json:"energy_night_kwh"`
	EnergyGHIKWh   float64 `json:"energy_ghi_kwh"`
}

// AnnualTotals summarizes a city's year.
type AnnualTotals struct {
	DaylightHours  float64 `json:"daylight_h"`
	NightHours     float64 `json:"night_h"`
	EnergyNightKWh float64 `json:"energy_night_kwh"`
	EnergyGHIKWh   float64 `json:"energy_ghi_kwh"`
}

// CityReport is the full pipeline output for one city.
type CityReport struct {
	City    City               `json:"city"`
	Year    int                `json:"year"`
	Monthly []MonthlyAggregate `json:"monthly"`
	Totals  AnnualTotals       `json:"totals"`
}

// ComparisonRow pairs both cities' figures for one calendar month. Rows only
// exist for months present in both cities' tables.
type ComparisonRow struct {
	Month     int              `json:"month"`
	MonthName string           `json:"month_name"`
	City1     MonthlyAggregate `json:"city1"`
	City2     MonthlyAggregate `json:"city2"`
}

// ComparisonResult is the top-level response for a one- or two-city run.
type ComparisonResult struct {
	Parameters FacilityParameters `json:"parameters"`
	City1      CityReport         `json:"city1"`
	City2      *CityReport        `json:"city2,omitempty"`
	Merged     []ComparisonRow    `json:"merged,omitempty"`
}

// MonthName returns the English name for a 1-based month number.
func MonthName(month int) string {
	return time.Month(month).String()
}
