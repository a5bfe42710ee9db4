package models

import (
	"fmt"
	"time"
)

// Open-Meteo returns timestamps already localized to the requested timezone.
const dailyTimeLayout = "2006-01-02"
const hourlyTimeLayout = "2006-01-02T15:04"

// DailyRecord is one calendar day of daylight observation.
type DailyRecord struct {
	Date          time.Time `json:"date"`
	DaylightHours float64   `json:"daylight_h"`
	NightHours    float64   `json:"night_h"`
}

// HourlyRecord is one hour of global horizontal irradiance observation.
type HourlyRecord struct {
	Timestamp time.Time `json:"datetime"`
	GHI       float64   `json:"ghi_wm2"`
}

// DailyArchiveResponse mirrors the archive endpoint's daily payload.
type DailyArchiveResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		DaylightDuration []float64 `json:"daylight_duration"`
	} `json:"daily"`
}

// HourlyArchiveResponse mirrors the archive endpoint's hourly payload.
type HourlyArchiveResponse struct {
	Hourly struct {
		Time               []string  `json:"time"`
		ShortwaveRadiation []float64 `json:"shortwave_radiation"`
	} `json:"hourly"`
}

// DailyRecords converts the payload into DailyRecords in the given timezone.
// Daylight durations arrive in seconds; night hours are the complement of 24.
func (r *DailyArchiveResponse) DailyRecords(tz string) ([]DailyRecord, error) {
	if len(r.Daily.Time) != len(r.Daily.DaylightDuration) {
		return nil, fmt.Errorf("daily payload mismatch: %d dates vs %d durations",
			len(r.Daily.Time), len(r.Daily.DaylightDuration))
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	records := make([]DailyRecord, len(r.Daily.Time))
	for i, ts := range r.Daily.Time {
		date, err := time.ParseInLocation(dailyTimeLayout, ts, loc)
		if err != nil {
			return nil, fmt.Errorf("malformed daily date %q: %w", ts, err)
		}
		daylightH := r.Daily.DaylightDuration[i] / 3600
		records[i] = DailyRecord{
			Date:          date,
			DaylightHours: daylightH,
			NightHours:    24 - daylightH,
		}
	}
	return records, nil
}

// HourlyRecords converts the payload into HourlyRecords in the given timezone.
func (r *HourlyArchiveResponse) HourlyRecords(tz string) ([]HourlyRecord, error) {
	if len(r.Hourly.Time) != len(r.Hourly.ShortwaveRadiation) {
		return nil, fmt.Errorf("hourly payload mismatch: %d timestamps vs %d readings",
			len(r.Hourly.Time), len(r.Hourly.ShortwaveRadiation))
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	records := make([]HourlyRecord, len(r.Hourly.Time))
	for i, ts := range r.Hourly.Time {
		stamp, err := time.ParseInLocation(hourlyTimeLayout, ts, loc)
		if err != nil {
			return nil, fmt.Errorf("malformed hourly timestamp %q: %w", ts, err)
		}
		records[i] = HourlyRecord{Timestamp: stamp, GHI: r.Hourly.ShortwaveRadiation[i]}
	}
	return records, nil
}
