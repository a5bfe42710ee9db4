package lighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"daylight-server/models"
)

func fullYearDaily(t *testing.T, year int) []models.DailyRecord {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatal(err)
	}
	var records []models.DailyRecord
	day := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	for day.Year() == year {
		// arbitrary but valid split, varies by day of year
		daylight := 8 + float64(day.YearDay()%8)
		records = append(records, models.DailyRecord{
			Date:          day,
			DaylightHours: daylight,
			NightHours:    24 - daylight,
		})
		day = day.AddDate(0, 0, 1)
	}
	return records
}

func fullYearHourly(t *testing.T, year int) []models.HourlyRecord {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatal(err)
	}
	var records []models.HourlyRecord
	stamp := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	for stamp.Year() == year {
		records = append(records, models.HourlyRecord{Timestamp: stamp, GHI: 0})
		stamp = stamp.Add(time.Hour)
	}
	return records
}

func TestAggregateMonthly_FullYearHasTwelveOrderedRows(t *testing.T) {
	daily := fullYearDaily(t, 2024)
	hourly := fullYearHourly(t, 2024)
	states := make([]bool, len(hourly))

	// shuffle-ish input order: feed the back half first
	reordered := append(append([]models.DailyRecord{}, daily[180:]...), daily[:180]...)

	months := AggregateMonthly(reordered, hourly, states)

	assert.Equal(t, 12, len(months))
	for i, m := range months {
		assert.Equal(t, i+1, m.Month, "rows must run January through December")
	}
}

func TestAggregateMonthly_HoursComplementOverFullYear(t *testing.T) {
	daily := fullYearDaily(t, 2024)
	hourly := fullYearHourly(t, 2024)
	states := make([]bool, len(hourly))

	months := AggregateMonthly(daily, hourly, states)

	var daylightSum, nightSum float64
	for _, m := range months {
		daylightSum += m.DaylightHours
		nightSum += m.NightHours
	}
	assert.InDelta(t, 24*366, daylightSum+nightSum, 1e-6)
}

func TestAggregateMonthly_LitHoursCountTrueFlags(t *testing.T) {
	daily := fullYearDaily(t, 2024)
	hourly := fullYearHourly(t, 2024)

	// lights on for every hour of January and nothing else
	states := make([]bool, len(hourly))
	var wantJanuary float64
	for i, h := range hourly {
		if h.Timestamp.Month() == time.January {
			states[i] = true
			wantJanuary++
		}
	}

	months := AggregateMonthly(daily, hourly, states)

	assert.Equal(t, wantJanuary, months[0].LitHoursGHI)
	for _, m := range months[1:] {
		assert.Equal(t, 0.0, m.LitHoursGHI, "month %d", m.Month)
	}
}

func TestAggregateMonthly_NightStrategyUsesNightSum(t *testing.T) {
	daily := fullYearDaily(t, 2024)
	hourly := fullYearHourly(t, 2024)
	states := make([]bool, len(hourly))

	months := AggregateMonthly(daily, hourly, states)

	// January 2024: 31 days. Night hours must sum to the per-day complements.
	var wantNight float64
	for _, d := range daily {
		if d.Date.Month() == time.January {
			wantNight += d.NightHours
		}
	}
	assert.InDelta(t, wantNight, months[0].NightHours, 1e-9)
}

func TestAggregateMonthly_AbsentMonthsOmitted(t *testing.T) {
	daily := fullYearDaily(t, 2024)
	hourly := fullYearHourly(t, 2024)
	states := make([]bool, len(hourly))

	// Keep only March in the daily series: the join drops every other month.
	var march []models.DailyRecord
	for _, d := range daily {
		if d.Date.Month() == time.March {
			march = append(march, d)
		}
	}

	months := AggregateMonthly(march, hourly, states)

	assert.Equal(t, 1, len(months))
	assert.Equal(t, 3, months[0].Month)
}

func TestAggregateMonthly_EmptyInputs(t *testing.T) {
	months := AggregateMonthly(nil, nil, nil)
	assert.Empty(t, months)
}
