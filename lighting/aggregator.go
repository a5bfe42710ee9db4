package lighting

import (
	"sort"

	"daylight-server/models"
)

// MonthlyHours is a single month's hour sums before energy is applied.
type MonthlyHours struct {
	Month         int
	DaylightHours float64
	NightHours    float64
	LitHoursGHI   float64
}

// AggregateMonthly groups daily records and derived hourly lighting states by
// the calendar month of their local timestamps, sums each month's hours, and
// joins the two rollups on month. Only months present in both series appear;
// absent months are omitted, not zero-filled. Output is ordered January
// through December regardless of the input order.
//
// states must be the lighting flags derived from hourly, index-aligned. The
// night-only strategy lights exactly the dark hours, so its lit hours are the
// month's night-hour sum.
func AggregateMonthly(daily []models.DailyRecord, hourly []models.HourlyRecord, states []bool) []MonthlyHours {
	type hourSums struct {
		daylight float64
		night    float64
	}
	dailyByMonth := make(map[int]*hourSums)
	for _, d := range daily {
		m := int(d.Date.Month())
		if dailyByMonth[m] == nil {
			dailyByMonth[m] = &hourSums{}
		}
		dailyByMonth[m].daylight += d.DaylightHours
		dailyByMonth[m].night += d.NightHours
	}

	litByMonth := make(map[int]float64)
	for i, h := range hourly {
		m := int(h.Timestamp.Month())
		if _, ok := litByMonth[m]; !ok {
			litByMonth[m] = 0
		}
		if i < len(states) && states[i] {
			litByMonth[m]++
		}
	}

	// Join on month: a row exists only where both series contributed.
	var months []MonthlyHours
	for m, sums := range dailyByMonth {
		lit, ok := litByMonth[m]
		if !ok {
			continue
		}
		months = append(months, MonthlyHours{
			Month:         m,
			DaylightHours: sums.daylight,
			NightHours:    sums.night,
			LitHoursGHI:   lit,
		})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}
