package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"daylight-server/db"
	"daylight-server/models"
)

func TestSeriesDAO_DailyRoundTrip(t *testing.T) {
	// Arrange
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))
	loc, _ := time.LoadLocation("Europe/London")
	records := []models.DailyRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, loc), DaylightHours: 8, NightHours: 16},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, loc), DaylightHours: 8.1, NightHours: 15.9},
	}

	// Act
	err := dao.SetDailySeries(51.5074, -0.1278, "Europe/London", 2024, records, time.Hour)
	assert.NoError(t, err)

	got, err := dao.GetDailySeries(51.5074, -0.1278, "Europe/London", 2024)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, len(records), len(got))
	assert.Equal(t, records[0].DaylightHours, got[0].DaylightHours)
	assert.True(t, records[0].Date.Equal(got[0].Date))
}

func TestSeriesDAO_MissReturnsNilNil(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	got, err := dao.GetDailySeries(0, 0, "UTC", 2024)
	assert.NoError(t, err)
	assert.Nil(t, got)

	hourly, err := dao.GetHourlySeries(0, 0, "UTC", 2024)
	assert.NoError(t, err)
	assert.Nil(t, hourly)
}

func TestSeriesDAO_KeysAreLocationScoped(t *testing.T) {
	dao := NewRedisSeriesDAO(db.NewMockRedisClient(context.Background()))

	records := []models.HourlyRecord{{Timestamp: time.Now(), GHI: 120}}
	assert.NoError(t, dao.SetHourlySeries(51.5074, -0.1278, "Europe/London", 2024, records, time.Hour))

	// Different coordinates must not hit the cached entry.
	got, err := dao.GetHourlySeries(40.4168, -3.7038, "Europe/Madrid", 2024)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSeriesDAO_CorruptEntryIsAnError(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisSeriesDAO(client)

	client.Set("daily_series_v1:51.5074_-0.1278_Europe/London_2024", `{"not`, 0)

	_, err := dao.GetDailySeries(51.5074, -0.1278, "Europe/London", 2024)
	assert.Error(t, err)
}
