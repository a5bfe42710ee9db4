package openmeteo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockDailySeries_FullLeapYear(t *testing.T) {
	// Arrange
	client := NewOpenMeteoApiClientMock()

	// Act
	records, err := client.GetDailySeries(context.Background(), 51.5074, -0.1278, "Europe/London", 2024)

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, 366, len(records), "2024 is a leap year")

	for _, r := range records {
		assert.GreaterOrEqual(t, r.DaylightHours, 0.0)
		assert.LessOrEqual(t, r.DaylightHours, 24.0)
		assert.InDelta(t, 24.0, r.DaylightHours+r.NightHours, 1e-9)
	}
}

func TestMockHourlySeries_FullLeapYear(t *testing.T) {
	// Arrange
	client := NewOpenMeteoApiClientMock()

	// Act
	records, err := client.GetHourlySeries(context.Background(), 51.5074, -0.1278, "Europe/London", 2024)

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	// Stepping in absolute hours: the BST transitions cancel out.
	assert.Equal(t, 366*24, len(records))

	for _, r := range records {
		assert.GreaterOrEqual(t, r.GHI, 0.0, "irradiance is never negative")
	}
}

func TestMockSeries_Deterministic(t *testing.T) {
	client := NewOpenMeteoApiClientMock()

	first, err := client.GetHourlySeries(context.Background(), 55.9533, -3.1883, "Europe/London", 2024)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	second, err := client.GetHourlySeries(context.Background(), 55.9533, -3.1883, "Europe/London", 2024)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, first, second, "mock series must be reproducible")
}

func TestMockDailySeries_BadTimezone(t *testing.T) {
	client := NewOpenMeteoApiClientMock()

	_, err := client.GetDailySeries(context.Background(), 0, 0, "Not/AZone", 2024)
	assert.Error(t, err)
}
