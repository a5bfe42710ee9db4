package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllCities_CatalogShape(t *testing.T) {
	assert.Equal(t, 17, len(AllCities))

	seen := map[string]bool{}
	for _, c := range AllCities {
		key := c.DisplayName()
		assert.False(t, seen[key], "duplicate catalog entry %s", key)
		seen[key] = true

		assert.NotEmpty(t, c.TZ)
		assert.GreaterOrEqual(t, c.Lat, -90.0)
		assert.LessOrEqual(t, c.Lat, 90.0)
	}
}

func TestFindCity(t *testing.T) {
	city, err := FindCity("Kochi, India")
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", city.TZ)

	_, err = FindCity("Kochi")
	assert.Error(t, err, "lookup requires the Name, Country form")
}
