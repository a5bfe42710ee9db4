package models

import "fmt"

// City is an immutable catalog entry. Identity is Name+Country.
type City struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	TZ      string  `json:"tz"`
}

// DisplayName is the "Name, Country" form used by pickers and lookups.
func (c City) DisplayName() string {
	return fmt.Sprintf("%s, %s", c.Name, c.Country)
}

// AllCities is the static city catalog. Never mutated after init.
var AllCities = []City{
	// UK
	{Name: "London", Country: "UK", Lat: 51.5074, Lon: -0.1278, TZ: "Europe/London"},
	{Name: "Edinburgh", Country: "UK", Lat: 55.9533, Lon: -3.1883, TZ: "Europe/London"},
	{Name: "Glasgow", Country: "UK", Lat: 55.8642, Lon: -4.2518, TZ: "Europe/London"},
	{Name: "Aberdeen", Country: "UK", Lat: 57.1497, Lon: -2.0943, TZ: "Europe/London"},
	{Name: "Inverness", Country: "UK", Lat: 57.4778, Lon: -4.2247, TZ: "Europe/London"},
	{Name: "Dundee", Country: "UK", Lat: 56.4620, Lon: -2.9707, TZ: "Europe/London"},
	{Name: "Belfast", Country: "UK", Lat: 54.5973, Lon: -5.9301, TZ: "Europe/London"},
	{Name: "Derry", Country: "UK", Lat: 55.0068, Lon: -7.3183, TZ: "Europe/London"},
	{Name: "Cardiff", Country: "UK", Lat: 51.4816, Lon: -3.1791, TZ: "Europe/London"},
	{Name: "Manchester", Country: "UK", Lat: 53.4808, Lon: -2.2426, TZ: "Europe/London"},
	{Name: "Birmingham", Country: "UK", Lat: 52.4862, Lon: -1.8904, TZ: "Europe/London"},
	{Name: "Newcastle upon Tyne", Country: "UK", Lat: 54.9783, Lon: -1.6178, TZ: "Europe/London"},
	{Name: "Plymouth", Country: "UK", Lat: 50.3755, Lon: -4.1427, TZ: "Europe/London"},

	// Europe
	{Name: "Madrid", Country: "Spain", Lat: 40.4168, Lon: -3.7038, TZ: "Europe/Madrid"},
	{Name: "Oslo", Country: "Norway", Lat: 59.9139, Lon: 10.7522, TZ: "Europe/Oslo"},

	// India
	{Name: "Delhi", Country: "India", Lat: 28.6139, Lon: 77.2090, TZ: "Asia/Kolkata"},
	{Name: "Kochi", Country: "India", Lat: 9.9312, Lon: 76.2673, TZ: "Asia/Kolkata"},
}

// FindCity resolves a "Name, Country" display name against the catalog.
func FindCity(displayName string) (City, error) {
	for _, c := range AllCities {
		if c.DisplayName() == displayName {
			return c, nil
		}
	}
	return City{}, fmt.Errorf("unknown city: %q", displayName)
}
