package models

// CurrentWeather holds the current conditions for a city as reported by the
// Open-Meteo forecast endpoint.
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	Windspeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
}

// CurrentWeatherResponse is the forecast endpoint's payload envelope.
type CurrentWeatherResponse struct {
	CurrentWeather CurrentWeather `json:"current_weather"`
}

// Condition returns a coarse classification of the WMO weather code.
func (w CurrentWeather) Condition() string {
	switch w.WeatherCode {
	case 0:
		return "Clear"
	case 1, 2:
		return "Partly Cloudy"
	case 3:
		return "Overcast"
	case 45, 48:
		return "Fog"
	case 51, 53, 55, 61, 63, 65:
		return "Rain"
	case 71, 73, 75, 77:
		return "Snow"
	default:
		return "Unknown"
	}
}
