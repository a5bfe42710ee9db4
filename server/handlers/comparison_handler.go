package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"daylight-server/config"
	"daylight-server/models"
	services "daylight-server/service"
	"daylight-server/util"
)

const (
	CITY1_QUERY_ARG          = "city1"
	CITY2_QUERY_ARG          = "city2"
	CITY_QUERY_ARG           = "city"
	FACADE_AREA_QUERY_ARG    = "facade_area"
	LPD_QUERY_ARG            = "lpd"
	CONTROL_FACTOR_QUERY_ARG = "control_factor"
	GHI_ON_QUERY_ARG         = "ghi_on"
	GHI_OFF_QUERY_ARG        = "ghi_off"
)

// CurrentWeatherView is the current-conditions response shape.
type CurrentWeatherView struct {
	City      string  `json:"city"`
	Condition string  `json:"condition"`
	TempC     float64 `json:"temperature_c"`
	WindKmh   float64 `json:"windspeed_kmh"`
}

type ComparisonHandler struct {
	comparisonService *services.ComparisonService
}

func NewComparisonHandler(comparisonService *services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{comparisonService: comparisonService}
}

// GetCities handles GET /v1/cities
func (h *ComparisonHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, models.AllCities)
}

// GetComparison handles GET /v1/lighting/compare
func (h *ComparisonHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseComparisonArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	result, err := h.comparisonService.Compare(r.Context(), req)
	if err != nil {
		log.Println("Error running comparison:", err)
		http.Error(w, "Upstream weather fetch failed", http.StatusBadGateway)
		return
	}

	writeJSON(w, result)
}

// GetChart handles GET /v1/lighting/chart: runs the comparison, renders the
// monthly hours chart, and serves the HTML.
func (h *ComparisonHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseComparisonArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	result, err := h.comparisonService.Compare(r.Context(), req)
	if err != nil {
		log.Println("Error running comparison for chart:", err)
		http.Error(w, "Upstream weather fetch failed", http.StatusBadGateway)
		return
	}

	// Render straight into the response: no shared file, so concurrent
	// chart requests cannot clobber each other.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderMonthlyHours(result, w); err != nil {
		log.Println("Error rendering chart:", err)
	}
}

// GetCurrentWeather handles GET /v1/weather/current
func (h *ComparisonHandler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	city, err := models.FindCity(r.URL.Query().Get(CITY_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+CITY_QUERY_ARG, http.StatusBadRequest)
		return
	}

	weather, err := h.comparisonService.GetCurrentWeather(r.Context(), city)
	if err != nil {
		log.Println("Error fetching current weather:", err)
		http.Error(w, "Upstream weather fetch failed", http.StatusBadGateway)
		return
	}

	writeJSON(w, CurrentWeatherView{
		City:      city.DisplayName(),
		Condition: weather.Condition(),
		TempC:     weather.Temperature,
		WindKmh:   weather.Windspeed,
	})
}

// Ping handles GET /ping
func (h *ComparisonHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *ComparisonHandler) parseComparisonArgs(vals url.Values, w http.ResponseWriter) (services.ComparisonRequest, bool) {
	var req services.ComparisonRequest

	city1, err := models.FindCity(vals.Get(CITY1_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+CITY1_QUERY_ARG, http.StatusBadRequest)
		return req, false
	}
	req.City1 = city1

	if name := vals.Get(CITY2_QUERY_ARG); name != "" {
		city2, err := models.FindCity(name)
		if err != nil {
			http.Error(w, "Invalid argument "+CITY2_QUERY_ARG, http.StatusBadRequest)
			return req, false
		}
		req.City2 = &city2
	}

	req.Parameters = models.FacilityParameters{
		FacadeAreaM2:    parseArgFloat64(vals, FACADE_AREA_QUERY_ARG, config.DEFAULT_FACADE_AREA_M2),
		LPDWPerM2:       parseArgFloat64(vals, LPD_QUERY_ARG, config.DEFAULT_LPD_W_PER_M2),
		ControlFactor:   parseArgFloat64(vals, CONTROL_FACTOR_QUERY_ARG, config.DEFAULT_CONTROL_FACTOR),
		GHIOnThreshold:  parseArgFloat64(vals, GHI_ON_QUERY_ARG, config.DEFAULT_GHI_ON_THRESHOLD),
		GHIOffThreshold: parseArgFloat64(vals, GHI_OFF_QUERY_ARG, config.DEFAULT_GHI_OFF_THRESHOLD),
	}
	req.Year = config.BASELINE_YEAR
	return req, true
}

func parseArgFloat64(vals url.Values, name string, fallback float64) float64 {
	s := vals.Get(name)
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
