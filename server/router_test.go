package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockComparisonHandler is a mock implementation of the comparison routes.
type MockComparisonHandler struct{}

func (h *MockComparisonHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "cities"}`))
}

func (h *MockComparisonHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "comparison"}`))
}

func (h *MockComparisonHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html></html>`))
}

func (h *MockComparisonHandler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "weather"}`))
}

func (h *MockComparisonHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockHandler := &MockComparisonHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockHandler, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "List Cities",
			method:     "GET",
			path:       "/v1/cities",
			statusCode: http.StatusOK,
			response:   `{"message": "cities"}`,
		},
		{
			name:       "Lighting Comparison",
			method:     "GET",
			path:       "/v1/lighting/compare",
			statusCode: http.StatusOK,
			response:   `{"message": "comparison"}`,
		},
		{
			name:       "Lighting Chart",
			method:     "GET",
			path:       "/v1/lighting/chart",
			statusCode: http.StatusOK,
			response:   `<html></html>`,
		},
		{
			name:       "Current Weather",
			method:     "GET",
			path:       "/v1/weather/current",
			statusCode: http.StatusOK,
			response:   `{"message": "weather"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/lighting/compare",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
