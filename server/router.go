package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ComparisonRoutes is the handler surface the router wires up.
type ComparisonRoutes interface {
	GetCities(w http.ResponseWriter, r *http.Request)
	GetComparison(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
	GetCurrentWeather(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	comparisonHandler ComparisonRoutes
	router            *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	comparisonHandler ComparisonRoutes,
	router *mux.Router) *Router {
	return &Router{
		comparisonHandler: comparisonHandler,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/cities", r.comparisonHandler.GetCities).Methods("GET")

	// expects ?city1={name, country}&city2={name, country}&facade_area=&lpd=&control_factor=&ghi_on=&ghi_off=
	r.router.HandleFunc("/v1/lighting/compare", r.comparisonHandler.GetComparison).Methods("GET")
	r.router.HandleFunc("/v1/lighting/chart", r.comparisonHandler.GetChart).Methods("GET")

	// expects ?city={name, country}
	r.router.HandleFunc("/v1/weather/current", r.comparisonHandler.GetCurrentWeather).Methods("GET")

	r.router.HandleFunc("/ping", r.comparisonHandler.Ping).Methods("GET")
}
