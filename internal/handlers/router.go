package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/metric"

	"github.com/MosaabBleik/menu-service/internal/middleware"
)

// NewRouter wires the menu routes and the middleware chain.
func NewRouter(h *MenuHandler, logger *slog.Logger, mp metric.MeterProvider) (http.Handler, error) {
	r := mux.NewRouter()

	// CRUD handlers
	r.HandleFunc("/menu", h.ListMenu).Methods(http.MethodGet)
	r.HandleFunc("/menu", h.CreateMenuItem).Methods(http.MethodPost)
	r.HandleFunc("/menu/{id}", h.GetMenuItem).Methods(http.MethodGet)
	r.HandleFunc("/menu/{id}", h.UpdateMenuItem).Methods(http.MethodPut)
	r.HandleFunc("/menu/{id}", h.DeleteMenuItem).Methods(http.MethodDelete)

	// Health checks
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.ReadyCheck).Methods(http.MethodGet)

	metrics, err := middleware.Metrics(mp)
	if err != nil {
		return nil, err
	}

	var handler http.Handler = r
	handler = middleware.CORS()(handler)
	handler = middleware.Recover(logger)(handler)
	handler = metrics(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.RequestID(handler)
	return handler, nil
}
