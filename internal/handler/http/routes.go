package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-schema-gate/internal/service"
)

// Init builds the router: one POST route per endpoint plus the service
// routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/endpoints", h.listEndpoints)
	if h.metricsHandler != nil {
		router.Method(http.MethodGet, h.metricsPath, h.metricsHandler)
	}

	// endpoint routes
	router.Group(func(r chi.Router) {
		if h.maxBodyBytes > 0 {
			r.Use(middleware.RequestSize(h.maxBodyBytes))
		}
		for _, endpoint := range h.services.GateService.Endpoints() {
			r.Post("/"+endpoint, h.validate(endpoint))
		}
	})

	router.NotFound(h.unknownRoute)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.unknownRoute))

	return router
}

// unknownRoute answers any path or method no endpoint serves.
func (h *Handler) unknownRoute(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, fmt.Errorf("%w: %s %s", service.ErrUnknownEndpoint, r.Method, r.URL.Path))
}
