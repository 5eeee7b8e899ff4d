package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/service"
	"github.com/MKhiriev/go-schema-gate/internal/utils"
)

type Handler struct {
	services *service.Services

	metricsPath    string
	metricsHandler http.Handler
	requestTimeout time.Duration
	maxBodyBytes   int64
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

// Option configures optional parts of a [Handler].
type Option func(*Handler)

// WithMetrics mounts handler on GET path.
func WithMetrics(path string, handler http.Handler) Option {
	return func(h *Handler) {
		h.metricsPath = path
		h.metricsHandler = handler
	}
}

// WithRequestTimeout cancels the request context after d.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

// WithMaxBodyBytes caps the payload size read by endpoint routes.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		h.maxBodyBytes = n
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
