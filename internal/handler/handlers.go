package handler

import (
	"net/http"

	"github.com/MKhiriev/go-schema-gate/internal/config"
	myHTTP "github.com/MKhiriev/go-schema-gate/internal/handler/http"
	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/service"
)

type Handlers struct {
	HTTP *myHTTP.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. metrics is
// mounted only when cfg.Metrics.Enabled is set.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, metrics http.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		opts := []myHTTP.Option{
			myHTTP.WithRequestTimeout(cfg.Server.RequestTimeout),
			myHTTP.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
		}
		if cfg.Metrics.Enabled && metrics != nil {
			opts = append(opts, myHTTP.WithMetrics(cfg.Metrics.Path, metrics))
		}
		handlers.HTTP = myHTTP.NewHandler(services, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
