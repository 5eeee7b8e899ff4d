package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/validators"
)

// GateLoggingService logs every verdict. Client rejections go to Info,
// unknown endpoints to Warn and everything else to Error.
type GateLoggingService struct {
	inner  GateService
	logger *logger.Logger
}

func NewGateLoggingService(logger *logger.Logger) GateServiceWrapper {
	return &GateLoggingService{logger: logger}
}

func (s *GateLoggingService) Validate(ctx context.Context, endpoint string, body []byte) (validators.Record, error) {
	log := s.loggerFor(ctx)

	record, err := s.inner.Validate(ctx, endpoint, body)
	if err == nil {
		log.Debug().Str("endpoint", endpoint).Int("fields", len(record)).Msg("payload accepted")
		return record, nil
	}

	c, classified := validators.AsClassified(err)
	switch {
	case classified && c.ErrorClass() == validators.ClassClient:
		log.Info().
			Str("endpoint", endpoint).
			Str("kind", string(c.ErrorKind())).
			Str("field", c.ErrorField()).
			Str("reason", err.Error()).
			Msg("payload rejected")
	case classified:
		log.Error().Err(err).
			Str("endpoint", endpoint).
			Str("kind", string(c.ErrorKind())).
			Str("field", c.ErrorField()).
			Msg("endpoint schema is broken")
	case errors.Is(err, ErrUnknownEndpoint):
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("payload for unknown endpoint")
	default:
		log.Error().Err(err).Str("endpoint", endpoint).Msg("payload validation failed")
	}

	return nil, err
}

func (s *GateLoggingService) Endpoints() []string {
	return s.inner.Endpoints()
}

func (s *GateLoggingService) Wrap(inner GateService) GateService {
	s.inner = inner
	return s
}

// loggerFor prefers the request-scoped logger stored in ctx.
func (s *GateLoggingService) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
