package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/schema"
	"github.com/MKhiriev/go-schema-gate/internal/validators"
)

type gateService struct {
	validators map[string]*validators.RecordValidator
	endpoints  []string

	logger *logger.Logger
}

// NewGateService builds one RecordValidator per endpoint through factory.
// A schema the factory can not build is reported here, before any payload
// is served.
func NewGateService(endpoints []schema.Endpoint, factory *validators.Factory, logger *logger.Logger) (GateService, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoEndpoints
	}

	s := &gateService{
		validators: make(map[string]*validators.RecordValidator, len(endpoints)),
		endpoints:  make([]string, 0, len(endpoints)),
		logger:     logger,
	}

	for _, e := range endpoints {
		v, err := validators.NewRecordValidator(factory, e.Schema)
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", e.Name, err)
		}
		s.validators[e.Name] = v
		s.endpoints = append(s.endpoints, e.Name)

		logger.Debug().
			Str("endpoint", e.Name).
			Strs("fields", v.Fields()).
			Bool("allow_extra", v.AllowExtra()).
			Msg("endpoint validator built")
	}

	return s, nil
}

func (s *gateService) Validate(ctx context.Context, endpoint string, body []byte) (validators.Record, error) {
	v, ok := s.validators[endpoint]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpoint)
	}

	return v.ValidateBytes(body)
}

func (s *gateService) Endpoints() []string {
	out := make([]string, len(s.endpoints))
	copy(out, s.endpoints)
	return out
}
