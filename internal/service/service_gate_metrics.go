package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-schema-gate/internal/metrics"
	"github.com/MKhiriev/go-schema-gate/internal/validators"
)

const (
	kindUnknownEndpoint = "unknown_endpoint"
	kindInternal        = "internal"
)

// GateMetricsService reports one observation per payload.
type GateMetricsService struct {
	inner    GateService
	observer Observer
	now      func() time.Time
}

func NewGateMetricsService(observer Observer) GateServiceWrapper {
	return &GateMetricsService{observer: observer, now: time.Now}
}

func (s *GateMetricsService) Validate(ctx context.Context, endpoint string, body []byte) (validators.Record, error) {
	start := s.now()
	record, err := s.inner.Validate(ctx, endpoint, body)
	outcome, kind := verdictLabels(err)
	s.observer.Observe(endpoint, outcome, kind, s.now().Sub(start))
	return record, err
}

func (s *GateMetricsService) Endpoints() []string {
	return s.inner.Endpoints()
}

func (s *GateMetricsService) Wrap(inner GateService) GateService {
	s.inner = inner
	return s
}

func verdictLabels(err error) (outcome, kind string) {
	if err == nil {
		return metrics.OutcomeAccepted, ""
	}
	if c, ok := validators.AsClassified(err); ok {
		if c.ErrorClass() == validators.ClassClient {
			return metrics.OutcomeRejected, string(c.ErrorKind())
		}
		return metrics.OutcomeFailed, string(c.ErrorKind())
	}
	if errors.Is(err, ErrUnknownEndpoint) {
		return metrics.OutcomeFailed, kindUnknownEndpoint
	}
	return metrics.OutcomeFailed, kindInternal
}
