package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-schema-gate/internal/validators"
)

// GateService validates raw payloads against the schema of a named endpoint.
type GateService interface {
	// Validate decodes body and checks it against the endpoint's schema.
	// It returns the decoded record when the payload is accepted.
	Validate(ctx context.Context, endpoint string, body []byte) (validators.Record, error)

	// Endpoints lists the served endpoint names in schema order.
	Endpoints() []string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// GateServiceWrapper defines middleware composition for GateService.
// Implementations wrap an existing GateService to add behavior such as
// logging or metrics.
type GateServiceWrapper interface {
	Wrap(GateService) GateService // returns a decorated GateService applying additional behavior
}

// Observer receives one call per validated payload.
type Observer interface {
	Observe(endpoint, outcome, kind string, elapsed time.Duration)
}
