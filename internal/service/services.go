package service

import (
	"github.com/MKhiriev/go-schema-gate/internal/config"
	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/schema"
	"github.com/MKhiriev/go-schema-gate/internal/validators"
)

type Services struct {
	GateService    GateService
	AppInfoService AppInfoService
}

// NewServices assembles the gate for endpoints. observer may be nil, in
// which case no metrics wrapper is installed.
func NewServices(endpoints []schema.Endpoint, cfg config.StructuredConfig, observer Observer, logger *logger.Logger) (*Services, error) {
	gate, err := NewGateService(endpoints, validators.DefaultFactory(), logger)
	if err != nil {
		return nil, err
	}

	wrappers := []GateServiceWrapper{NewGateLoggingService(logger)}
	if observer != nil {
		wrappers = append(wrappers, NewGateMetricsService(observer))
	}
	for _, w := range wrappers {
		gate = w.Wrap(gate)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		GateService:    gate,
		AppInfoService: appInfo,
	}, nil
}
