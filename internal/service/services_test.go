package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-schema-gate/internal/config"
	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/metrics"
)

func TestNewServices_WithMetrics(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	services, err := NewServices(parseEndpoints(t, testSchema), cfg, m, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.Equal(t, []string{"users", "notes"}, services.GateService.Endpoints())

	_, err = services.GateService.Validate(context.Background(), "users", []byte(`{"age": 1}`))
	require.NoError(t, err)
	_, _ = services.GateService.Validate(context.Background(), "users", []byte(`{}`))

	count, err := testutil.GatherAndCount(m.Registry(), "schema_gate_verdicts_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewServices_WithoutObserver(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	services, err := NewServices(parseEndpoints(t, testSchema), cfg, nil, logger.Nop())
	require.NoError(t, err)

	_, ok := services.GateService.(*GateLoggingService)
	assert.True(t, ok)
}

func TestNewServices_Errors(t *testing.T) {
	_, err := NewServices(nil, config.StructuredConfig{App: config.App{Version: "1"}}, nil, logger.Nop())
	require.ErrorIs(t, err, ErrNoEndpoints)

	_, err = NewServices(parseEndpoints(t, testSchema), config.StructuredConfig{}, nil, logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
