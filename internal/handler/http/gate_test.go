package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-schema-gate/internal/config"
	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/schema"
	"github.com/MKhiriev/go-schema-gate/internal/service"
)

// newGateRouter wires the real schema, services and router together.
func newGateRouter(t *testing.T, doc string) http.Handler {
	t.Helper()

	endpoints, err := schema.Parse([]byte(doc))
	require.NoError(t, err)

	cfg := config.StructuredConfig{App: config.App{Version: "test"}}
	services, err := service.NewServices(endpoints, cfg, nil, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, logger.Nop(), WithMaxBodyBytes(1024)).Init()
}

func TestGate_EndToEnd(t *testing.T) {
	router := newGateRouter(t, `
patterns:
  users:
    fields:
      age: {type: integer, required: true, min: 0, max: 120}
      name: {type: string, max: 5}
  open:
    allow_extra: true
    fields:
      flag: {type: boolean}
`)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantKind   string
		wantField  string
	}{
		{name: "accepted", path: "/users", body: `{"age": 30}`, wantStatus: http.StatusOK},
		{name: "too old", path: "/users", body: `{"age": 150}`, wantStatus: http.StatusBadRequest, wantKind: "constraint_violation", wantField: "age"},
		{name: "wrong type", path: "/users", body: `{"age": "x"}`, wantStatus: http.StatusBadRequest, wantKind: "type_mismatch", wantField: "age"},
		{name: "missing", path: "/users", body: `{}`, wantStatus: http.StatusBadRequest, wantKind: "missing_field", wantField: "age"},
		{name: "null", path: "/users", body: `{"age": null}`, wantStatus: http.StatusBadRequest, wantKind: "missing_field", wantField: "age"},
		{name: "extra", path: "/users", body: `{"age": 30, "other": 1}`, wantStatus: http.StatusBadRequest, wantKind: "extra_fields_not_allowed"},
		{name: "name in runes", path: "/users", body: `{"age": 30, "name": "Zoëëë"}`, wantStatus: http.StatusOK},
		{name: "malformed", path: "/users", body: `{"age": 30`, wantStatus: http.StatusBadRequest, wantKind: "malformed_payload"},
		{name: "nested", path: "/users", body: `{"age": {"v": 1}}`, wantStatus: http.StatusBadRequest, wantKind: "malformed_payload"},
		{name: "nested value with extra allowed", path: "/open", body: `{"x": [1, 2]}`, wantStatus: http.StatusBadRequest, wantKind: "malformed_payload"},
		{name: "optional boolean", path: "/open", body: `{"flag": false, "x": 1}`, wantStatus: http.StatusOK},
		{name: "boolean mismatch", path: "/open", body: `{"flag": "yes"}`, wantStatus: http.StatusBadRequest, wantKind: "type_mismatch", wantField: "flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"status":"accepted"}`, rec.Body.String())
				return
			}

			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, "client", resp.StatusClass)
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.Equal(t, tt.wantField, resp.Field)
		})
	}
}

func TestGate_EndpointsListing(t *testing.T) {
	router := newGateRouter(t, `
patterns:
  b: {}
  a: {}
`)

	rec := serve(router, http.MethodGet, "/api/endpoints", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"endpoints":["b","a"]}`, rec.Body.String())
}
