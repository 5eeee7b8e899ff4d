package models

// StatusAccepted is the Status of every [AcceptedResponse].
const StatusAccepted = "accepted"

// AcceptedResponse is the body returned for a payload that passed
// validation.
type AcceptedResponse struct {
	Status string `json:"status"`
}

// ErrorResponse describes why a payload was not accepted.
type ErrorResponse struct {
	// StatusClass is "client" when the payload is at fault and "config"
	// when the endpoint schema is.
	StatusClass string `json:"status_class"`

	// Kind is the machine-readable failure kind (e.g. "missing_field").
	Kind string `json:"kind"`

	// Field names the offending field, if any.
	Field string `json:"field,omitempty"`

	// Message is the human-readable reason.
	Message string `json:"message"`

	// Bound, Limit and Actual are set for constraint violations: the
	// constraint name, its configured limit and the measured value.
	Bound  string `json:"bound,omitempty"`
	Limit  any    `json:"limit,omitempty"`
	Actual any    `json:"actual,omitempty"`

	// TraceID echoes the X-Trace-ID of the request.
	TraceID string `json:"trace_id,omitempty"`
}

// EndpointsResponse lists the endpoints a gate serves.
type EndpointsResponse struct {
	Endpoints []string `json:"endpoints"`
}
