// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// schema gate. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: rules checked by go-playground/validator after merging.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// log level.
	App App `envPrefix:"APP_"`

	// Schema points at the endpoint schema document.
	Schema Schema `envPrefix:"SCHEMA_"`

	// Server holds network address, timeout and body limit settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Metrics controls the Prometheus endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// Schema locates the endpoint schema document.
type Schema struct {
	// FilePath is the path to the YAML (or JSON) schema document.
	// Env: SCHEMA_FILE
	FilePath string `env:"FILE" validate:"required"`
}

// Server holds network and limit settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// MaxBodyBytes caps the size of a payload the server will read.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" validate:"gt=0"`
}

// Metrics holds settings for the Prometheus endpoint.
type Metrics struct {
	// Enabled mounts the metrics handler on the router.
	// Env: METRICS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Path is the route the metrics handler is served on.
	// Env: METRICS_PATH
	Path string `env:"PATH" validate:"required,startswith=/"`
}

// Defaults applied to every field the sources leave empty.
const (
	DefaultVersion        = "dev"
	DefaultLogLevel       = "info"
	DefaultSchemaFile     = "config/schema.yml"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 1 << 20
	DefaultMetricsPath    = "/metrics"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Schema: Schema{
			FilePath: DefaultSchemaFile,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Metrics: Metrics{
			Path: DefaultMetricsPath,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
