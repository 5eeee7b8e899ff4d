package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s schema file path
//	-c/-config json file path with configs
//	-l log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-body-bytes payload size limit
//	-metrics expose prometheus metrics
//	-metrics-path metrics route
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var schemaFile string
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var metricsEnabled bool
	var metricsPath string

	fs := flag.NewFlagSet("schema-gate", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&schemaFile, "s", "", "Schema file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "l", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum payload size in bytes")
	fs.BoolVar(&metricsEnabled, "metrics", false, "Expose prometheus metrics")
	fs.StringVar(&metricsPath, "metrics-path", "", "Metrics route")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Schema: Schema{
			FilePath: schemaFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
		},
		Metrics: Metrics{
			Enabled: metricsEnabled,
			Path:    metricsPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return ErrInvalidAddress
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port must be in 1..65535", ErrInvalidAddress)
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return fmt.Errorf("%w: incorrect IP-address provided", ErrInvalidAddress)
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
