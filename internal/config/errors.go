package config

import "errors"

var (
	// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
	// configuration breaks a `validate` rule.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidAddress is returned by [NetAddress.Set] for a malformed
	// host:port value.
	ErrInvalidAddress = errors.New("need address in a form `host:port`")
)
