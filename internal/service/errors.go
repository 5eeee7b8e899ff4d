package service

import (
	"errors"

	"github.com/MKhiriev/go-schema-gate/internal/app"
)

var (
	ErrUnknownEndpoint       = errors.New(app.MsgUnknownEndpoint)
	ErrNoEndpoints           = errors.New("no endpoints configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
