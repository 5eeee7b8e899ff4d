// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// schema gate's services, handlers and CLI.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or log entries to describe the outcome of a request.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgPayloadTooLarge is returned when the request body exceeds the
	// configured size limit.
	MsgPayloadTooLarge = "payload too large"

	// MsgUnreadableBody is returned when the request body can not be read,
	// for example because of a corrupt gzip stream.
	MsgUnreadableBody = "request body can not be read"

	// MsgUnknownEndpoint is returned when no schema is configured for the
	// requested endpoint.
	MsgUnknownEndpoint = "unknown endpoint"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
