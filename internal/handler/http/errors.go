// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-schema-gate/internal/app"
)

// Sentinel errors raised by the transport before a payload reaches the
// gate. Callers can match against them with [errors.Is].
var (
	// ErrPayloadTooLarge is returned when the request body exceeds the
	// configured size limit.
	ErrPayloadTooLarge = errors.New(app.MsgPayloadTooLarge)

	// ErrUnreadableBody is returned when the request body can not be read,
	// for example because of a corrupt gzip stream.
	ErrUnreadableBody = errors.New(app.MsgUnreadableBody)
)
