// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"
)

// StatusClass tells the serving layer who is at fault for a failed
// validation: the client that sent the payload or the operator who wrote
// the schema.
type StatusClass string

const (
	// ClassClient marks failures caused by the request payload (4xx).
	ClassClient StatusClass = "client"
	// ClassConfig marks failures caused by a broken schema (5xx).
	ClassConfig StatusClass = "config"
)

// Kind identifies a single entry of the error taxonomy.
type Kind string

// Configuration kinds.
const (
	KindUnsupportedFieldType Kind = "unsupported_field_type"
	KindUnsupportedType      Kind = "unsupported_type"
	KindInvalidConstraint    Kind = "invalid_constraint"
	KindInvalidSchema        Kind = "invalid_schema"
	KindUnknownField         Kind = "unknown_field"
	KindDuplicateType        Kind = "duplicate_type"
)

// Client kinds.
const (
	KindMalformedPayload      Kind = "malformed_payload"
	KindMissingField          Kind = "missing_field"
	KindTypeMismatch          Kind = "type_mismatch"
	KindConstraintViolation   Kind = "constraint_violation"
	KindExtraFieldsNotAllowed Kind = "extra_fields_not_allowed"
)

// Sentinel errors matched by [ValidationError] and [ConfigError] through
// errors.Is, one per [Kind].
var (
	ErrUnsupportedFieldType = errors.New("unsupported field type")
	ErrUnsupportedType      = errors.New("unsupported data type")
	ErrInvalidConstraint    = errors.New("invalid constraint value")
	ErrInvalidSchema        = errors.New("invalid record schema")
	ErrUnknownField         = errors.New("unknown field for validation")
	ErrDuplicateType        = errors.New("type is already registered")

	ErrMalformedPayload      = errors.New("request is not a flat JSON object")
	ErrMissingField          = errors.New("required field can not be blank")
	ErrTypeMismatch          = errors.New("value has invalid type")
	ErrConstraintViolation   = errors.New("value violates constraint")
	ErrExtraFieldsNotAllowed = errors.New("extra fields are not allowed")

	// ErrUnsupportedPayload is returned by [RecordValidator.Validate] when it
	// is handed something that is neither raw bytes nor a decoded record.
	ErrUnsupportedPayload = errors.New("unsupported payload type for validation")
)

var kindSentinels = map[Kind]error{
	KindUnsupportedFieldType:  ErrUnsupportedFieldType,
	KindUnsupportedType:       ErrUnsupportedType,
	KindInvalidConstraint:     ErrInvalidConstraint,
	KindInvalidSchema:         ErrInvalidSchema,
	KindUnknownField:          ErrUnknownField,
	KindDuplicateType:         ErrDuplicateType,
	KindMalformedPayload:      ErrMalformedPayload,
	KindMissingField:          ErrMissingField,
	KindTypeMismatch:          ErrTypeMismatch,
	KindConstraintViolation:   ErrConstraintViolation,
	KindExtraFieldsNotAllowed: ErrExtraFieldsNotAllowed,
}

// Class reports which side is responsible for failures of kind k.
func (k Kind) Class() StatusClass {
	switch k {
	case KindUnsupportedFieldType, KindUnsupportedType, KindInvalidConstraint,
		KindInvalidSchema, KindUnknownField, KindDuplicateType:
		return ClassConfig
	default:
		return ClassClient
	}
}

// Classified is implemented by every error this package produces. The
// serving layer uses it to build the structured failure response without
// knowing the concrete error type.
type Classified interface {
	error
	ErrorClass() StatusClass
	ErrorKind() Kind
	ErrorField() string
}

// AsClassified extracts the first [Classified] error from err's chain.
func AsClassified(err error) (Classified, bool) {
	var c Classified
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}

// ValidationError is a rejection of one specific payload. It is a
// deterministic function of the schema and the input.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string

	// Bound, Limit and Actual are set for KindConstraintViolation only.
	Bound  string
	Limit  any
	Actual any

	// Err is the underlying cause, e.g. the JSON decoder error.
	Err error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMissingField) and friends work.
func (e *ValidationError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func (e *ValidationError) ErrorClass() StatusClass { return ClassClient }
func (e *ValidationError) ErrorKind() Kind         { return e.Kind }
func (e *ValidationError) ErrorField() string      { return e.Field }

// ConfigError reports a broken schema. It is raised while validators are
// being built, so an endpoint with a bad schema never starts serving.
type ConfigError struct {
	Kind    Kind
	Field   string
	TypeTag string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %q", e.Field)
		if e.TypeTag != "" {
			fmt.Fprintf(&b, ", type %q", e.TypeTag)
		}
		b.WriteString(")")
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func (e *ConfigError) ErrorClass() StatusClass { return ClassConfig }
func (e *ConfigError) ErrorKind() Kind         { return e.Kind }
func (e *ConfigError) ErrorField() string      { return e.Field }

func missingField(field string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingField,
		Field:   field,
		Message: fmt.Sprintf("required fields can not be blank! %s required", field),
	}
}

func typeMismatch(field, typeTag string, value any) *ValidationError {
	return &ValidationError{
		Kind:    KindTypeMismatch,
		Field:   field,
		Message: fmt.Sprintf("%v is not valid value for %s, expected %s", value, field, typeTag),
		Actual:  value,
	}
}

func constraintViolation(field, bound string, limit, actual any, message string) *ValidationError {
	return &ValidationError{
		Kind:    KindConstraintViolation,
		Field:   field,
		Message: message,
		Bound:   bound,
		Limit:   limit,
		Actual:  actual,
	}
}

func malformedPayload(reason string, cause error) *ValidationError {
	return &ValidationError{
		Kind:    KindMalformedPayload,
		Message: "request is not a flat JSON object: " + reason,
		Err:     cause,
	}
}
