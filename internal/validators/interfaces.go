// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the schema-driven validation engine.
//
// Core concepts:
//   - TypeRegistry: maps a type tag ("string", "integer", ...) to a runtime
//     predicate.
//   - FieldValidator: checks one value through a fixed rule chain:
//     required, then type, then the declared constraints in configuration
//     order.
//   - Factory: maps a type tag to a Builder that assembles a FieldValidator
//     with the constraint rules that make sense for that type.
//   - RecordValidator: built once per endpoint; decodes the raw payload,
//     enforces the extra-fields policy and runs every FieldValidator.
//
// Every failure is fail-fast: the first failing rule of a field stops that
// field, and the first failing field stops the record.
//
// All of the above are immutable once built and safe for concurrent use
// without locking.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Predicate reports whether value is of the runtime type a tag stands for.
type Predicate func(value any) bool

// Rule is a single constraint check closed over its configured limit. The
// value passed in has already satisfied the field's type predicate.
type Rule func(value any) error

// ConstraintRule builds a [Rule] for field from the raw constraint value
// found in the schema.
type ConstraintRule func(field string, limit any) (Rule, error)

// ConstraintSet lists the constraints a field variant understands, keyed by
// the constraint name used in the schema ("max", "min", ...).
type ConstraintSet map[string]ConstraintRule

// Builder constructs a [FieldValidator] for one field schema.
type Builder func(registry *TypeRegistry, schema FieldSchema) (*FieldValidator, error)
