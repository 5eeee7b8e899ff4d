// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// RecordValidator validates whole payloads of one endpoint.
//
// It implements [Validator]; the optional field names passed to Validate
// restrict per-field validation to that subset.
type RecordValidator struct {
	fields     []*FieldValidator
	index      map[string]*FieldValidator
	allowExtra bool
}

// NewRecordValidator builds a FieldValidator for every field of schema
// through factory. The first [ConfigError] aborts construction, so a broken
// schema is reported at startup.
func NewRecordValidator(factory *Factory, schema RecordSchema) (*RecordValidator, error) {
	v := &RecordValidator{
		fields:     make([]*FieldValidator, 0, len(schema.Fields)),
		index:      make(map[string]*FieldValidator, len(schema.Fields)),
		allowExtra: schema.AllowExtra,
	}

	for _, fs := range schema.Fields {
		if fs.Name == "" {
			return nil, &ConfigError{Kind: KindInvalidSchema, Message: "field without a name"}
		}
		if _, ok := v.index[fs.Name]; ok {
			return nil, &ConfigError{
				Kind:    KindInvalidSchema,
				Field:   fs.Name,
				Message: "field is declared twice",
			}
		}

		fv, err := factory.Build(fs.Name, fs)
		if err != nil {
			return nil, err
		}
		v.fields = append(v.fields, fv)
		v.index[fs.Name] = fv
	}

	return v, nil
}

// Validate dispatches on the dynamic type of payload: raw bytes and strings
// are decoded first, records are checked as they are.
//
// Returns ErrUnsupportedPayload for anything else.
func (v *RecordValidator) Validate(ctx context.Context, payload any, fields ...string) error {
	switch value := payload.(type) {
	case []byte:
		_, err := v.validateBytes(value, fields...)
		return err
	case string:
		_, err := v.validateBytes([]byte(value), fields...)
		return err
	case Record:
		return v.ValidateRecord(value, fields...)
	case map[string]any:
		return v.ValidateRecord(value, fields...)
	default:
		return ErrUnsupportedPayload
	}
}

// ValidateBytes decodes raw and validates it. On success the decoded record
// is returned so the caller can forward it.
func (v *RecordValidator) ValidateBytes(raw []byte) (Record, error) {
	return v.validateBytes(raw)
}

func (v *RecordValidator) validateBytes(raw []byte, fields ...string) (Record, error) {
	record, err := DecodeRecord(raw)
	if err != nil {
		return nil, err
	}
	if err := v.validateRecord(record, fields); err != nil {
		return nil, err
	}
	return record, nil
}

// ValidateRecord validates an already decoded record.
func (v *RecordValidator) ValidateRecord(record Record, fields ...string) error {
	if err := checkFlat(record); err != nil {
		return err
	}
	return v.validateRecord(record, fields)
}

func (v *RecordValidator) validateRecord(record Record, fields []string) error {
	if !v.allowExtra {
		if extra := v.extraFields(record); len(extra) > 0 {
			return &ValidationError{
				Kind:    KindExtraFieldsNotAllowed,
				Message: fmt.Sprintf("extra fields are not allowed: %s", strings.Join(extra, ", ")),
				Actual:  extra,
			}
		}
	}

	selected, err := v.selectFields(fields)
	if err != nil {
		return err
	}

	for _, fv := range selected {
		if err := fv.Validate(record[fv.name]); err != nil {
			return err
		}
	}

	return nil
}

// extraFields returns the sorted keys of record that the schema does not
// declare.
func (v *RecordValidator) extraFields(record Record) []string {
	var extra []string
	for key := range record {
		if _, ok := v.index[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

func (v *RecordValidator) selectFields(names []string) ([]*FieldValidator, error) {
	if len(names) == 0 {
		return v.fields, nil
	}

	selected := make([]*FieldValidator, 0, len(names))
	for _, name := range names {
		fv, ok := v.index[name]
		if !ok {
			return nil, &ConfigError{
				Kind:    KindUnknownField,
				Field:   name,
				Message: "field is not declared in the schema",
			}
		}
		selected = append(selected, fv)
	}
	return selected, nil
}

// Fields returns the schema field names in declared order.
func (v *RecordValidator) Fields() []string {
	names := make([]string, len(v.fields))
	for i, fv := range v.fields {
		names[i] = fv.name
	}
	return names
}

// AllowExtra reports the extra-fields policy.
func (v *RecordValidator) AllowExtra() bool { return v.allowExtra }
