package validators

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildField(t *testing.T, schema FieldSchema) *FieldValidator {
	t.Helper()
	fv, err := DefaultFactory().Build(schema.Name, schema)
	require.NoError(t, err)
	return fv
}

func requireViolation(t *testing.T, err error, bound string) *ValidationError {
	t.Helper()
	require.ErrorIs(t, err, ErrConstraintViolation)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, bound, ve.Bound)
	assert.Equal(t, ClassClient, ve.ErrorClass())
	return ve
}

// ---------------------------------------------------------------------------
// Required / optional
// ---------------------------------------------------------------------------

func TestFieldValidator_Required(t *testing.T) {
	for _, typeTag := range []string{TypeString, TypeInteger, TypeNumber, TypeBoolean} {
		t.Run(typeTag, func(t *testing.T) {
			fv := buildField(t, FieldSchema{Name: "f", Type: typeTag, Required: true})

			for _, empty := range []any{nil, ""} {
				err := fv.Validate(empty)
				require.ErrorIs(t, err, ErrMissingField)

				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "f", ve.Field)
				assert.Equal(t, KindMissingField, ve.ErrorKind())
			}
		})
	}
}

func TestFieldValidator_OptionalShortCircuit(t *testing.T) {
	// "" would fail the integer predicate and min would reject anything
	// below 10; neither runs for an empty optional value.
	fv := buildField(t, FieldSchema{
		Name: "age",
		Type: TypeInteger,
		Constraints: []Constraint{
			{Name: ConstraintMin, Value: 10},
		},
	})

	assert.NoError(t, fv.Validate(nil))
	assert.NoError(t, fv.Validate(""))
}

func TestFieldValidator_ZeroIsAValue(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "count",
		Type:        TypeInteger,
		Required:    true,
		Constraints: []Constraint{{Name: ConstraintMin, Value: 0}},
	})
	assert.NoError(t, fv.Validate(json.Number("0")))

	flag := buildField(t, FieldSchema{Name: "flag", Type: TypeBoolean, Required: true})
	assert.NoError(t, flag.Validate(false))
}

// An optional 0 is not skipped as blank: its bounds still apply.
func TestFieldValidator_OptionalZeroIsChecked(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "rating",
		Type:        TypeInteger,
		Constraints: []Constraint{{Name: ConstraintMin, Value: 1}},
	})
	requireViolation(t, fv.Validate(json.Number("0")), ConstraintMin)

	flag := buildField(t, FieldSchema{Name: "flag", Type: TypeString})
	assert.ErrorIs(t, flag.Validate(false), ErrTypeMismatch)
}

// ---------------------------------------------------------------------------
// Type check
// ---------------------------------------------------------------------------

func TestFieldValidator_TypeMismatch(t *testing.T) {
	fv := buildField(t, FieldSchema{Name: "age", Type: TypeInteger, Required: true})

	err := fv.Validate("x")
	require.ErrorIs(t, err, ErrTypeMismatch)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "age", ve.Field)
	assert.Contains(t, ve.Error(), "x is not valid value for age")
}

func TestFieldValidator_TypeCheckRunsBeforeConstraints(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "name",
		Type:        TypeString,
		Constraints: []Constraint{{Name: ConstraintMax, Value: 1}},
	})

	require.ErrorIs(t, fv.Validate(json.Number("12345")), ErrTypeMismatch)
}

// ---------------------------------------------------------------------------
// Constraints
// ---------------------------------------------------------------------------

func TestFieldValidator_StringBounds(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name: "nick",
		Type: TypeString,
		Constraints: []Constraint{
			{Name: ConstraintMin, Value: 2},
			{Name: ConstraintMax, Value: 5},
		},
	})

	ve := requireViolation(t, fv.Validate("a"), ConstraintMin)
	assert.Equal(t, 2, ve.Limit)
	assert.Equal(t, 1, ve.Actual)

	ve = requireViolation(t, fv.Validate("abcdef"), ConstraintMax)
	assert.Equal(t, 5, ve.Limit)
	assert.Equal(t, 6, ve.Actual)

	assert.NoError(t, fv.Validate("abc"))
}

func TestFieldValidator_StringLengthCountsCharacters(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "city",
		Type:        TypeString,
		Constraints: []Constraint{{Name: ConstraintMax, Value: 6}},
	})

	// 6 characters, 12 bytes
	assert.NoError(t, fv.Validate("Москва"))
}

func TestFieldValidator_IntegerBounds(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name: "age",
		Type: TypeInteger,
		Constraints: []Constraint{
			{Name: ConstraintMin, Value: 0},
			{Name: ConstraintMax, Value: 120},
		},
	})

	ve := requireViolation(t, fv.Validate(json.Number("150")), ConstraintMax)
	assert.Equal(t, int64(120), ve.Limit)
	assert.Equal(t, int64(150), ve.Actual)

	requireViolation(t, fv.Validate(json.Number("-1")), ConstraintMin)
	assert.NoError(t, fv.Validate(json.Number("30")))
}

func TestFieldValidator_NumberBounds(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name: "ratio",
		Type: TypeNumber,
		Constraints: []Constraint{
			{Name: ConstraintMin, Value: 0},
			{Name: ConstraintMax, Value: 1},
		},
	})

	requireViolation(t, fv.Validate(json.Number("1.5")), ConstraintMax)
	requireViolation(t, fv.Validate(json.Number("-0.1")), ConstraintMin)
	assert.NoError(t, fv.Validate(json.Number("0.25")))
}

func TestFieldValidator_ConstraintsRunInDeclaredOrder(t *testing.T) {
	// min 10 and max 3 can never both pass; whichever is declared first
	// reports the failure.
	minFirst := buildField(t, FieldSchema{
		Name: "s",
		Type: TypeString,
		Constraints: []Constraint{
			{Name: ConstraintMin, Value: 10},
			{Name: ConstraintMax, Value: 3},
		},
	})
	requireViolation(t, minFirst.Validate("abcde"), ConstraintMin)

	maxFirst := buildField(t, FieldSchema{
		Name: "s",
		Type: TypeString,
		Constraints: []Constraint{
			{Name: ConstraintMax, Value: 3},
			{Name: ConstraintMin, Value: 10},
		},
	})
	requireViolation(t, maxFirst.Validate("abcde"), ConstraintMax)
}

func TestFieldValidator_AbsentBoundNeverRejects(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "s",
		Type:        TypeString,
		Constraints: []Constraint{{Name: ConstraintMin, Value: 1}},
	})

	assert.NoError(t, fv.Validate("a fairly long value without a max bound"))
}

func TestFieldValidator_ForeignConstraintsIgnored(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "flag",
		Type:        TypeBoolean,
		Constraints: []Constraint{{Name: ConstraintMax, Value: 0}},
	})

	assert.NoError(t, fv.Validate(true))
}

func TestFieldValidator_ConstraintCoercion(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "s",
		Type:        TypeString,
		Constraints: []Constraint{{Name: ConstraintMax, Value: "3"}},
	})

	requireViolation(t, fv.Validate("abcd"), ConstraintMax)
}

func TestNewFieldValidator_InvalidConstraint(t *testing.T) {
	tests := []struct {
		name    string
		typeTag string
		value   any
	}{
		{"not a number", TypeString, "three"},
		{"null", TypeString, nil},
		{"boolean", TypeString, true},
		{"empty string", TypeString, ""},
		{"blank string", TypeString, "  "},
		{"fractional length", TypeString, 2.5},
		{"boolean integer bound", TypeInteger, false},
		{"fractional integer bound", TypeInteger, 0.5},
		{"fractional integer bound as text", TypeInteger, "0.5"},
		{"boolean number bound", TypeNumber, true},
		{"empty number bound", TypeNumber, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultFactory().Build("s", FieldSchema{
				Type:        tt.typeTag,
				Constraints: []Constraint{{Name: ConstraintMax, Value: tt.value}},
			})
			require.ErrorIs(t, err, ErrInvalidConstraint)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, ClassConfig, ce.ErrorClass())
			assert.Equal(t, "s", ce.Field)
		})
	}
}

func TestFieldValidator_Idempotent(t *testing.T) {
	fv := buildField(t, FieldSchema{
		Name:        "age",
		Type:        TypeInteger,
		Required:    true,
		Constraints: []Constraint{{Name: ConstraintMax, Value: 120}},
	})

	first := fv.Validate(json.Number("150"))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, fv.Validate(json.Number("150")))
	}
}

func TestFieldValidator_WholeAndFractionalBounds(t *testing.T) {
	tests := []struct {
		name    string
		typeTag string
		limit   any
		value   any
		wantErr bool
	}{
		{"integral float on integer", TypeInteger, 5.0, json.Number("5"), false},
		{"integral float on integer rejects", TypeInteger, 5.0, json.Number("4"), true},
		{"text bound on integer", TypeInteger, " 5 ", json.Number("6"), false},
		{"fractional bound on number", TypeNumber, 0.5, json.Number("0.5"), false},
		{"fractional bound on number rejects", TypeNumber, 0.5, json.Number("0.25"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := buildField(t, FieldSchema{
				Name:        "n",
				Type:        tt.typeTag,
				Constraints: []Constraint{{Name: ConstraintMin, Value: tt.limit}},
			})

			err := fv.Validate(tt.value)
			if tt.wantErr {
				requireViolation(t, err, ConstraintMin)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// A fractional lower bound on an integer field is a schema error, so a
// value below it can never slip through a truncated bound.
func TestRecordValidator_FractionalIntegerBound(t *testing.T) {
	_, err := NewRecordValidator(DefaultFactory(), RecordSchema{
		Fields: []FieldSchema{{
			Name:     "age",
			Type:     TypeInteger,
			Required: true,
			Constraints: []Constraint{
				{Name: ConstraintMin, Value: 0.5},
				{Name: ConstraintMax, Value: 120},
			},
		}},
	})
	require.ErrorIs(t, err, ErrInvalidConstraint)
}
