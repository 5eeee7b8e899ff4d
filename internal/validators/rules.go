package validators

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
)

// Constraint names understood by the built-in variants.
const (
	ConstraintMax = "max"
	ConstraintMin = "min"
)

// StringConstraints are the bounds of the string variant, on length in
// characters.
var StringConstraints = ConstraintSet{
	ConstraintMax: maxLength,
	ConstraintMin: minLength,
}

// IntegerConstraints are the bounds of the integer variant, on value.
var IntegerConstraints = ConstraintSet{
	ConstraintMax: maxInteger,
	ConstraintMin: minInteger,
}

// NumberConstraints are the bounds of the number variant, on value.
var NumberConstraints = ConstraintSet{
	ConstraintMax: maxNumber,
	ConstraintMin: minNumber,
}

var (
	errEmptyLimit      = errors.New("limit is empty")
	errBooleanLimit    = errors.New("limit can not be a boolean")
	errFractionalLimit = errors.New("limit must be a whole number")
)

// decodeLimit coerces a raw schema value ("5", 5, 5.0) into out. Booleans,
// blank strings and fractions for a whole-number bound are rejected.
func decodeLimit(limit any, out any) error {
	if limit == nil {
		return errEmptyLimit
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(strictLimitHook),
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(limit)
}

func strictLimitHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch from.Kind() {
	case reflect.Bool:
		return nil, errBooleanLimit
	case reflect.String:
		s := strings.TrimSpace(reflect.ValueOf(data).String())
		if s == "" {
			return nil, errEmptyLimit
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && isWholeKind(to) && f != math.Trunc(f) {
			return nil, errFractionalLimit
		}
		return s, nil
	case reflect.Float32, reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if isWholeKind(to) && f != math.Trunc(f) {
			return nil, errFractionalLimit
		}
	}
	return data, nil
}

func isWholeKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func maxLength(field string, limit any) (Rule, error) {
	var upper int
	if err := decodeLimit(limit, &upper); err != nil {
		return nil, err
	}
	return func(value any) error {
		n := utf8.RuneCountInString(value.(string))
		if n > upper {
			return constraintViolation(field, ConstraintMax, upper, n,
				fmt.Sprintf("%q is longer than %d", value, upper))
		}
		return nil
	}, nil
}

func minLength(field string, limit any) (Rule, error) {
	var lower int
	if err := decodeLimit(limit, &lower); err != nil {
		return nil, err
	}
	return func(value any) error {
		n := utf8.RuneCountInString(value.(string))
		if n < lower {
			return constraintViolation(field, ConstraintMin, lower, n,
				fmt.Sprintf("%q is shorter than %d", value, lower))
		}
		return nil
	}, nil
}

func maxInteger(field string, limit any) (Rule, error) {
	var upper int64
	if err := decodeLimit(limit, &upper); err != nil {
		return nil, err
	}
	return func(value any) error {
		n, _ := toInt64(value)
		if n > upper {
			return constraintViolation(field, ConstraintMax, upper, n,
				fmt.Sprintf("%d is greater than %d", n, upper))
		}
		return nil
	}, nil
}

func minInteger(field string, limit any) (Rule, error) {
	var lower int64
	if err := decodeLimit(limit, &lower); err != nil {
		return nil, err
	}
	return func(value any) error {
		n, _ := toInt64(value)
		if n < lower {
			return constraintViolation(field, ConstraintMin, lower, n,
				fmt.Sprintf("%d is smaller than %d", n, lower))
		}
		return nil
	}, nil
}

func maxNumber(field string, limit any) (Rule, error) {
	var upper float64
	if err := decodeLimit(limit, &upper); err != nil {
		return nil, err
	}
	return func(value any) error {
		f, _ := toFloat64(value)
		if f > upper {
			return constraintViolation(field, ConstraintMax, upper, f,
				fmt.Sprintf("%g is greater than %g", f, upper))
		}
		return nil
	}, nil
}

func minNumber(field string, limit any) (Rule, error) {
	var lower float64
	if err := decodeLimit(limit, &lower); err != nil {
		return nil, err
	}
	return func(value any) error {
		f, _ := toFloat64(value)
		if f < lower {
			return constraintViolation(field, ConstraintMin, lower, f,
				fmt.Sprintf("%g is smaller than %g", f, lower))
		}
		return nil
	}, nil
}
