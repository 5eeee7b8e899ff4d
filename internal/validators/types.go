package validators

import (
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-json"
)

// Type tags known to the default registry.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// TypeEntry pairs a type tag with its predicate.
type TypeEntry struct {
	Tag       string
	Predicate Predicate
}

// TypeRegistry maps type tags to runtime predicates.
//
// A registry is populated once while the process starts and is read-only
// afterwards; Resolve takes no lock, so Register must not be called once the
// registry has been handed to validators.
type TypeRegistry struct {
	predicates map[string]Predicate
}

// NewTypeRegistry returns a registry holding entries. Registering the same
// tag twice is an error.
func NewTypeRegistry(entries ...TypeEntry) (*TypeRegistry, error) {
	r := &TypeRegistry{predicates: make(map[string]Predicate, len(entries))}
	for _, e := range entries {
		if err := r.Register(e.Tag, e.Predicate); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultTypeRegistry returns a registry with the string, integer, number
// and boolean tags.
func DefaultTypeRegistry() *TypeRegistry {
	r, err := NewTypeRegistry(DefaultTypes()...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultTypes lists the built-in type entries. Callers extending the
// registry append their own entries to this slice.
func DefaultTypes() []TypeEntry {
	return []TypeEntry{
		{Tag: TypeString, Predicate: isString},
		{Tag: TypeInteger, Predicate: isInteger},
		{Tag: TypeNumber, Predicate: isNumber},
		{Tag: TypeBoolean, Predicate: isBoolean},
	}
}

// Register adds predicate for tag. A duplicate tag is rejected with a
// [ConfigError] of kind KindDuplicateType; the first registration stays.
func (r *TypeRegistry) Register(tag string, predicate Predicate) error {
	if tag == "" || predicate == nil {
		return &ConfigError{
			Kind:    KindInvalidSchema,
			TypeTag: tag,
			Message: "type registration needs a tag and a predicate",
		}
	}
	if _, ok := r.predicates[tag]; ok {
		return &ConfigError{
			Kind:    KindDuplicateType,
			TypeTag: tag,
			Message: fmt.Sprintf("type %q is already registered", tag),
		}
	}
	r.predicates[tag] = predicate
	return nil
}

// Resolve returns the predicate registered for tag.
func (r *TypeRegistry) Resolve(tag string) (Predicate, bool) {
	p, ok := r.predicates[tag]
	return p, ok
}

// Tags returns the registered tags in lexical order.
func (r *TypeRegistry) Tags() []string {
	tags := make([]string, 0, len(r.predicates))
	for tag := range r.predicates {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func isString(value any) bool {
	_, ok := value.(string)
	return ok
}

func isInteger(value any) bool {
	_, ok := toInt64(value)
	return ok
}

func isNumber(value any) bool {
	_, ok := toFloat64(value)
	return ok
}

func isBoolean(value any) bool {
	_, ok := value.(bool)
	return ok
}

// toInt64 accepts JSON numbers without a fraction or exponent, Go integer
// kinds and whole floats that fit in an int64. Booleans are not integers.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		n, ok := toInt64(value)
		return float64(n), ok
	}
}
