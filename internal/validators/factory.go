package validators

import "fmt"

// Factory maps type tags to validator builders. Like [TypeRegistry] it is
// assembled once and then shared read-only.
type Factory struct {
	registry *TypeRegistry
	builders map[string]Builder
}

// NewFactory returns a factory resolving types in registry and building
// validators with builders. The map is copied.
func NewFactory(registry *TypeRegistry, builders map[string]Builder) *Factory {
	copied := make(map[string]Builder, len(builders))
	for tag, b := range builders {
		copied[tag] = b
	}
	return &Factory{
		registry: registry,
		builders: copied,
	}
}

// DefaultFactory returns a factory over [DefaultTypeRegistry] and
// [DefaultBuilders].
func DefaultFactory() *Factory {
	return NewFactory(DefaultTypeRegistry(), DefaultBuilders())
}

// DefaultBuilders lists the built-in variants: string and integer with
// their min/max bounds, number with min/max, boolean with no bounds.
func DefaultBuilders() map[string]Builder {
	return map[string]Builder{
		TypeString:  ConstrainedBuilder(StringConstraints),
		TypeInteger: ConstrainedBuilder(IntegerConstraints),
		TypeNumber:  ConstrainedBuilder(NumberConstraints),
		TypeBoolean: ConstrainedBuilder(nil),
	}
}

// ConstrainedBuilder returns a Builder producing validators that understand
// the given constraints. A nil set yields the generic variant that only
// runs the required and type checks.
func ConstrainedBuilder(constraints ConstraintSet) Builder {
	return func(registry *TypeRegistry, schema FieldSchema) (*FieldValidator, error) {
		return NewFieldValidator(registry, schema, constraints)
	}
}

// Build returns a validator for the field named fieldName. It fails with
// KindUnsupportedFieldType when no builder knows schema.Type; that check
// happens before the registry lookup done by the builder itself.
func (f *Factory) Build(fieldName string, schema FieldSchema) (*FieldValidator, error) {
	build, ok := f.builders[schema.Type]
	if !ok {
		return nil, &ConfigError{
			Kind:    KindUnsupportedFieldType,
			Field:   fieldName,
			TypeTag: schema.Type,
			Message: fmt.Sprintf("unsupported field type %q, check config", schema.Type),
		}
	}

	schema.Name = fieldName
	return build(f.registry, schema)
}

// Registry returns the type registry the factory resolves tags in.
func (f *Factory) Registry() *TypeRegistry { return f.registry }
