package validators

import "fmt"

// FieldValidator validates a single value of one record field.
//
// The rule chain is fixed: required check, type check, then the declared
// constraints in the order they appear in the schema. The first failing
// step ends validation of the field.
type FieldValidator struct {
	name      string
	required  bool
	typeTag   string
	predicate Predicate
	rules     []Rule
}

// NewFieldValidator builds a validator for schema. The type tag is resolved
// in registry right away, so an unknown tag surfaces as a [ConfigError] of
// kind KindUnsupportedType at construction instead of on the first request.
//
// Only constraints listed in constraints get a rule; other declared bounds
// mean nothing for this variant and are skipped. A bound that is not
// declared adds no rule.
func NewFieldValidator(registry *TypeRegistry, schema FieldSchema, constraints ConstraintSet) (*FieldValidator, error) {
	predicate, ok := registry.Resolve(schema.Type)
	if !ok {
		return nil, &ConfigError{
			Kind:    KindUnsupportedType,
			Field:   schema.Name,
			TypeTag: schema.Type,
			Message: "unsupported data type",
		}
	}

	rules := make([]Rule, 0, len(schema.Constraints))
	for _, c := range schema.Constraints {
		newRule, ok := constraints[c.Name]
		if !ok {
			continue
		}
		rule, err := newRule(schema.Name, c.Value)
		if err != nil {
			return nil, &ConfigError{
				Kind:    KindInvalidConstraint,
				Field:   schema.Name,
				TypeTag: schema.Type,
				Message: fmt.Sprintf("bad value %v for constraint %q", c.Value, c.Name),
				Err:     err,
			}
		}
		rules = append(rules, rule)
	}

	return &FieldValidator{
		name:      schema.Name,
		required:  schema.Required,
		typeTag:   schema.Type,
		predicate: predicate,
		rules:     rules,
	}, nil
}

// Name returns the field name the validator was built for.
func (v *FieldValidator) Name() string { return v.name }

// Required reports whether the field must be present and non-empty.
func (v *FieldValidator) Required() bool { return v.required }

// Type returns the field's type tag.
func (v *FieldValidator) Type() string { return v.typeTag }

// Validate runs the rule chain against value. A nil value stands for an
// absent key.
func (v *FieldValidator) Validate(value any) error {
	if isEmpty(value) {
		if v.required {
			return missingField(v.name)
		}
		// empty optional values are never type- or constraint-checked
		return nil
	}

	if !v.predicate(value) {
		return typeMismatch(v.name, v.typeTag, value)
	}

	for _, rule := range v.rules {
		if err := rule(value); err != nil {
			return err
		}
	}

	return nil
}

// isEmpty treats an absent key, JSON null and "" as empty. 0 and false are
// values, not blanks: a required integer or boolean accepts them, and an
// optional one still runs its type and constraint checks on them.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}
