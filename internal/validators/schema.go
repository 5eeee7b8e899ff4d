package validators

// Constraint is one declared bound of a field, e.g. {Name: "max", Value: 120}.
type Constraint struct {
	Name  string
	Value any
}

// FieldSchema is the declarative description of one record field.
type FieldSchema struct {
	Name     string
	Type     string
	Required bool

	// Constraints keeps the order in which the bounds were declared; rules
	// are evaluated in that order.
	Constraints []Constraint
}

// Constraint returns the raw value of the named constraint.
func (s FieldSchema) Constraint(name string) (any, bool) {
	for _, c := range s.Constraints {
		if c.Name == name {
			return c.Value, true
		}
	}
	return nil, false
}

// RecordSchema is the schema of one endpoint.
type RecordSchema struct {
	// Fields are validated in this order.
	Fields     []FieldSchema
	AllowExtra bool
}

// Record is a decoded flat payload. Numbers are kept as json.Number.
type Record map[string]any
