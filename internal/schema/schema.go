// Package schema loads endpoint schemas from a YAML (or JSON) document.
//
// The document has a single "patterns" root that maps endpoint names to
// record schemas:
//
//	patterns:
//	  users:
//	    allow_extra: false
//	    fields:
//	      age: {type: integer, required: true, min: 0, max: 120}
//
// Every field key other than "type" and "required" is a constraint. The
// order of endpoints, fields and constraints in the document is preserved.
package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-schema-gate/internal/validators"
)

const (
	keyPatterns   = "patterns"
	keyFields     = "fields"
	keyAllowExtra = "allow_extra"
	keyType       = "type"
	keyRequired   = "required"
)

// routeMetaChars can not appear in an endpoint name: the name becomes a
// literal route path segment.
const routeMetaChars = "/{}*"

// Endpoint is one named record schema.
type Endpoint struct {
	Name   string
	Schema validators.RecordSchema
}

// Load reads and parses the schema file at path.
func Load(path string) ([]Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading schema file: %w", err)
	}

	endpoints, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing schema file %s: %w", path, err)
	}
	return endpoints, nil
}

// Parse decodes a schema document.
func Parse(data []byte) ([]Endpoint, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNoPatterns
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root is not a mapping", ErrInvalidDocument)
	}

	patterns := lookup(root, keyPatterns)
	if patterns == nil {
		return nil, ErrNoPatterns
	}
	if patterns.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %q is not a mapping", ErrInvalidDocument, keyPatterns)
	}

	endpoints := make([]Endpoint, 0, len(patterns.Content)/2)
	seen := make(map[string]struct{}, len(patterns.Content)/2)
	for i := 0; i+1 < len(patterns.Content); i += 2 {
		name := patterns.Content[i].Value
		if name == "" {
			return nil, fmt.Errorf("%w at line %d", ErrEmptyEndpointName, patterns.Content[i].Line)
		}
		if strings.ContainsAny(name, routeMetaChars) {
			return nil, fmt.Errorf("%w: %q at line %d", ErrInvalidEndpointName, name, patterns.Content[i].Line)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEndpoint, name)
		}
		seen[name] = struct{}{}

		record, err := parseRecord(patterns.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", name, err)
		}
		endpoints = append(endpoints, Endpoint{Name: name, Schema: record})
	}

	if len(endpoints) == 0 {
		return nil, ErrNoPatterns
	}
	return endpoints, nil
}

func parseRecord(node *yaml.Node) (validators.RecordSchema, error) {
	var record validators.RecordSchema
	if node.Kind != yaml.MappingNode {
		return record, fmt.Errorf("%w: endpoint is not a mapping", ErrInvalidDocument)
	}

	if allow := lookup(node, keyAllowExtra); allow != nil {
		if err := weakDecodeNode(allow, &record.AllowExtra); err != nil {
			return record, fmt.Errorf("%w: %q: %v", ErrInvalidDocument, keyAllowExtra, err)
		}
	}

	fields := lookup(node, keyFields)
	if fields == nil {
		return record, nil
	}
	if fields.Kind != yaml.MappingNode {
		return record, fmt.Errorf("%w: %q is not a mapping", ErrInvalidDocument, keyFields)
	}

	seen := make(map[string]struct{}, len(fields.Content)/2)
	for i := 0; i+1 < len(fields.Content); i += 2 {
		name := fields.Content[i].Value
		if _, ok := seen[name]; ok {
			return record, fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[name] = struct{}{}

		field, err := parseField(name, fields.Content[i+1])
		if err != nil {
			return record, fmt.Errorf("field %q: %w", name, err)
		}
		record.Fields = append(record.Fields, field)
	}

	return record, nil
}

func parseField(name string, node *yaml.Node) (validators.FieldSchema, error) {
	field := validators.FieldSchema{Name: name}
	if node.Kind != yaml.MappingNode {
		return field, fmt.Errorf("%w: field is not a mapping", ErrInvalidDocument)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case keyType:
			if err := value.Decode(&field.Type); err != nil {
				return field, fmt.Errorf("%w: %q: %v", ErrInvalidDocument, keyType, err)
			}
		case keyRequired:
			if err := weakDecodeNode(value, &field.Required); err != nil {
				return field, fmt.Errorf("%w: %q: %v", ErrInvalidDocument, keyRequired, err)
			}
		default:
			var raw any
			if err := value.Decode(&raw); err != nil {
				return field, fmt.Errorf("%w: %q: %v", ErrInvalidDocument, key, err)
			}
			field.Constraints = append(field.Constraints, validators.Constraint{Name: key, Value: raw})
		}
	}

	if field.Type == "" {
		return field, ErrMissingType
	}
	return field, nil
}

// lookup returns the value node of key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// weakDecodeNode accepts the loose spellings config authors use for
// scalars ("true", 1, "0").
func weakDecodeNode(node *yaml.Node, out any) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return mapstructure.WeakDecode(raw, out)
}
