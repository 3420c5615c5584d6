package core

import (
	"fmt"
	"strings"
)

// FieldType represents the declared semantic type of a column.
type FieldType int

const (
	// FieldRaw marks a column present in the file but not in the schema.
	// Its cells are kept exactly as read.
	FieldRaw FieldType = iota
	FieldText
	FieldFloat
	FieldInt
)

// String returns the dtype name shown in table summaries.
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "string"
	case FieldFloat:
		return "float64"
	case FieldInt:
		return "Int64"
	default:
		return "object"
	}
}

// ParseFieldType converts a schema type name to a FieldType.
// Accepts both short names (text, float, int) and dtype names (string, float64, int64).
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text", "str":
		return FieldText, nil
	case "float", "float64", "double":
		return FieldFloat, nil
	case "int", "int64", "integer":
		return FieldInt, nil
	default:
		return FieldRaw, fmt.Errorf("unknown field type %q", s)
	}
}

// FieldSpec declares the type of a single column.
type FieldSpec struct {
	Name string    // Column header name (must match the file exactly)
	Type FieldType // Declared type
}

// Schema is an ordered column-name to type mapping.
//
// A schema is a subset filter: columns it names that are absent from the
// file are skipped, and file columns it does not name are kept as raw text.
type Schema struct {
	Name   string
	Fields []FieldSpec
}

// Lookup returns the spec for a column name.
func (s Schema) Lookup(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Columns returns the declared column names in schema order.
func (s Schema) Columns() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Validate reports empty or duplicate column names.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema %s: field %d has no name", s.Name, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema %s: duplicate field %q", s.Name, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
