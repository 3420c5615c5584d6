package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// schemaFile is the on-disk form of a Dataset.
//
//	name: icfes
//	path: anonymized/icfes_combined_anonymized.csv
//	columns:
//	  - name: SCHOOL_ID
//	    type: string
//	  - name: PUNT_GLOBAL
//	    type: float64
type schemaFile struct {
	Name    string `yaml:"name"`
	Label   string `yaml:"label"`
	Path    string `yaml:"path"`
	Columns []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"columns"`
}

// LoadSchemaFile reads a dataset definition from a YAML file.
func LoadSchemaFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read schema file: %w", err)
	}
	return ParseSchema(data)
}

// ParseSchema decodes a YAML dataset definition.
func ParseSchema(data []byte) (Dataset, error) {
	var sf schemaFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return Dataset{}, fmt.Errorf("parse schema: %w", err)
	}
	if sf.Name == "" {
		return Dataset{}, fmt.Errorf("parse schema: name is required")
	}
	if len(sf.Columns) == 0 {
		return Dataset{}, fmt.Errorf("parse schema %s: at least one column is required", sf.Name)
	}

	schema := Schema{Name: sf.Name, Fields: make([]FieldSpec, 0, len(sf.Columns))}
	for _, col := range sf.Columns {
		typ, err := ParseFieldType(col.Type)
		if err != nil {
			return Dataset{}, fmt.Errorf("parse schema %s: column %q: %w", sf.Name, col.Name, err)
		}
		schema.Fields = append(schema.Fields, FieldSpec{Name: col.Name, Type: typ})
	}
	if err := schema.Validate(); err != nil {
		return Dataset{}, err
	}

	label := sf.Label
	if label == "" {
		label = sf.Name
	}
	return Dataset{Name: sf.Name, Label: label, DefaultPath: sf.Path, Schema: schema}, nil
}
