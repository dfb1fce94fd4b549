// Package schema implements the presence check run ahead of a build: every
// field named by the schema must exist as a column on every record. The
// build pipeline itself assumes validated input and enforces nothing.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jamarko/catalogbuilder/internal/catalog"
)

// Schema lists the required product table fields.
type Schema struct {
	Products []string `yaml:"products"`
}

// Default returns a schema requiring the canonical product table columns.
func Default() *Schema {
	return &Schema{Products: append([]string(nil), catalog.Columns...)}
}

// Load reads a schema file (YAML, `products:` list of field names).
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	if len(s.Products) == 0 {
		return nil, fmt.Errorf("schema file %s lists no product fields", path)
	}
	return &s, nil
}

// Finding is one record that failed the presence check. Only the first
// missing field per record is reported.
type Finding struct {
	Row          int    // 1-based data row number
	ProductID    string // may be empty when the id column itself is absent
	MissingField string
}

// Result aggregates a validation run.
type Result struct {
	Checked  int
	Findings []Finding
}

// OK reports whether every record passed.
func (r *Result) OK() bool { return len(r.Findings) == 0 }

// Validate checks every record of the table against the schema.
func Validate(table *catalog.Table, s *Schema) *Result {
	res := &Result{Checked: table.Len()}
	for i, rec := range table.Records {
		for _, field := range s.Products {
			if !rec.Has(field) {
				res.Findings = append(res.Findings, Finding{
					Row:          i + 1,
					ProductID:    rec.ID(),
					MissingField: field,
				})
				break
			}
		}
	}
	return res
}
