package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jamarko/catalogbuilder/internal/catalog"
	"github.com/jamarko/catalogbuilder/internal/config"
	"github.com/jamarko/catalogbuilder/internal/errors"
	"github.com/jamarko/catalogbuilder/internal/logfields"
	"github.com/jamarko/catalogbuilder/internal/schema"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Data   string `help:"Path of the catalog CSV to validate (overrides config)"`
	Schema string `help:"Path of the schema file (overrides config)"`
}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataPath := cfg.Catalog.Data
	if v.Data != "" {
		dataPath = v.Data
	}
	schemaPath := cfg.Catalog.Schema
	if v.Schema != "" {
		schemaPath = v.Schema
	}

	table, err := catalog.LoadCSV(dataPath)
	if err != nil {
		return err
	}

	s, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	result := schema.Validate(table, s)
	if result.OK() {
		fmt.Printf("Catalog valid: %d records checked\n", result.Checked)
		return nil
	}

	for _, f := range result.Findings {
		fmt.Printf("row %d (%s): missing field %q\n", f.Row, f.ProductID, f.MissingField)
		slog.Warn("Record failed validation",
			logfields.ProductID(f.ProductID), logfields.Field(f.MissingField))
	}
	return errors.ValidationError(
		fmt.Sprintf("catalog validation failed: %d of %d records incomplete", len(result.Findings), result.Checked))
}

// loadSchema reads the schema file, falling back to the built-in canonical
// column set when no file is configured or present.
func loadSchema(path string) (*schema.Schema, error) {
	if path == "" {
		return schema.Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("Schema file not found, using built-in schema", logfields.Path(path))
		return schema.Default(), nil
	}
	return schema.Load(path)
}
