// Package templates ships the starter assets written by the init command: a
// product page template and the catalog schema file.
package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed starter/*
var starterFS embed.FS

// starterFiles maps embedded assets to their destination relative to the
// project root, matching the paths the default configuration points at.
var starterFiles = map[string]string{
	"starter/product_template.qmd": "shop/_templates/product_template.qmd",
	"starter/schema.yml":           "data/schema.yml",
}

// WriteStarter writes the starter template and schema under root. Existing
// files are left alone unless force is set.
func WriteStarter(root string, force bool) error {
	for src, rel := range starterFiles {
		dst := filepath.Join(root, rel)
		if _, err := os.Stat(dst); err == nil && !force {
			continue
		}
		data, err := starterFS.ReadFile(src)
		if err != nil {
			return fmt.Errorf("embedded starter asset %s missing: %w", src, err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(dst), err)
		}
		// #nosec G306 -- starter assets are not sensitive
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
	}
	return nil
}
