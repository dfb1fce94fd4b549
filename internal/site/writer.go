// Package site persists rendered pages and category indexes into the output
// tree: <root>/<category-slug>/products/<slug><ext> per page and
// <root>/<category-slug>/index<ext> per category.
package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/jamarko/catalogbuilder/internal/format"
)

// Writer persists rendered output under a single root directory.
type Writer struct {
	root string
	ext  string
}

// NewWriter creates a writer rooted at dir. ext is the page/index file
// extension including the dot; empty defaults to ".qmd".
func NewWriter(dir, ext string) *Writer {
	if ext == "" {
		ext = ".qmd"
	}
	return &Writer{root: dir, ext: ext}
}

// Root returns the output root directory.
func (w *Writer) Root() string { return w.root }

// PagePath returns the output path for a product page without writing it.
func (w *Writer) PagePath(category, slug string) string {
	return filepath.Join(w.root, format.Slugify(category), "products", slug+w.ext)
}

// IndexPath returns the output path for a category index.
func (w *Writer) IndexPath(category string) string {
	return filepath.Join(w.root, format.Slugify(category), "index"+w.ext)
}

// WritePage persists one rendered product page, creating intermediate
// directories and overwriting any existing file. Returns the written path.
func (w *Writer) WritePage(category, slug, content string) (string, error) {
	path := w.PagePath(category, slug)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create page directory: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader([]byte(content))); err != nil {
		return "", fmt.Errorf("failed to write page %s: %w", path, err)
	}
	return path, nil
}

// categoryIndex is the fixed index front-matter block. Only the display
// title is interpolated; everything else is static listing configuration
// consumed by the downstream site renderer.
const categoryIndex = `---
title: "%s"
listing:
  contents: "products"
  fields: [image, title, categories]
  image-placeholder: ../../assets/media/images/logos_and_banners/logo.png
  feed:
    items: 10
  sort:
    - "date"
    - "title asc"
  type: grid
  categories: true
  sort-ui: [title, date]
  filter-ui: [title, date]
---
`

// WriteCategoryIndex persists the index document for one category. The
// content is a byte-stable template interpolating only the capitalized
// category display name.
func (w *Writer) WriteCategoryIndex(category string) (string, error) {
	path := w.IndexPath(category)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}
	content := fmt.Sprintf(categoryIndex, capitalize(category))
	if err := atomic.WriteFile(path, bytes.NewReader([]byte(content))); err != nil {
		return "", fmt.Errorf("failed to write category index %s: %w", path, err)
	}
	return path, nil
}

// Clean removes the output root entirely. Used when output.clean is set.
func (w *Writer) Clean() error {
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("failed to clean output directory %s: %w", w.root, err)
	}
	return nil
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// the display convention of category titles ("boxes" -> "Boxes").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r := []rune(lower)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
