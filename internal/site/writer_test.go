package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePage(t *testing.T) {
	out := t.TempDir()
	w := NewWriter(out, ".qmd")

	path, err := w.WritePage("paper_bags", "paper-bags-1", "hello")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "paper-bags", "products", "paper-bags-1.qmd"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestWritePageOverwrites(t *testing.T) {
	out := t.TempDir()
	w := NewWriter(out, ".qmd")

	_, err := w.WritePage("boxes", "boxes-1", "first")
	require.NoError(t, err)
	path, err := w.WritePage("boxes", "boxes-1", "second")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}

func TestWriteCategoryIndex(t *testing.T) {
	out := t.TempDir()
	w := NewWriter(out, ".qmd")

	path, err := w.WriteCategoryIndex("boxes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "boxes", "index.qmd"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(b)

	assert.True(t, strings.HasPrefix(content, "---\n"), "front matter delimiter")
	assert.Contains(t, content, `title: "Boxes"`)
	assert.Contains(t, content, `contents: "products"`)
	assert.Contains(t, content, "type: grid")

	// Byte-stable: a second write yields identical content.
	path2, err := w.WriteCategoryIndex("boxes")
	require.NoError(t, err)
	b2, err := os.ReadFile(path2)
	require.NoError(t, err)
	assert.Equal(t, b, b2)
}

func TestDefaultExtension(t *testing.T) {
	w := NewWriter("/tmp/out", "")
	assert.Equal(t, filepath.Join("/tmp/out", "boxes", "products", "x.qmd"), w.PagePath("boxes", "x"))
}

func TestWriteReport(t *testing.T) {
	out := t.TempDir()
	w := NewWriter(out, ".qmd")

	r := NewReport()
	r.Records = 4
	r.Pages = 5
	r.Categories = []string{"boxes", "notebooks"}
	r.Finish(OutcomeSuccess)

	path, err := w.WriteReport(r)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "build-report.json"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, r.RunID, decoded.RunID)
	assert.Equal(t, 5, decoded.Pages)
	assert.Equal(t, OutcomeSuccess, decoded.Outcome)
	assert.NotEmpty(t, decoded.Duration)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Boxes", capitalize("boxes"))
	assert.Equal(t, "Paper_bags", capitalize("paper_bags"))
	assert.Equal(t, "Boxes", capitalize("BOXES"))
	assert.Equal(t, "", capitalize(""))
}
