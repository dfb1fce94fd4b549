package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/jamarko/catalogbuilder/internal/format"
)

// BuildOutcome is the final result state of a build run.
type BuildOutcome string

const (
	OutcomeSuccess BuildOutcome = "success"
	OutcomeFailed  BuildOutcome = "failed"
)

// Report captures high-level metrics about one catalog build run.
type Report struct {
	RunID      string       `json:"run_id"`
	Records    int          `json:"records"`
	Pages      int          `json:"pages"`
	Categories []string     `json:"categories"`
	Start      time.Time    `json:"start"`
	End        time.Time    `json:"end"`
	Duration   string       `json:"duration"`
	Outcome    BuildOutcome `json:"outcome"`
}

// NewReport starts a report for a run beginning now.
func NewReport() *Report {
	return &Report{
		RunID: uuid.NewString(),
		Start: time.Now(),
	}
}

// Finish stamps the end time, elapsed duration, and outcome.
func (r *Report) Finish(outcome BuildOutcome) {
	r.End = time.Now()
	r.Duration = format.FormatDuration(r.End.Sub(r.Start))
	r.Outcome = outcome
}

// Elapsed returns the wall time between start and end (or since start when
// the report is unfinished).
func (r *Report) Elapsed() time.Duration {
	if r.End.IsZero() {
		return time.Since(r.Start)
	}
	return r.End.Sub(r.Start)
}

// WriteReport persists the report as JSON at <root>/build-report.json.
func (w *Writer) WriteReport(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal build report: %w", err)
	}
	if err := os.MkdirAll(w.root, 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(w.root, "build-report.json")
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write build report: %w", err)
	}
	return path, nil
}
