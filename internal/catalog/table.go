package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table is the ordered product table, loaded once per run and read-only
// during generation.
type Table struct {
	Records []Record
	Columns []string
}

// LoadCSV reads a product table from a CSV file. Header names are normalized
// to lowercase and trimmed. An unreadable file or malformed CSV is fatal to
// the run.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open product table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse product table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("product table %s has no header row", path)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	table := &Table{Columns: header, Records: make([]Record, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }
