package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Status is one manually curated row keyed by suite id.
type Status struct {
	Keep       bool
	Deprecated bool
}

// StatusTable maps suite ids to their curated status.
type StatusTable map[string]Status

// LoadStatusTable reads the community status TSV: a header row followed
// by rows of suite id, keep flag, deprecated flag. An empty path or a
// missing file yields an empty table (status files are optional inputs).
// Boolean cells accept Go and Python spellings (true/True/1).
func LoadStatusTable(path string) (StatusTable, error) {
	if path == "" {
		return StatusTable{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return StatusTable{}, nil
		}
		return nil, fmt.Errorf("catalog: open status %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("catalog: parse status %q: %w", path, err)
	}

	table := StatusTable{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("catalog: status %q row %d: want at least 3 columns, got %d", path, i+1, len(row))
		}
		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}
		keep, err := parseBool(row[1])
		if err != nil {
			return nil, fmt.Errorf("catalog: status %q row %d keep flag: %w", path, i+1, err)
		}
		deprecated, err := parseBool(row[2])
		if err != nil {
			return nil, fmt.Errorf("catalog: status %q row %d deprecated flag: %w", path, i+1, err)
		}
		table[id] = Status{Keep: keep, Deprecated: deprecated}
	}
	return table, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
