package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// serverColumnPrefix prefixes the per-server installed-tool count
// columns in TSV exports.
const serverColumnPrefix = "Number of tools on "

// baseColumns is the fixed TSV column order; per-server count columns
// are appended after, sorted by server name.
var baseColumns = []string{
	"Suite ID",
	"Suite owner",
	"Description",
	"Homepage",
	"Suite source",
	"Galaxy tool ids",
	"ToolShed categories",
	"EDAM operations",
	"EDAM topics",
	"bio.tool id",
	"bio.tool name",
	"bio.tool description",
	"Conda id",
	"Conda version",
	"First commit",
	"To keep",
	"Deprecated",
}

// Columns returns the full TSV header for a collection, including one
// count column per Galaxy server seen in the collection.
func Columns(c *Collection) []string {
	cols := make([]string, len(baseColumns))
	copy(cols, baseColumns)
	for _, name := range c.ServerNames() {
		cols = append(cols, serverColumnPrefix+name)
	}
	return cols
}

// WriteTSV writes the collection as tab-separated rows with a header.
// List-valued columns are flattened to comma-joined strings. A non-empty
// keepColumns restricts the output to exactly those columns, in the
// given order.
func WriteTSV(w io.Writer, c *Collection, keepColumns []string) error {
	c.SortByID()

	cols := Columns(c)
	if len(keepColumns) > 0 {
		known := map[string]bool{}
		for _, col := range cols {
			known[col] = true
		}
		for _, col := range keepColumns {
			if !known[col] {
				return fmt.Errorf("catalog: unknown TSV column %q", col)
			}
		}
		cols = keepColumns
	}

	tw := csv.NewWriter(w)
	tw.Comma = '\t'

	if err := tw.Write(cols); err != nil {
		return fmt.Errorf("catalog: write TSV header: %w", err)
	}
	row := make([]string, len(cols))
	for _, s := range c.Suites {
		for i, col := range cols {
			row[i] = cellValue(s, col)
		}
		if err := tw.Write(row); err != nil {
			return fmt.Errorf("catalog: write TSV row for %q: %w", s.ID, err)
		}
	}
	tw.Flush()
	return tw.Error()
}

// SaveTSV writes the collection to a TSV file at path.
func (c *Collection) SaveTSV(path string, keepColumns []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("catalog: create %q: %w", path, err)
	}
	defer f.Close()
	return WriteTSV(f, c, keepColumns)
}

func cellValue(s *Suite, col string) string {
	switch col {
	case "Suite ID":
		return s.ID
	case "Suite owner":
		return s.Owner
	case "Description":
		return s.Description
	case "Homepage":
		return s.Homepage
	case "Suite source":
		return s.Source
	case "Galaxy tool ids":
		return strings.Join(s.ToolIDs(), ", ")
	case "ToolShed categories":
		return strings.Join(s.Categories, ", ")
	case "EDAM operations":
		return strings.Join(s.EDAMOperations, ", ")
	case "EDAM topics":
		return strings.Join(s.EDAMTopics, ", ")
	case "bio.tool id":
		return s.BioToolsID
	case "bio.tool name":
		return s.BioToolsName
	case "bio.tool description":
		return s.BioToolsDescription
	case "Conda id":
		return s.CondaID
	case "Conda version":
		return s.CondaVersion
	case "First commit":
		return s.FirstCommit
	case "To keep":
		return formatBool(s.ToKeep)
	case "Deprecated":
		return formatBool(s.Deprecated)
	}
	if name, ok := strings.CutPrefix(col, serverColumnPrefix); ok {
		return strconv.Itoa(s.Installs[name])
	}
	return ""
}

// formatBool uses Python-style spelling so exported tables stay
// compatible with the community status files fed back into filter.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
