package format

import (
	"strings"

	"toolcodex/internal/catalog"
)

const descriptionWidth = 60

// CollectionSummary renders a per-suite overview table for a catalog.
func CollectionSummary(c *catalog.Collection, m Mode) string {
	tb := NewTable(m)
	tb.Header("Suite", "Owner", "Tools", "bio.tools", "Description")
	tb.Columns(
		ColumnConfig{Number: 3, Align: AlignRight},
		ColumnConfig{Number: 5, MaxWidth: descriptionWidth},
	)

	tools := 0
	for _, s := range c.Suites {
		bt := s.BioToolsID
		if bt == "" {
			bt = "-"
		}
		tb.Row(s.ID, s.Owner, len(s.Tools), bt, Truncate(oneLine(s.Description), descriptionWidth))
		tools += len(s.Tools)
	}
	tb.Footer(FmtCount(c.Len(), "suite"), "", tools, "", "")
	return tb.String()
}

// CategorySummary renders suite counts per ToolShed category.
func CategorySummary(c *catalog.Collection, m Mode) string {
	counts := map[string]int{}
	for _, s := range c.Suites {
		for _, cat := range s.Categories {
			counts[cat]++
		}
	}

	tb := NewTable(m)
	tb.Header("Category", "Suites")
	tb.Columns(ColumnConfig{Number: 2, Align: AlignRight})
	for _, cat := range c.Categories() {
		tb.Row(cat, counts[cat])
	}
	return tb.String()
}

// CurationSummary renders the outcome of splitting a catalog by
// bio.tools linkage.
func CurationSummary(withBioTools, withoutBioTools *catalog.Collection, m Mode) string {
	tb := NewTable(m)
	tb.Header("Partition", "Suites")
	tb.Columns(ColumnConfig{Number: 2, Align: AlignRight})
	tb.Row("with bio.tools entry", withBioTools.Len())
	tb.Row("without bio.tools entry", withoutBioTools.Len())
	tb.Footer("total", withBioTools.Len()+withoutBioTools.Len())
	return tb.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
