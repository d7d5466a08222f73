package main

import (
	"toolcodex/internal/catalog"
	"toolcodex/internal/format"
)

// Per-stage console summaries, rendered as terminal tables.

func collectionSummary(c *catalog.Collection) string {
	return format.CollectionSummary(c, format.ASCII)
}

func categorySummary(c *catalog.Collection) string {
	return format.CategorySummary(c, format.ASCII)
}

func curationSummary(with, without *catalog.Collection) string {
	return format.CurationSummary(with, without, format.ASCII)
}
