package catalog

// Annotate overlays the curated status flags onto every suite that has
// a status row. Suites without a row keep their defaults (kept, not
// deprecated).
func Annotate(c *Collection, status StatusTable) {
	for _, s := range c.Suites {
		if st, ok := status[s.ID]; ok {
			s.ToKeep = st.Keep
			s.Deprecated = st.Deprecated
		}
	}
}

// Filter returns the suites that survive the category allow-list and
// the curated status overrides: a suite is kept when its ToolShed
// categories intersect the allow-list and no status row excludes it.
// Deprecated rows annotate but do not exclude. An empty allow-list
// applies no category constraint (the categories file is optional).
func Filter(c *Collection, categories []string, status StatusTable) *Collection {
	Annotate(c, status)

	out := &Collection{}
	for _, s := range c.Suites {
		if len(categories) > 0 && !s.HasCategory(categories) {
			continue
		}
		if st, ok := status[s.ID]; ok && !st.Keep {
			continue
		}
		out.Add(s)
	}
	return out
}

// Curate overlays status flags and partitions the collection by
// bio.tools linkage. The two returned collections are disjoint: a suite
// with a non-empty bio.tools id goes to the first, all others to the
// second.
func Curate(c *Collection, status StatusTable) (withBioTools, withoutBioTools *Collection) {
	Annotate(c, status)

	withBioTools = &Collection{}
	withoutBioTools = &Collection{}
	for _, s := range c.Suites {
		if s.HasBioTools() {
			withBioTools.Add(s)
		} else {
			withoutBioTools.Add(s)
		}
	}
	return withBioTools, withoutBioTools
}
