// Package catalog holds the toolcodex domain model: tool suites
// extracted from GitHub wrapper repositories, the manually maintained
// status table, and the stage logic (filter, curate) plus JSON/TSV
// serialization used as inter-stage handoff.
package catalog

import "strings"

// Tool is one command-line wrapper definition inside a suite.
type Tool struct {
	ID      string `json:"id"`
	ShortID string `json:"short_id"`
	Version string `json:"version"`
}

// Suite is one GitHub repository folder containing one or more related
// tool definitions. The suite is the unit of filtering and curation.
// JSON keys double as TSV column headers.
type Suite struct {
	ID                  string         `json:"Suite ID"`
	Owner               string         `json:"Suite owner"`
	Description         string         `json:"Description"`
	Homepage            string         `json:"Homepage"`
	Source              string         `json:"Suite source"`
	Tools               []Tool         `json:"Galaxy tools"`
	Categories          []string       `json:"ToolShed categories"`
	EDAMOperations      []string       `json:"EDAM operations"`
	EDAMTopics          []string       `json:"EDAM topics"`
	BioToolsID          string         `json:"bio.tool id"`
	BioToolsName        string         `json:"bio.tool name"`
	BioToolsDescription string         `json:"bio.tool description"`
	CondaID             string         `json:"Conda id"`
	CondaVersion        string         `json:"Conda version"`
	FirstCommit         string         `json:"First commit"`
	ToKeep              bool           `json:"To keep"`
	Deprecated          bool           `json:"Deprecated"`
	Installs            map[string]int `json:"Tools available on servers"`
}

// NewSuite returns a Suite with non-nil collections so that JSON
// exports always encode lists as lists and round-trip equal.
func NewSuite(id string) *Suite {
	return &Suite{
		ID:             id,
		Tools:          []Tool{},
		Categories:     []string{},
		EDAMOperations: []string{},
		EDAMTopics:     []string{},
		Installs:       map[string]int{},
		ToKeep:         true,
	}
}

// ToolIDs returns the shortened ids of all tools in the suite.
func (s *Suite) ToolIDs() []string {
	ids := make([]string, 0, len(s.Tools))
	for _, t := range s.Tools {
		ids = append(ids, t.ShortID)
	}
	return ids
}

// HasBioTools reports whether the suite carries a bio.tools linkage.
func (s *Suite) HasBioTools() bool {
	return s.BioToolsID != ""
}

// HasCategory reports whether any of the suite's ToolShed categories
// appears in the given allow-list.
func (s *Suite) HasCategory(allowed []string) bool {
	for _, c := range s.Categories {
		for _, a := range allowed {
			if c == a {
				return true
			}
		}
	}
	return false
}

// ShortToolID shortens a fully qualified Galaxy tool id. ToolShed ids
// look like toolshed.g2.bx.psu.edu/repos/<owner>/<suite>/<tool>/<version>;
// the tool segment is the second-to-last. Plain ids pass through.
func ShortToolID(id string) string {
	if strings.Contains(id, "toolshed") {
		parts := strings.Split(id, "/")
		if len(parts) >= 2 {
			return parts[len(parts)-2]
		}
	}
	return id
}

// BareToolID strips any path prefix from a Galaxy tool id, keeping only
// the last URL segment. Works for both local and ToolShed-installed ids.
func BareToolID(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
