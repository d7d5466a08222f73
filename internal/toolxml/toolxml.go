// Package toolxml parses Galaxy tool wrapper XML definitions.
package toolxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Wrapper is the subset of a Galaxy tool XML definition the extractor
// cares about.
type Wrapper struct {
	XMLName     xml.Name      `xml:"tool"`
	ID          string        `xml:"id,attr"`
	Name        string        `xml:"name,attr"`
	Version     string        `xml:"version,attr"`
	Description string        `xml:"description"`
	Xrefs       []Xref        `xml:"xrefs>xref"`
	EDAMOps     []string      `xml:"edam_operations>edam_operation"`
	EDAMTopics  []string      `xml:"edam_topics>edam_topic"`
	Requires    []Requirement `xml:"requirements>requirement"`
}

// Xref is a cross-reference to an external registry.
type Xref struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// Requirement is a tool dependency declaration.
type Requirement struct {
	Type    string `xml:"type,attr"`
	Version string `xml:"version,attr"`
	Name    string `xml:",chardata"`
}

// Parse decodes a tool wrapper XML document. Files whose root element
// is not <tool> (macros, datatype definitions) fail with an error the
// caller should treat as "not a tool".
func Parse(data []byte) (*Wrapper, error) {
	var w Wrapper
	if err := xml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("toolxml: parse: %w", err)
	}
	w.Description = strings.TrimSpace(w.Description)
	for i := range w.Xrefs {
		w.Xrefs[i].Value = strings.TrimSpace(w.Xrefs[i].Value)
	}
	for i := range w.EDAMOps {
		w.EDAMOps[i] = strings.TrimSpace(w.EDAMOps[i])
	}
	for i := range w.EDAMTopics {
		w.EDAMTopics[i] = strings.TrimSpace(w.EDAMTopics[i])
	}
	for i := range w.Requires {
		w.Requires[i].Name = strings.TrimSpace(w.Requires[i].Name)
	}
	return &w, nil
}

// BioToolsXref returns the bio.tools cross-reference value, if any.
func (w *Wrapper) BioToolsXref() string {
	for _, x := range w.Xrefs {
		if strings.EqualFold(x.Type, "bio.tools") {
			return x.Value
		}
	}
	return ""
}

// CondaPackage returns the first package-type requirement, the
// conventional conda dependency of the wrapper.
func (w *Wrapper) CondaPackage() (name, version string) {
	for _, r := range w.Requires {
		if r.Type == "package" {
			return r.Name, r.Version
		}
	}
	return "", ""
}

// IsToolFile gives a cheap pre-check for repository walking: candidate
// files must have the .xml extension and not be a macros file.
func IsToolFile(path string) bool {
	lower := strings.ToLower(path)
	if !strings.HasSuffix(lower, ".xml") {
		return false
	}
	base := lower
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return !strings.Contains(base, "macro")
}
