// Package edam loads the EDAM ontology from its tabular CSV release
// and reduces annotation term sets to their most specific members.
package edam

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultCSVURL is the tabular release of the EDAM ontology.
const DefaultCSVURL = "https://edamontology.org/EDAM.csv"

type class struct {
	iri     string
	label   string
	parents []string
}

// Ontology is an in-memory view of EDAM class labels and their direct
// superclass links.
type Ontology struct {
	byLabel map[string]*class
}

// Len returns the number of known classes.
func (o *Ontology) Len() int { return len(o.byLabel) }

// Load parses the EDAM tabular CSV from r. The file carries one row per
// class with its IRI, preferred label and pipe-separated parent IRIs.
// Obsolete classes are skipped.
func Load(r io.Reader) (*Ontology, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("edam: read CSV header: %w", err)
	}
	idCol, labelCol, parentsCol, obsoleteCol := -1, -1, -1, -1
	for i, h := range header {
		switch h {
		case "Class ID":
			idCol = i
		case "Preferred Label":
			labelCol = i
		case "Parents":
			parentsCol = i
		case "Obsolete":
			obsoleteCol = i
		}
	}
	if idCol < 0 || labelCol < 0 || parentsCol < 0 {
		return nil, fmt.Errorf("edam: CSV header missing Class ID/Preferred Label/Parents columns")
	}

	o := &Ontology{byLabel: map[string]*class{}}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edam: read CSV row: %w", err)
		}
		if idCol >= len(row) || labelCol >= len(row) || parentsCol >= len(row) {
			continue
		}
		if obsoleteCol >= 0 && obsoleteCol < len(row) && strings.EqualFold(row[obsoleteCol], "true") {
			continue
		}
		c := &class{iri: row[idCol], label: row[labelCol]}
		for _, p := range strings.Split(row[parentsCol], "|") {
			if p = strings.TrimSpace(p); p != "" {
				c.parents = append(c.parents, p)
			}
		}
		if c.label != "" {
			o.byLabel[c.label] = c
		}
	}
	return o, nil
}

// LoadFile loads the ontology from a local CSV file.
func LoadFile(path string) (*Ontology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edam: open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Fetch downloads and parses the ontology CSV from url using the given
// HTTP client. A nil client uses http.DefaultClient.
func Fetch(ctx context.Context, httpClient *http.Client, url string) (*Ontology, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("edam: create request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("edam: fetch ontology: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("edam: fetch ontology: HTTP %d", resp.StatusCode)
	}
	return Load(resp.Body)
}

// Reduce drops every term that has another term of the set as a direct
// subclass, keeping only the most specific annotations. Labels unknown
// to the ontology are dropped. A nil ontology or empty set passes
// through unchanged.
func (o *Ontology) Reduce(terms []string) []string {
	if o == nil || len(terms) == 0 {
		return terms
	}

	var found []*class
	seen := map[string]bool{}
	for _, t := range terms {
		c, ok := o.byLabel[t]
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		found = append(found, c)
	}

	reduced := []string{}
	for _, c := range found {
		hasSubclassInSet := false
		for _, other := range found {
			if other == c {
				continue
			}
			for _, p := range other.parents {
				if p == c.iri {
					hasSubclassInSet = true
				}
			}
		}
		if !hasSubclassInSet {
			reduced = append(reduced, c.label)
		}
	}
	return reduced
}
