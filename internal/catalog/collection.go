package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Collection is an ordered set of suites, the unit passed between
// pipeline stages as a JSON file.
type Collection struct {
	Suites []*Suite
}

// Len returns the number of suites.
func (c *Collection) Len() int { return len(c.Suites) }

// Add appends a suite to the collection.
func (c *Collection) Add(s *Suite) { c.Suites = append(c.Suites, s) }

// Get returns the suite with the given id, or nil.
func (c *Collection) Get(id string) *Suite {
	for _, s := range c.Suites {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SortByID orders suites by id for deterministic exports.
func (c *Collection) SortByID() {
	sort.Slice(c.Suites, func(i, j int) bool { return c.Suites[i].ID < c.Suites[j].ID })
}

// Categories returns the sorted union of ToolShed categories across all suites.
func (c *Collection) Categories() []string {
	seen := map[string]bool{}
	for _, s := range c.Suites {
		for _, cat := range s.Categories {
			seen[cat] = true
		}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// ServerNames returns the sorted union of Galaxy server names that have
// installed-tool counts recorded on any suite.
func (c *Collection) ServerNames() []string {
	seen := map[string]bool{}
	for _, s := range c.Suites {
		for name := range s.Installs {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON encodes the collection as a JSON array of suites.
func (c *Collection) MarshalJSON() ([]byte, error) {
	if c.Suites == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Suites)
}

// UnmarshalJSON decodes a JSON array of suites.
func (c *Collection) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.Suites)
}

// SaveJSON writes the collection to path as indented JSON, sorted by
// suite id so repeated runs produce identical files.
func (c *Collection) SaveJSON(path string) error {
	c.SortByID()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: marshal collection: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("catalog: write %q: %w", path, err)
	}
	return nil
}

// LoadJSON reads a collection previously written by SaveJSON.
func LoadJSON(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal %q: %w", path, err)
	}
	return &c, nil
}
