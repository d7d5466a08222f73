package shed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	data := []byte(`name: bwa
owner: iuc
description: Burrows-Wheeler aligner
long_description: |
  Maps low-divergent sequences against a large reference genome.
homepage_url: https://bio-bwa.sourceforge.net
remote_repository_url: https://github.com/galaxyproject/tools-iuc/tree/main/tools/bwa
categories:
  - Sequence Analysis
  - Mapping
`)
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &Config{
		Name:                "bwa",
		Owner:               "iuc",
		Description:         "Burrows-Wheeler aligner",
		LongDescription:     "Maps low-divergent sequences against a large reference genome.\n",
		HomepageURL:         "https://bio-bwa.sourceforge.net",
		RemoteRepositoryURL: "https://github.com/galaxyproject/tools-iuc/tree/main/tools/bwa",
		Categories:          []string{"Sequence Analysis", "Mapping"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("categories: {not a list")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestIsSuite(t *testing.T) {
	tests := []struct {
		typ  string
		want bool
	}{
		{"", true},
		{"unrestricted", true},
		{"repository_suite_definition", false},
		{"tool_dependency_definition", false},
	}
	for _, tt := range tests {
		c := &Config{Type: tt.typ}
		if got := c.IsSuite(); got != tt.want {
			t.Errorf("IsSuite(type=%q) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}
