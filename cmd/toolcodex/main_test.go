package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toolcodex/internal/catalog"
)

func writeTestCatalog(t *testing.T, path string) {
	t.Helper()

	bwa := catalog.NewSuite("bwa")
	bwa.Owner = "devteam"
	bwa.Description = "Burrows-Wheeler aligner"
	bwa.Categories = []string{"Mapping"}
	bwa.BioToolsID = "bwa"
	bwa.BioToolsName = "BWA"
	bwa.Tools = []catalog.Tool{{ID: "bwa_mem", ShortID: "bwa_mem", Version: "0.7.17"}}

	abricate := catalog.NewSuite("abricate")
	abricate.Owner = "iuc"
	abricate.Description = "Mass screening of contigs"
	abricate.Categories = []string{"Sequence Analysis"}

	excluded := catalog.NewSuite("excluded")
	excluded.Categories = []string{"Visualization"}

	c := &catalog.Collection{}
	c.Add(bwa)
	c.Add(abricate)
	c.Add(excluded)
	if err := c.SaveJSON(path); err != nil {
		t.Fatal(err)
	}
}

func TestFilterThenCurate(t *testing.T) {
	dir := t.TempDir()
	allPath := filepath.Join(dir, "all.json")
	writeTestCatalog(t, allPath)

	categoriesPath := filepath.Join(dir, "categories")
	if err := os.WriteFile(categoriesPath, []byte("Mapping\nSequence Analysis\n"), 0644); err != nil {
		t.Fatal(err)
	}
	statusPath := filepath.Join(dir, "status.tsv")
	status := "Suite ID\tTo keep\tDeprecated\nabricate\tTrue\tTrue\n"
	if err := os.WriteFile(statusPath, []byte(status), 0644); err != nil {
		t.Fatal(err)
	}

	filteredPath := filepath.Join(dir, "filtered.json")
	filterFlags.allPath = allPath
	filterFlags.categoriesPath = categoriesPath
	filterFlags.filteredPath = filteredPath
	filterFlags.tsvPath = filepath.Join(dir, "filtered.tsv")
	filterFlags.statusPath = statusPath

	var out bytes.Buffer
	filterCmd.SetOut(&out)
	if err := runFilter(filterCmd, nil); err != nil {
		t.Fatalf("filter: %v", err)
	}

	filtered, err := catalog.LoadJSON(filteredPath)
	if err != nil {
		t.Fatal(err)
	}
	if filtered.Len() != 2 {
		t.Fatalf("expected 2 filtered suites, got %d", filtered.Len())
	}
	if filtered.Get("excluded") != nil {
		t.Error("suite outside the allow-list survived filtering")
	}
	tsv, err := os.ReadFile(filterFlags.tsvPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(tsv), "Suite ID\tDescription\tTo keep\tDeprecated") {
		t.Errorf("unexpected filtered TSV header: %q", strings.SplitN(string(tsv), "\n", 2)[0])
	}

	curateFlags.filteredPath = filteredPath
	curateFlags.curatedPath = filepath.Join(dir, "curated.tsv")
	curateFlags.woBioToolsPath = filepath.Join(dir, "wo_biotools.tsv")
	curateFlags.wBioToolsPath = filepath.Join(dir, "w_biotools.tsv")
	curateFlags.statusPath = statusPath

	curateCmd.SetOut(&out)
	if err := runCurate(curateCmd, nil); err != nil {
		t.Fatalf("curate: %v", err)
	}

	wo, err := os.ReadFile(curateFlags.woBioToolsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(wo), "abricate") || strings.Contains(string(wo), "bwa") {
		t.Errorf("wo-biotools worksheet wrong:\n%s", wo)
	}
	w, err := os.ReadFile(curateFlags.wBioToolsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(w), "bwa") || strings.Contains(string(w), "abricate") {
		t.Errorf("w-biotools worksheet wrong:\n%s", w)
	}
	if !strings.HasPrefix(string(w), "Suite ID\tbio.tool name\tEDAM operations\tEDAM topics") {
		t.Errorf("unexpected w-biotools header: %q", strings.SplitN(string(w), "\n", 2)[0])
	}
	if _, err := os.Stat(curateFlags.curatedPath); err != nil {
		t.Fatalf("curated worksheet not created: %v", err)
	}
}

func TestFilter_NothingLeft(t *testing.T) {
	dir := t.TempDir()
	allPath := filepath.Join(dir, "all.json")
	writeTestCatalog(t, allPath)

	categoriesPath := filepath.Join(dir, "categories")
	if err := os.WriteFile(categoriesPath, []byte("Proteomics\n"), 0644); err != nil {
		t.Fatal(err)
	}

	filteredPath := filepath.Join(dir, "filtered.json")
	filterFlags.allPath = allPath
	filterFlags.categoriesPath = categoriesPath
	filterFlags.filteredPath = filteredPath
	filterFlags.tsvPath = filepath.Join(dir, "filtered.tsv")
	filterFlags.statusPath = ""

	var out bytes.Buffer
	filterCmd.SetOut(&out)
	if err := runFilter(filterCmd, nil); err != nil {
		t.Fatalf("filter: %v", err)
	}
	if !strings.Contains(out.String(), "No suites left") {
		t.Errorf("expected empty-result notice, got:\n%s", out.String())
	}
	if _, err := os.Stat(filteredPath); !os.IsNotExist(err) {
		t.Error("filtered JSON should not be written when nothing survives")
	}
}

func TestCommandWiring(t *testing.T) {
	for _, name := range []string{"extract", "filter", "curate", "serve"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered: %v", name, err)
		}
	}

	for flag, shorthand := range map[string]string{
		"api":     "a",
		"all":     "o",
		"all-tsv": "j",
		"test":    "t",
	} {
		f := extractCmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("extract flag %q not registered", flag)
			continue
		}
		if f.Shorthand != shorthand {
			t.Errorf("extract flag %q shorthand = %q, want %q", flag, f.Shorthand, shorthand)
		}
	}
}
