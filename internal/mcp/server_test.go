package mcp

import (
	"context"
	"testing"

	"toolcodex/internal/catalog"
)

func testCatalog() *catalog.Collection {
	bwa := catalog.NewSuite("bwa")
	bwa.Description = "Burrows-Wheeler aligner"
	bwa.Categories = []string{"Sequence Analysis", "Mapping"}
	bwa.BioToolsID = "bwa"
	bwa.BioToolsName = "BWA"
	bwa.Tools = []catalog.Tool{{ID: "bwa_mem", ShortID: "bwa_mem", Version: "0.7.17"}}

	abricate := catalog.NewSuite("abricate")
	abricate.Description = "Mass screening of contigs for antimicrobial genes"
	abricate.Categories = []string{"Sequence Analysis"}

	c := &catalog.Collection{}
	c.Add(bwa)
	c.Add(abricate)
	return c
}

func TestSearchSuites(t *testing.T) {
	s := NewServer(testCatalog(), "test")

	_, out, err := s.handleSearchSuites(context.Background(), nil, searchSuitesInput{Query: "aligner"})
	if err != nil {
		t.Fatalf("search_suites: %v", err)
	}
	if out.Total != 1 || len(out.Suites) != 1 || out.Suites[0].ID != "bwa" {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestSearchSuites_ByToolID(t *testing.T) {
	s := NewServer(testCatalog(), "test")

	_, out, err := s.handleSearchSuites(context.Background(), nil, searchSuitesInput{Query: "bwa_mem"})
	if err != nil {
		t.Fatalf("search_suites: %v", err)
	}
	if out.Total != 1 || out.Suites[0].ID != "bwa" {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestSearchSuites_CategoryRestriction(t *testing.T) {
	s := NewServer(testCatalog(), "test")

	_, out, err := s.handleSearchSuites(context.Background(), nil, searchSuitesInput{Category: "Mapping"})
	if err != nil {
		t.Fatalf("search_suites: %v", err)
	}
	if out.Total != 1 || out.Suites[0].ID != "bwa" {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestSearchSuites_Limit(t *testing.T) {
	s := NewServer(testCatalog(), "test")

	_, out, err := s.handleSearchSuites(context.Background(), nil, searchSuitesInput{Limit: 1})
	if err != nil {
		t.Fatalf("search_suites: %v", err)
	}
	if out.Total != 2 || len(out.Suites) != 1 {
		t.Errorf("expected total=2 with 1 returned, got %+v", out)
	}
}

func TestGetSuite(t *testing.T) {
	s := NewServer(testCatalog(), "test")

	_, out, err := s.handleGetSuite(context.Background(), nil, getSuiteInput{ID: "abricate"})
	if err != nil {
		t.Fatalf("get_suite: %v", err)
	}
	if out.Suite == nil || out.Suite.ID != "abricate" {
		t.Errorf("unexpected suite: %+v", out.Suite)
	}

	if _, _, err := s.handleGetSuite(context.Background(), nil, getSuiteInput{ID: "nope"}); err == nil {
		t.Error("expected error for unknown suite id")
	}
}

func TestListCategories(t *testing.T) {
	s := NewServer(testCatalog(), "test")

	_, out, err := s.handleListCategories(context.Background(), nil, listCategoriesInput{})
	if err != nil {
		t.Fatalf("list_categories: %v", err)
	}
	want := []categoryCount{
		{Category: "Mapping", Suites: 1},
		{Category: "Sequence Analysis", Suites: 2},
	}
	if len(out.Categories) != len(want) {
		t.Fatalf("categories: %+v", out.Categories)
	}
	for i := range want {
		if out.Categories[i] != want[i] {
			t.Errorf("category %d: got %+v, want %+v", i, out.Categories[i], want[i])
		}
	}
}
