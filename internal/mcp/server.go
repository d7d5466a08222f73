// Package mcp exposes an extracted tool catalog over the Model Context
// Protocol, so editors and agents can query suites without re-running
// the pipeline.
package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"toolcodex/internal/catalog"
)

// DefaultSearchLimit bounds search_suites results when the caller does
// not pass a limit.
const DefaultSearchLimit = 25

// Server wraps the MCP SDK server around a read-only catalog snapshot.
type Server struct {
	MCPServer  *sdkmcp.Server
	collection *catalog.Collection
}

// NewServer creates an MCP server with catalog query tools over the
// given collection.
func NewServer(c *catalog.Collection, version string) *Server {
	if version == "" {
		version = "dev"
	}
	s := &Server{collection: c}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "toolcodex", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "search_suites",
		Description: "Search extracted tool suites by free text over id, description and bio.tools name, optionally restricted to one ToolShed category.",
	}, s.handleSearchSuites)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_suite",
		Description: "Get the full record of one tool suite by its id.",
	}, s.handleGetSuite)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_categories",
		Description: "List all ToolShed categories present in the catalog with suite counts.",
	}, s.handleListCategories)
}

// --- Tool input/output types ---

type searchSuitesInput struct {
	Query    string `json:"query" jsonschema:"free text matched against suite id, description and bio.tools name"`
	Category string `json:"category,omitempty" jsonschema:"restrict results to this ToolShed category"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 25)"`
}

type suiteSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	BioTools    string `json:"biotools_id,omitempty"`
	ToolCount   int    `json:"tool_count"`
}

type searchSuitesOutput struct {
	Suites []suiteSummary `json:"suites"`
	Total  int            `json:"total"`
}

type getSuiteInput struct {
	ID string `json:"id" jsonschema:"suite id as listed by search_suites"`
}

type getSuiteOutput struct {
	Suite *catalog.Suite `json:"suite"`
}

type listCategoriesInput struct{}

type categoryCount struct {
	Category string `json:"category"`
	Suites   int    `json:"suites"`
}

type listCategoriesOutput struct {
	Categories []categoryCount `json:"categories"`
}

// --- Tool handlers ---

func (s *Server) handleSearchSuites(_ context.Context, _ *sdkmcp.CallToolRequest, input searchSuitesInput) (*sdkmcp.CallToolResult, searchSuitesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	query := strings.ToLower(strings.TrimSpace(input.Query))

	var matches []suiteSummary
	total := 0
	for _, suite := range s.collection.Suites {
		if input.Category != "" && !suite.HasCategory([]string{input.Category}) {
			continue
		}
		if query != "" && !suiteMatches(suite, query) {
			continue
		}
		total++
		if len(matches) < limit {
			matches = append(matches, suiteSummary{
				ID:          suite.ID,
				Description: suite.Description,
				BioTools:    suite.BioToolsID,
				ToolCount:   len(suite.Tools),
			})
		}
	}
	return nil, searchSuitesOutput{Suites: matches, Total: total}, nil
}

func (s *Server) handleGetSuite(_ context.Context, _ *sdkmcp.CallToolRequest, input getSuiteInput) (*sdkmcp.CallToolResult, getSuiteOutput, error) {
	suite := s.collection.Get(input.ID)
	if suite == nil {
		return nil, getSuiteOutput{}, fmt.Errorf("suite %q not found in catalog", input.ID)
	}
	return nil, getSuiteOutput{Suite: suite}, nil
}

func (s *Server) handleListCategories(_ context.Context, _ *sdkmcp.CallToolRequest, _ listCategoriesInput) (*sdkmcp.CallToolResult, listCategoriesOutput, error) {
	counts := map[string]int{}
	for _, suite := range s.collection.Suites {
		for _, c := range suite.Categories {
			counts[c]++
		}
	}
	out := listCategoriesOutput{Categories: []categoryCount{}}
	for c, n := range counts {
		out.Categories = append(out.Categories, categoryCount{Category: c, Suites: n})
	}
	sort.Slice(out.Categories, func(i, j int) bool {
		return out.Categories[i].Category < out.Categories[j].Category
	})
	return nil, out, nil
}

func suiteMatches(s *catalog.Suite, query string) bool {
	if strings.Contains(strings.ToLower(s.ID), query) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description), query) {
		return true
	}
	if strings.Contains(strings.ToLower(s.BioToolsName), query) {
		return true
	}
	for _, t := range s.Tools {
		if strings.Contains(strings.ToLower(t.ShortID), query) {
			return true
		}
	}
	return false
}
