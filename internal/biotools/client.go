// Package biotools is a read-only client for the bio.tools registry API.
package biotools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"toolcodex/internal/webapi"
)

// DefaultBaseURL is the public bio.tools registry.
const DefaultBaseURL = "https://bio.tools"

// Client queries bio.tools entries.
type Client struct {
	baseURL string
	api     *webapi.Client
}

// New creates a Client. An empty baseURL selects the public registry.
func New(baseURL string, api *webapi.Client) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("biotools: webapi client is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), api: api}, nil
}

// Term is an EDAM-annotated concept attached to an entry.
type Term struct {
	URI  string `json:"uri"`
	Term string `json:"term"`
}

// Function is one declared capability of a registered tool.
type Function struct {
	Operations []Term `json:"operation"`
}

// Entry is the subset of a bio.tools record the extractor consumes.
type Entry struct {
	ID          string     `json:"biotoolsID"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Homepage    string     `json:"homepage"`
	Functions   []Function `json:"function"`
	Topics      []Term     `json:"topic"`
}

// OperationTerms returns the deduplicated EDAM operation labels across
// all declared functions, in first-seen order.
func (e *Entry) OperationTerms() []string {
	var terms []string
	seen := map[string]bool{}
	for _, f := range e.Functions {
		for _, op := range f.Operations {
			if op.Term != "" && !seen[op.Term] {
				seen[op.Term] = true
				terms = append(terms, op.Term)
			}
		}
	}
	return terms
}

// TopicTerms returns the deduplicated EDAM topic labels, in first-seen order.
func (e *Entry) TopicTerms() []string {
	var terms []string
	seen := map[string]bool{}
	for _, t := range e.Topics {
		if t.Term != "" && !seen[t.Term] {
			seen[t.Term] = true
			terms = append(terms, t.Term)
		}
	}
	return terms
}

// GetTool fetches a registry entry by its bio.tools id.
func (c *Client) GetTool(ctx context.Context, id string) (*Entry, error) {
	u := fmt.Sprintf("%s/api/tool/%s?format=json", c.baseURL, url.PathEscape(id))
	var e Entry
	if err := c.api.GetJSON(ctx, u, nil, &e); err != nil {
		return nil, fmt.Errorf("biotools: get tool %q: %w", id, err)
	}
	return &e, nil
}

// searchResult is the paginated search response.
type searchResult struct {
	Count int     `json:"count"`
	List  []Entry `json:"list"`
}

// SearchExact searches the registry for an entry whose name matches the
// query case-insensitively. Returns nil (no error) when nothing matches.
func (c *Client) SearchExact(ctx context.Context, name string) (*Entry, error) {
	u := fmt.Sprintf("%s/api/t/?q=%s&format=json", c.baseURL, url.QueryEscape(name))
	var res searchResult
	if err := c.api.GetJSON(ctx, u, nil, &res); err != nil {
		return nil, fmt.Errorf("biotools: search %q: %w", name, err)
	}
	for i := range res.List {
		if strings.EqualFold(res.List[i].Name, name) || strings.EqualFold(res.List[i].ID, name) {
			return &res.List[i], nil
		}
	}
	return nil, nil
}
