// Package gh provides the minimal GitHub REST v3 surface toolcodex
// needs to walk wrapper repositories: repository metadata, recursive
// trees, file contents and per-path commit history.
package gh

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"toolcodex/internal/webapi"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Client is a GitHub REST client scoped to a single access token.
type Client struct {
	baseURL string
	token   string
	api     *webapi.Client
}

// New creates a Client for the given API base URL and access token.
// An empty baseURL selects the public endpoint.
func New(baseURL, token string, api *webapi.Client) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("gh: webapi client is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		api:     api,
	}, nil
}

func (c *Client) headers() webapi.Headers {
	h := webapi.Headers{"Accept": "application/vnd.github+json"}
	if c.token != "" {
		h["Authorization"] = "token " + c.token
	}
	return h
}

// ParseRepoURL splits a GitHub repository URL into owner and name.
// Trailing slashes and a .git suffix are tolerated.
func ParseRepoURL(rawURL string) (owner, name string, err error) {
	if !strings.HasPrefix(rawURL, "https://github.com/") {
		return "", "", fmt.Errorf("gh: not a GitHub repository URL: %q", rawURL)
	}
	trimmed := strings.TrimSuffix(rawURL, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 5 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("gh: repository URL missing owner or name: %q", rawURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// GetRepository fetches repository metadata, primarily for the default branch.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)
	var repo Repository
	if err := c.api.GetJSON(ctx, u, c.headers(), &repo); err != nil {
		return nil, fmt.Errorf("gh: get repository %s/%s: %w", owner, name, err)
	}
	return &repo, nil
}

// GetTree fetches the full recursive tree of a repository at ref.
func (c *Client) GetTree(ctx context.Context, owner, name, ref string) (*Tree, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1", c.baseURL, owner, name, url.PathEscape(ref))
	var tree Tree
	if err := c.api.GetJSON(ctx, u, c.headers(), &tree); err != nil {
		return nil, fmt.Errorf("gh: get tree %s/%s@%s: %w", owner, name, ref, err)
	}
	return &tree, nil
}

// GetFileContent fetches and decodes a file from the repository at ref.
func (c *Client) GetFileContent(ctx context.Context, owner, name, path, ref string) ([]byte, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, owner, name, escapePath(path))
	if ref != "" {
		u += "?ref=" + url.QueryEscape(ref)
	}
	var cf ContentFile
	if err := c.api.GetJSON(ctx, u, c.headers(), &cf); err != nil {
		return nil, fmt.Errorf("gh: get content %s/%s:%s: %w", owner, name, path, err)
	}
	if cf.Encoding != "base64" {
		return nil, fmt.Errorf("gh: get content %s/%s:%s: unexpected encoding %q", owner, name, path, cf.Encoding)
	}
	// GitHub inserts newlines into the base64 payload.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(cf.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("gh: decode content %s/%s:%s: %w", owner, name, path, err)
	}
	return decoded, nil
}

// ListDirectory fetches a directory listing from the contents API.
func (c *Client) ListDirectory(ctx context.Context, owner, name, path, ref string) ([]ContentFile, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, owner, name, escapePath(path))
	if ref != "" {
		u += "?ref=" + url.QueryEscape(ref)
	}
	var entries []ContentFile
	if err := c.api.GetJSON(ctx, u, c.headers(), &entries); err != nil {
		return nil, fmt.Errorf("gh: list directory %s/%s:%s: %w", owner, name, path, err)
	}
	return entries, nil
}

// FirstCommitDate returns the date (YYYY-MM-DD) of the oldest commit
// touching path. The commits API lists newest first, so the date comes
// from the last commit of the last page.
func (c *Client) FirstCommitDate(ctx context.Context, owner, name, path string) (string, error) {
	const perPage = 100
	var last *Commit
	for page := 1; ; page++ {
		u := fmt.Sprintf("%s/repos/%s/%s/commits?path=%s&per_page=%d&page=%d",
			c.baseURL, owner, name, url.QueryEscape(path), perPage, page)
		var commits []Commit
		if err := c.api.GetJSON(ctx, u, c.headers(), &commits); err != nil {
			return "", fmt.Errorf("gh: list commits %s/%s:%s: %w", owner, name, path, err)
		}
		if len(commits) > 0 {
			last = &commits[len(commits)-1]
		}
		if len(commits) < perPage {
			break
		}
	}
	if last == nil {
		return "", fmt.Errorf("gh: no commits found for %s/%s:%s", owner, name, path)
	}
	return last.Commit.Author.Date.Format("2006-01-02"), nil
}

// escapePath escapes each path segment while keeping the separators.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
