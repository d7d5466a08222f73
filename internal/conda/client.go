// Package conda looks up package metadata on anaconda.org.
package conda

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"toolcodex/internal/webapi"
)

// DefaultBaseURL is the public anaconda.org API.
const DefaultBaseURL = "https://api.anaconda.org"

// DefaultChannel is where Galaxy tool dependencies are published.
const DefaultChannel = "bioconda"

// Client queries anaconda.org package metadata for one channel.
type Client struct {
	baseURL string
	channel string
	api     *webapi.Client
}

// New creates a Client. Empty baseURL and channel select the public
// API and the bioconda channel.
func New(baseURL, channel string, api *webapi.Client) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("conda: webapi client is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		channel: channel,
		api:     api,
	}, nil
}

// Package is the subset of anaconda.org package metadata in use.
type Package struct {
	Name          string `json:"name"`
	LatestVersion string `json:"latest_version"`
	Summary       string `json:"summary"`
}

// GetPackage fetches channel package metadata by name.
func (c *Client) GetPackage(ctx context.Context, name string) (*Package, error) {
	u := fmt.Sprintf("%s/package/%s/%s", c.baseURL, url.PathEscape(c.channel), url.PathEscape(name))
	var p Package
	if err := c.api.GetJSON(ctx, u, nil, &p); err != nil {
		return nil, fmt.Errorf("conda: get package %s/%s: %w", c.channel, name, err)
	}
	return &p, nil
}

// LatestVersion returns the latest published version of a package, or
// "" (no error) when the package is not in the channel.
func (c *Client) LatestVersion(ctx context.Context, name string) (string, error) {
	p, err := c.GetPackage(ctx, name)
	if err != nil {
		if webapi.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return p.LatestVersion, nil
}
