// Package galaxy checks which extracted tools are installed on public
// Galaxy servers via their /api/tools endpoint.
package galaxy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"toolcodex/internal/catalog"
	"toolcodex/internal/webapi"
)

// DefaultServers are the public usegalaxy.* instances checked by the
// extractor, keyed by display name.
var DefaultServers = map[string]string{
	"UseGalaxy.org (Main)": "https://usegalaxy.org",
	"UseGalaxy.org.au":     "https://usegalaxy.org.au",
	"UseGalaxy.eu":         "https://usegalaxy.eu",
	"UseGalaxy.fr":         "https://usegalaxy.fr",
}

// Client fetches installed-tool listings. The listing for each server
// is fetched once per process and memoized; the pipeline is sequential
// so a plain map suffices.
type Client struct {
	api    *webapi.Client
	logger *slog.Logger

	installed map[string]map[string]bool // server URL -> set of short tool ids
}

// New creates a Client. A nil logger discards log output.
func New(api *webapi.Client, logger *slog.Logger) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("galaxy: webapi client is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		api:       api,
		logger:    logger,
		installed: map[string]map[string]bool{},
	}, nil
}

// toolListing is one entry of the /api/tools response.
type toolListing struct {
	ID string `json:"id"`
}

// InstalledToolIDs returns the set of shortened installed tool ids on a
// server. An unreachable server is non-fatal: the failure is logged,
// an empty set is memoized and every membership check reports absent.
func (c *Client) InstalledToolIDs(ctx context.Context, serverURL string) map[string]bool {
	serverURL = strings.TrimSuffix(serverURL, "/")
	if ids, ok := c.installed[serverURL]; ok {
		return ids
	}

	ids := map[string]bool{}
	var listing []toolListing
	u := serverURL + "/api/tools?in_panel=False"
	if err := c.api.GetJSON(ctx, u, nil, &listing); err != nil {
		c.logger.WarnContext(ctx, "could not query server tools, all tools reported as not installed",
			"server", serverURL, "error", err)
	} else {
		for _, tl := range listing {
			ids[catalog.ShortToolID(tl.ID)] = true
		}
	}
	c.installed[serverURL] = ids
	return ids
}

// CountInstalled reports how many of the given short tool ids are
// installed on the server.
func (c *Client) CountInstalled(ctx context.Context, serverURL string, shortIDs []string) int {
	installed := c.InstalledToolIDs(ctx, serverURL)
	count := 0
	for _, id := range shortIDs {
		if installed[id] {
			count++
		}
	}
	return count
}
