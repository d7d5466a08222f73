// Package extract orchestrates the toolcodex pipeline's extraction
// stage: repository discovery, suite building from wrapper files, and
// enrichment against bio.tools, conda and running Galaxy servers.
package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"

	"toolcodex/internal/biotools"
	"toolcodex/internal/catalog"
	"toolcodex/internal/conda"
	"toolcodex/internal/edam"
	"toolcodex/internal/galaxy"
	"toolcodex/internal/gh"
	"toolcodex/internal/shed"
	"toolcodex/internal/toolxml"
	"toolcodex/internal/webapi"
)

// TestRepository is the single repository scanned in --test mode.
const TestRepository = "https://github.com/TGAC/earlham-galaxytools"

// Monitor repository carrying the curated repository lists.
const (
	MonitorOwner      = "galaxyproject"
	MonitorRepository = "planemo-monitor"
	monitorListPrefix = "repositories"
)

// Options controls one extraction run.
type Options struct {
	// RepositoryList names a single list file in planemo-monitor;
	// empty means every repositories*.list file.
	RepositoryList string
	// AvoidExtraRepositories skips the conf file's extra repositories.
	AvoidExtraRepositories bool
	// Test restricts the run to TestRepository.
	Test bool
	// ExtraRepositories come from the conf file.
	ExtraRepositories []string
}

// Extractor wires the per-registry clients into the extraction stage.
type Extractor struct {
	GitHub   *gh.Client
	BioTools *biotools.Client
	Conda    *conda.Client
	Galaxy   *galaxy.Client
	Ontology *edam.Ontology
	Servers  map[string]string
	Logger   *slog.Logger
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DiscoverRepositories resolves the repository URLs to scan: the
// planemo-monitor lists (or a single named list), plus configured
// extras. Test mode short-circuits to the well-known test repository.
func (e *Extractor) DiscoverRepositories(ctx context.Context, opts Options) ([]string, error) {
	if opts.Test {
		return []string{TestRepository}, nil
	}

	repo, err := e.GitHub.GetRepository(ctx, MonitorOwner, MonitorRepository)
	if err != nil {
		return nil, fmt.Errorf("resolve %s/%s: %w", MonitorOwner, MonitorRepository, err)
	}

	entries, err := e.GitHub.ListDirectory(ctx, MonitorOwner, MonitorRepository, "", repo.DefaultBranch)
	if err != nil {
		return nil, fmt.Errorf("list %s/%s: %w", MonitorOwner, MonitorRepository, err)
	}

	var repos []string
	seen := map[string]bool{}
	add := func(url string) {
		url = strings.TrimSpace(url)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		repos = append(repos, url)
	}

	for _, entry := range entries {
		if entry.Type != "file" || !strings.HasPrefix(entry.Name, monitorListPrefix) {
			continue
		}
		if opts.RepositoryList != "" && entry.Name != opts.RepositoryList {
			continue
		}
		data, err := e.GitHub.GetFileContent(ctx, MonitorOwner, MonitorRepository, entry.Path, repo.DefaultBranch)
		if err != nil {
			e.logger().WarnContext(ctx, "skipping repository list", "list", entry.Name, "error", err)
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			add(line)
		}
	}

	if !opts.AvoidExtraRepositories {
		for _, url := range opts.ExtraRepositories {
			add(url)
		}
	}
	return repos, nil
}

// Run performs a full extraction: discovery, per-repository suite
// building, registry enrichment and install counting. Per-repository
// failures are logged and skipped, never fatal for the run.
func (e *Extractor) Run(ctx context.Context, opts Options) (*catalog.Collection, error) {
	repos, err := e.DiscoverRepositories(ctx, opts)
	if err != nil {
		return nil, err
	}
	e.logger().InfoContext(ctx, "repositories discovered", "count", len(repos))

	out := &catalog.Collection{}
	for _, repoURL := range repos {
		suites, err := e.ProcessRepository(ctx, repoURL)
		if err != nil {
			e.logger().WarnContext(ctx, "skipping repository", "repository", repoURL, "error", err)
			continue
		}
		for _, s := range suites {
			e.Enrich(ctx, s)
			e.CountInstalls(ctx, s)
			out.Add(s)
			e.logger().InfoContext(ctx, "suite extracted",
				"suite", s.ID, "tools", len(s.Tools), "repository", repoURL)
		}
	}
	out.SortByID()
	return out, nil
}

// ProcessRepository walks one repository tree and builds a suite for
// every directory holding a .shed.yml descriptor. Per-suite failures
// are logged and skipped.
func (e *Extractor) ProcessRepository(ctx context.Context, repoURL string) ([]*catalog.Suite, error) {
	owner, name, err := gh.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	repo, err := e.GitHub.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	tree, err := e.GitHub.GetTree(ctx, owner, name, repo.DefaultBranch)
	if err != nil {
		return nil, err
	}
	if tree.Truncated {
		e.logger().WarnContext(ctx, "tree listing truncated, some suites may be missed",
			"repository", repoURL)
	}

	var suites []*catalog.Suite
	for _, entry := range tree.Entries {
		if !entry.IsBlob() || path.Base(entry.Path) != shed.FileName {
			continue
		}
		dir := path.Dir(entry.Path)
		s, err := e.buildSuite(ctx, owner, name, repo.DefaultBranch, dir, tree)
		if err != nil {
			e.logger().WarnContext(ctx, "skipping suite",
				"repository", repoURL, "dir", dir, "error", err)
			continue
		}
		if s != nil {
			suites = append(suites, s)
		}
	}
	return suites, nil
}

// buildSuite assembles a Suite from one .shed.yml directory. Returns
// (nil, nil) for descriptors that do not declare a tool suite.
func (e *Extractor) buildSuite(ctx context.Context, owner, repo, branch, dir string, tree *gh.Tree) (*catalog.Suite, error) {
	shedPath := path.Join(dir, shed.FileName)
	data, err := e.GitHub.GetFileContent(ctx, owner, repo, shedPath, branch)
	if err != nil {
		return nil, err
	}
	cfg, err := shed.Parse(data)
	if err != nil {
		return nil, err
	}
	if !cfg.IsSuite() {
		return nil, nil
	}

	id := cfg.Name
	if id == "" {
		id = path.Base(dir)
	}
	s := catalog.NewSuite(id)
	s.Owner = cfg.Owner
	s.Description = strings.TrimSpace(cfg.Description)
	if s.Description == "" {
		s.Description = strings.TrimSpace(cfg.LongDescription)
	}
	s.Homepage = cfg.HomepageURL
	s.Source = cfg.RemoteRepositoryURL
	if s.Source == "" {
		s.Source = fmt.Sprintf("https://github.com/%s/%s/tree/%s/%s", owner, repo, branch, dir)
	}
	if len(cfg.Categories) > 0 {
		s.Categories = cfg.Categories
	}

	if date, err := e.GitHub.FirstCommitDate(ctx, owner, repo, dir); err != nil {
		e.logger().WarnContext(ctx, "first commit date unavailable", "dir", dir, "error", err)
	} else {
		s.FirstCommit = date
	}

	ops := map[string]bool{}
	topics := map[string]bool{}
	prefix := dir + "/"
	for _, entry := range tree.Entries {
		if !entry.IsBlob() || !strings.HasPrefix(entry.Path, prefix) || !toolxml.IsToolFile(entry.Path) {
			continue
		}
		data, err := e.GitHub.GetFileContent(ctx, owner, repo, entry.Path, branch)
		if err != nil {
			e.logger().WarnContext(ctx, "skipping wrapper file", "path", entry.Path, "error", err)
			continue
		}
		w, err := toolxml.Parse(data)
		if err != nil {
			// Non-tool XML (datatypes, build files) is expected in suite dirs.
			e.logger().DebugContext(ctx, "not a tool wrapper", "path", entry.Path, "error", err)
			continue
		}
		if w.ID == "" {
			continue
		}
		s.Tools = append(s.Tools, catalog.Tool{
			ID:      w.ID,
			ShortID: catalog.ShortToolID(w.ID),
			Version: w.Version,
		})
		for _, op := range w.EDAMOps {
			ops[op] = true
		}
		for _, tp := range w.EDAMTopics {
			topics[tp] = true
		}
		if s.BioToolsID == "" {
			s.BioToolsID = w.BioToolsXref()
		}
		if s.CondaID == "" {
			name, version := w.CondaPackage()
			s.CondaID = name
			s.CondaVersion = version
		}
	}
	if len(s.Tools) == 0 {
		return nil, fmt.Errorf("no tool wrappers under %s", dir)
	}
	sort.Slice(s.Tools, func(i, j int) bool { return s.Tools[i].ID < s.Tools[j].ID })
	s.EDAMOperations = sortedKeys(ops)
	s.EDAMTopics = sortedKeys(topics)
	return s, nil
}

// Enrich resolves the bio.tools linkage and conda version for a suite.
// Lookup failures degrade to empty fields and log a warning.
func (e *Extractor) Enrich(ctx context.Context, s *catalog.Suite) {
	if e.BioTools != nil {
		if s.BioToolsID == "" {
			entry, err := e.BioTools.SearchExact(ctx, s.ID)
			if err != nil {
				e.logger().WarnContext(ctx, "bio.tools search failed", "suite", s.ID, "error", err)
			} else if entry != nil {
				s.BioToolsID = entry.ID
			}
		}
		if s.BioToolsID != "" {
			entry, err := e.BioTools.GetTool(ctx, s.BioToolsID)
			switch {
			case webapi.IsNotFound(err):
				e.logger().WarnContext(ctx, "bio.tools id not in registry",
					"suite", s.ID, "biotools_id", s.BioToolsID)
			case err != nil:
				e.logger().WarnContext(ctx, "bio.tools lookup failed", "suite", s.ID, "error", err)
			default:
				s.BioToolsName = entry.Name
				s.BioToolsDescription = entry.Description
				s.EDAMOperations = mergeTerms(s.EDAMOperations, entry.OperationTerms())
				s.EDAMTopics = mergeTerms(s.EDAMTopics, entry.TopicTerms())
			}
		}
	}

	s.EDAMOperations = e.Ontology.Reduce(s.EDAMOperations)
	s.EDAMTopics = e.Ontology.Reduce(s.EDAMTopics)

	if e.Conda != nil && s.CondaID != "" {
		version, err := e.Conda.LatestVersion(ctx, s.CondaID)
		if err != nil {
			e.logger().WarnContext(ctx, "conda lookup failed",
				"suite", s.ID, "package", s.CondaID, "error", err)
		} else if version != "" {
			s.CondaVersion = version
		}
	}
}

// CountInstalls records per-server installed-tool counts on the suite.
func (e *Extractor) CountInstalls(ctx context.Context, s *catalog.Suite) {
	if e.Galaxy == nil {
		return
	}
	servers := e.Servers
	if servers == nil {
		servers = galaxy.DefaultServers
	}
	for name, url := range servers {
		s.Installs[name] = e.Galaxy.CountInstalled(ctx, url, s.ToolIDs())
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mergeTerms(have, extra []string) []string {
	seen := map[string]bool{}
	for _, t := range have {
		seen[t] = true
	}
	for _, t := range extra {
		if !seen[t] {
			seen[t] = true
			have = append(have, t)
		}
	}
	sort.Strings(have)
	return have
}
