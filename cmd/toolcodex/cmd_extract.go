package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"toolcodex/internal/biotools"
	"toolcodex/internal/conda"
	"toolcodex/internal/edam"
	"toolcodex/internal/extract"
	"toolcodex/internal/galaxy"
	"toolcodex/internal/gh"
	"toolcodex/internal/logging"
	"toolcodex/internal/webapi"
)

var extractFlags struct {
	apiToken    string
	allPath     string
	allTSVPath  string
	monitorList string
	avoidExtra  bool
	test        bool
	confPath    string
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Scan wrapper repositories and build the full suite catalog",
	Long: `Extract walks the repositories listed in galaxyproject/planemo-monitor
(plus any extras from the conf file), reads every .shed.yml suite and
its tool XML files, and enriches each suite with bio.tools metadata,
reduced EDAM annotations, the latest bioconda version and installed
tool counts on the public usegalaxy.* servers.

The full catalog is written as JSON (the input of the filter stage)
and as TSV for spreadsheet review.`,
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVarP(&extractFlags.apiToken, "api", "a", "", "GitHub API token (required)")
	f.StringVarP(&extractFlags.allPath, "all", "o", "", "Output JSON path for the full catalog (required)")
	f.StringVarP(&extractFlags.allTSVPath, "all-tsv", "j", "", "Output TSV path for the full catalog (required)")
	f.StringVar(&extractFlags.monitorList, "planemo-repository-list", "", "Single repository list file inside planemo-monitor (default: all)")
	f.BoolVarP(&extractFlags.avoidExtra, "avoid-extra-repositories", "e", false, "Skip the extra repositories from the conf file")
	f.BoolVarP(&extractFlags.test, "test", "t", false, "Scan only the known test repository")
	f.StringVar(&extractFlags.confPath, "conf", "", "YAML conf file (extra repositories, extra Galaxy servers)")

	cobra.CheckErr(extractCmd.MarkFlagRequired("api"))
	cobra.CheckErr(extractCmd.MarkFlagRequired("all"))
	cobra.CheckErr(extractCmd.MarkFlagRequired("all-tsv"))
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logging.New("extract")

	conf, err := extract.LoadConf(extractFlags.confPath)
	if err != nil {
		return err
	}

	api, err := webapi.New(webapi.WithLogger(logging.New("webapi")))
	if err != nil {
		return err
	}
	github, err := gh.New(gh.DefaultBaseURL, extractFlags.apiToken, api)
	if err != nil {
		return err
	}
	bt, err := biotools.New(biotools.DefaultBaseURL, api)
	if err != nil {
		return err
	}
	cd, err := conda.New(conda.DefaultBaseURL, conda.DefaultChannel, api)
	if err != nil {
		return err
	}
	gx, err := galaxy.New(api, logging.New("galaxy"))
	if err != nil {
		return err
	}

	ontology, err := edam.Fetch(ctx, http.DefaultClient, edam.DefaultCSVURL)
	if err != nil {
		log.WarnContext(ctx, "EDAM ontology unavailable, annotations left unreduced", "error", err)
	} else {
		log.InfoContext(ctx, "EDAM ontology loaded", "classes", ontology.Len())
	}

	servers := map[string]string{}
	for name, url := range galaxy.DefaultServers {
		servers[name] = url
	}
	for name, url := range conf.GalaxyServers {
		servers[name] = url
	}

	ex := &extract.Extractor{
		GitHub:   github,
		BioTools: bt,
		Conda:    cd,
		Galaxy:   gx,
		Ontology: ontology,
		Servers:  servers,
		Logger:   log,
	}

	catalogAll, err := ex.Run(ctx, extract.Options{
		RepositoryList:         extractFlags.monitorList,
		AvoidExtraRepositories: extractFlags.avoidExtra,
		Test:                   extractFlags.test,
		ExtraRepositories:      conf.ExtraRepositories,
	})
	if err != nil {
		return err
	}

	if err := catalogAll.SaveJSON(extractFlags.allPath); err != nil {
		return err
	}
	if err := catalogAll.SaveTSV(extractFlags.allTSVPath, nil); err != nil {
		return err
	}
	log.InfoContext(ctx, "catalog written",
		"suites", catalogAll.Len(), "json", extractFlags.allPath, "tsv", extractFlags.allTSVPath)

	fmt.Fprintln(cmd.OutOrStdout(), collectionSummary(catalogAll))
	return nil
}
