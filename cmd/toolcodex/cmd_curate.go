package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolcodex/internal/catalog"
	"toolcodex/internal/logging"
)

// Column subsets for the curation worksheets.
var (
	woBioToolsColumns = []string{"Suite ID", "Homepage", "Suite source"}
	wBioToolsColumns  = []string{"Suite ID", "bio.tool name", "EDAM operations", "EDAM topics"}
)

var curateFlags struct {
	filteredPath   string
	curatedPath    string
	woBioToolsPath string
	wBioToolsPath  string
	statusPath     string
}

var curateCmd = &cobra.Command{
	Use:   "curate",
	Short: "Split the filtered catalog by bio.tools linkage for curation",
	Long: `Curate annotates the filtered catalog with the status table and writes
three curation worksheets: the full curated TSV, the suites still
missing a bio.tools entry (candidates for registration), and the
suites already linked to bio.tools (candidates for annotation review).`,
	RunE: runCurate,
}

func init() {
	f := curateCmd.Flags()
	f.StringVarP(&curateFlags.filteredPath, "filtered", "f", "", "Input JSON path of the filtered catalog (required)")
	f.StringVarP(&curateFlags.curatedPath, "curated", "c", "", "Output TSV path for the curated catalog (required)")
	f.StringVar(&curateFlags.woBioToolsPath, "wo-biotools", "", "Output TSV path for suites without a bio.tools entry (required)")
	f.StringVar(&curateFlags.wBioToolsPath, "w-biotools", "", "Output TSV path for suites with a bio.tools entry (required)")
	f.StringVarP(&curateFlags.statusPath, "status", "s", "", "Status TSV from a previous curation round")

	cobra.CheckErr(curateCmd.MarkFlagRequired("filtered"))
	cobra.CheckErr(curateCmd.MarkFlagRequired("curated"))
	cobra.CheckErr(curateCmd.MarkFlagRequired("wo-biotools"))
	cobra.CheckErr(curateCmd.MarkFlagRequired("w-biotools"))
}

func runCurate(cmd *cobra.Command, _ []string) error {
	log := logging.New("curate")

	filtered, err := catalog.LoadJSON(curateFlags.filteredPath)
	if err != nil {
		return err
	}
	status, err := catalog.LoadStatusTable(curateFlags.statusPath)
	if err != nil {
		return err
	}

	withBioTools, withoutBioTools := catalog.Curate(filtered, status)
	if filtered.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No suites left after curation")
		return nil
	}

	if err := filtered.SaveTSV(curateFlags.curatedPath, nil); err != nil {
		return err
	}
	if err := withoutBioTools.SaveTSV(curateFlags.woBioToolsPath, woBioToolsColumns); err != nil {
		return err
	}
	if err := withBioTools.SaveTSV(curateFlags.wBioToolsPath, wBioToolsColumns); err != nil {
		return err
	}
	log.Info("curation worksheets written",
		"with_biotools", withBioTools.Len(), "without_biotools", withoutBioTools.Len())

	fmt.Fprintln(cmd.OutOrStdout(), curationSummary(withBioTools, withoutBioTools))
	return nil
}
