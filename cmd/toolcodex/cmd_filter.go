package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolcodex/internal/catalog"
	"toolcodex/internal/logging"
)

// filteredTSVColumns is the column subset reviewers annotate and feed
// back as the status table.
var filteredTSVColumns = []string{"Suite ID", "Description", "To keep", "Deprecated"}

var filterFlags struct {
	allPath        string
	categoriesPath string
	filteredPath   string
	tsvPath        string
	statusPath     string
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter the full catalog by category allow-list and status table",
	Long: `Filter reduces the full catalog to the suites relevant to one
community: suites matching the category allow-list (one ToolShed
category per line; an absent file keeps everything) that the status
table does not exclude. Status rows also annotate the kept suites
with their curated keep/deprecated decisions.`,
	RunE: runFilter,
}

func init() {
	f := filterCmd.Flags()
	f.StringVarP(&filterFlags.allPath, "all", "a", "", "Input JSON path of the full catalog (required)")
	f.StringVarP(&filterFlags.categoriesPath, "categories", "c", "", "Category allow-list file, one category per line")
	f.StringVarP(&filterFlags.filteredPath, "filtered", "f", "", "Output JSON path for the filtered catalog (required)")
	f.StringVarP(&filterFlags.tsvPath, "tsv-filtered", "t", "", "Output TSV path for curation review (required)")
	f.StringVarP(&filterFlags.statusPath, "status", "s", "", "Status TSV from a previous curation round")

	cobra.CheckErr(filterCmd.MarkFlagRequired("all"))
	cobra.CheckErr(filterCmd.MarkFlagRequired("filtered"))
	cobra.CheckErr(filterCmd.MarkFlagRequired("tsv-filtered"))
}

func runFilter(cmd *cobra.Command, _ []string) error {
	log := logging.New("filter")

	all, err := catalog.LoadJSON(filterFlags.allPath)
	if err != nil {
		return err
	}
	categories, err := catalog.ReadList(filterFlags.categoriesPath)
	if err != nil {
		return err
	}
	status, err := catalog.LoadStatusTable(filterFlags.statusPath)
	if err != nil {
		return err
	}

	filtered := catalog.Filter(all, categories, status)
	if filtered.Len() == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No suites left after filtering for %s\n", filterFlags.filteredPath)
		return nil
	}

	if err := filtered.SaveJSON(filterFlags.filteredPath); err != nil {
		return err
	}
	if err := filtered.SaveTSV(filterFlags.tsvPath, filteredTSVColumns); err != nil {
		return err
	}
	log.Info("filtered catalog written",
		"in", all.Len(), "kept", filtered.Len(), "json", filterFlags.filteredPath)

	fmt.Fprintln(cmd.OutOrStdout(), categorySummary(filtered))
	return nil
}
