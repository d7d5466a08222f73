// toolcodex builds a curated catalog of Galaxy tool suites: extract
// scans wrapper repositories and enriches suites from public
// registries, filter applies the community allow-list and status
// table, curate splits the result by bio.tools linkage, and serve
// exposes a catalog over MCP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolcodex/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "toolcodex",
	Short: "Catalog of Galaxy tool suites extracted from wrapper repositories",
	Long: `toolcodex scans GitHub repositories of Galaxy tool wrappers, enriches
each suite with bio.tools, EDAM, bioconda and usegalaxy.* install data,
and exports the catalog as JSON and TSV for community curation.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(curateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
