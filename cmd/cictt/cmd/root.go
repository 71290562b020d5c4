package cmd

import (
	"context"

	"cictt/internal/adapters/llm"
	"cictt/internal/core/engine"
	"cictt/internal/platform/config"

	"github.com/spf13/cobra"
)

// analyzerFor picks the analyzer from CORE_ANALYZE_*; a seam for tests
var analyzerFor = func(eng *engine.Engine) (engine.Analyzer, string) {
	return llm.Select(config.New().Prefix("CORE_ANALYZE_"), eng)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cictt",
		Short:         "cictt scores safety reports against the CICTT hazard taxonomy",
		Long:          "Keyword-weighted hazard scoring for aviation incident reports, with category edits, taxonomy lookup and a folder watcher.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAnalyzeCmd(),
		newCategoriesCmd(),
		newGroupsCmd(),
		newSearchCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
