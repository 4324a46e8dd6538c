package main

import (
	"github.com/spf13/cobra"

	"filescout/internal/suggest"
)

var (
	frequentLimit int
	suggestLimit  int
)

var visitCmd = &cobra.Command{
	Use:   "visit <path>",
	Short: "Record an access to a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openStore().RecordAccess(args[0])
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently accessed paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printDescriptors(openStore().Recent())
		return nil
	},
}

var frequentCmd = &cobra.Command{
	Use:   "frequent",
	Short: "Show the most frequently accessed paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := frequentLimit
		if limit == 0 {
			limit = cfg.Scan.FrequentLimit
		}
		printDescriptors(openStore().Frequent(limit))
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [path]",
	Short: "Suggest paths of likely interest near a location",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		limit := suggestLimit
		if limit == 0 {
			limit = cfg.Scan.SuggestionLimit
		}
		printDescriptors(suggest.New(openStore()).Suggestions(path, limit))
		return nil
	},
}

func init() {
	frequentCmd.Flags().IntVar(&frequentLimit, "limit", 0, "Maximum results (default 20)")
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Maximum results (default 10)")
	rootCmd.AddCommand(visitCmd, recentCmd, frequentCmd, suggestCmd)
}
