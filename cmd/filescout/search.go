package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filescout/internal/fsys"
)

var (
	searchMode    string
	searchCase    bool
	searchMinSize int64
	searchMaxSize int64
	searchMinAge  int
)

var searchCmd = &cobra.Command{
	Use:   "search <root> <keyword>",
	Short: "Search a tree by name, extension, or content",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := scanContext()
		defer stop()

		items, err := fsys.Search(ctx, args[0], fsys.Criteria{
			Keyword:       args[1],
			Mode:          fsys.SearchMode(searchMode),
			CaseSensitive: searchCase,
			MinSize:       searchMinSize,
			MaxSize:       searchMaxSize,
			MinAgeDays:    searchMinAge,
		})
		if err != nil {
			return err
		}
		printDescriptors(items)
		dimColor.Printf("%d match(es)\n", len(items))
		return nil
	},
}

var globCmd = &cobra.Command{
	Use:   "glob <root> <pattern>",
	Short: "Match paths with a ** glob pattern",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := fsys.Glob(args[0], args[1])
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchMode, "mode", "name", "Match mode: name, extension, content")
	searchCmd.Flags().BoolVar(&searchCase, "case-sensitive", false, "Match case exactly")
	searchCmd.Flags().Int64Var(&searchMinSize, "min-size", 0, "Minimum file size in bytes")
	searchCmd.Flags().Int64Var(&searchMaxSize, "max-size", 0, "Maximum file size in bytes")
	searchCmd.Flags().IntVar(&searchMinAge, "min-age", 0, "Only files modified at least this many days ago")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(globCmd)
}
