package main

import (
	"github.com/spf13/cobra"

	"filescout/internal/fsys"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List a directory, folders first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		items, err := fsys.List(path)
		if err != nil {
			return err
		}
		printDescriptors(items)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
