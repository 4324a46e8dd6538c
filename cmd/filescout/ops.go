package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"filescout/internal/fsys"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fsys.CreateDir(filepath.Dir(args[0]), filepath.Base(args[0]))
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <path> <new-name>",
	Short: "Rename a file or directory in place",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fsys.Rename(args[0], args[1])
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file or directory tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fsys.Delete(args[0])
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <source> <dest-dir>",
	Short: "Move a file or directory into a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fsys.Move(args[0], args[1])
	},
}

var cpCmd = &cobra.Command{
	Use:   "cp <source> <dest-dir>",
	Short: "Copy a file or directory into a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fsys.Copy(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd, renameCmd, rmCmd, mvCmd, cpCmd)
}
