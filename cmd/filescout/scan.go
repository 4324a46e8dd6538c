package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filescout/internal/digest"
	"filescout/internal/scan"
)

var (
	hashAlgo string

	dupAlgo    string
	dupMinSize int64

	largeMinSize int64
	largeLimit   int

	oldMinAge int
	oldLimit  int
)

var hashCmd = &cobra.Command{
	Use:   "hash <path>",
	Short: "Print a file's content digest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo := digest.Algorithm(hashAlgo)
		if !algo.Valid() {
			return fmt.Errorf("unsupported hash algorithm %q", hashAlgo)
		}
		sum, err := digest.File(args[0], algo, cfg.Scan.DigestChunkSize)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", sum, args[0])
		return nil
	},
}

var dupCmd = &cobra.Command{
	Use:   "dup <root>",
	Short: "Find exact-content duplicate files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo := digest.Algorithm(dupAlgo)
		if !algo.Valid() {
			return fmt.Errorf("unsupported hash algorithm %q", dupAlgo)
		}

		ctx, stop := scanContext()
		defer stop()

		minSize := dupMinSize
		if minSize == 0 {
			minSize = cfg.Scan.DuplicateMinSize
		}
		groups, err := scan.New(log).Duplicates(ctx, args[0], scan.DuplicateOptions{
			Algorithm: algo,
			MinSize:   minSize,
			ChunkSize: cfg.Scan.DigestChunkSize,
			Workers:   cfg.Scan.DigestWorkers,
		})
		if err != nil {
			return err
		}

		for sum, paths := range groups {
			sizeColor.Printf("%s\n", sum)
			for _, p := range paths {
				fmt.Printf("  %s\n", p)
			}
		}
		dimColor.Printf("%d duplicate group(s)\n", len(groups))
		return nil
	},
}

var largeCmd = &cobra.Command{
	Use:   "large <root>",
	Short: "Find the largest files in a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := scanContext()
		defer stop()

		minSize, limit := largeMinSize, largeLimit
		if minSize == 0 {
			minSize = cfg.Scan.LargeFileMinSize
		}
		if limit == 0 {
			limit = cfg.Scan.ResultLimit
		}
		items, err := scan.New(log).LargeFiles(ctx, args[0], minSize, limit)
		if err != nil {
			return err
		}
		printDescriptors(items)
		return nil
	},
}

var oldCmd = &cobra.Command{
	Use:   "old <root>",
	Short: "Find files untouched for a long time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := scanContext()
		defer stop()

		minAge, limit := oldMinAge, oldLimit
		if minAge == 0 {
			minAge = cfg.Scan.OldFileMinAge
		}
		if limit == 0 {
			limit = cfg.Scan.ResultLimit
		}
		items, err := scan.New(log).OldFiles(ctx, args[0], minAge, limit)
		if err != nil {
			return err
		}
		printDescriptors(items)
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVar(&hashAlgo, "algo", "sha256", "Hash algorithm: md5, sha1, sha256")

	dupCmd.Flags().StringVar(&dupAlgo, "algo", "sha256", "Hash algorithm: md5, sha1, sha256")
	dupCmd.Flags().Int64Var(&dupMinSize, "min-size", 0, "Minimum size in bytes to consider (default 1 MiB)")

	largeCmd.Flags().Int64Var(&largeMinSize, "min-size", 0, "Minimum size in bytes (default 100 MiB)")
	largeCmd.Flags().IntVar(&largeLimit, "limit", 0, "Maximum results (default 50)")

	oldCmd.Flags().IntVar(&oldMinAge, "days", 0, "Minimum age in days (default 365)")
	oldCmd.Flags().IntVar(&oldLimit, "limit", 0, "Maximum results (default 50)")

	rootCmd.AddCommand(hashCmd, dupCmd, largeCmd, oldCmd)
}
