package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"filescout/internal/fsys"
	"filescout/internal/history"
	"filescout/internal/infrastructure/config"
	"filescout/internal/infrastructure/logging"
)

var (
	cfg *config.Config
	log *logging.Logger

	// CLI flags
	noColor  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "filescout",
	Short: "Smart file scanning and deduplication",
	Long: `filescout walks directory trees, fingerprints file contents, and keeps
an access history to find duplicates, large and stale files, and paths of
likely interest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.LoadOrDefault()
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		l, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			l = logging.NewNop()
		}
		log = l
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// openStore opens the access history store at the configured path.
func openStore() *history.Store {
	return history.Open(cfg.History.Path, log)
}

// scanContext returns a context cancelled by Ctrl-C, so long scans stop
// between entries instead of killing the process.
func scanContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

var (
	dirColor  = color.New(color.FgBlue, color.Bold)
	sizeColor = color.New(color.FgYellow)
	dimColor  = color.New(color.Faint)
)

// printDescriptors renders descriptors one per line.
func printDescriptors(items []fsys.Descriptor) {
	for _, item := range items {
		if item.IsDir {
			dirColor.Printf("%s/", item.Name)
			dimColor.Printf("  %s\n", item.Path)
			continue
		}
		fmt.Printf("%s  ", item.Name)
		sizeColor.Printf("%s", item.FormattedSize)
		dimColor.Printf("  %s  %s  %s\n",
			item.Category, item.Modified.Format("2006-01-02 15:04"), item.Path)
	}
}
