package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootHome    string
	rootBackend string
	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tgj",
	Short: "Trivial Gratitude Journal – three good things a day",
	Long: `tgj is a single-binary gratitude journal.
Entries are kept as one JSON collection in ~/.tgj/ by default, or in a SQLite
database or an S3 bucket (see ~/.tgj/config.json).`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  openApp,
	PersistentPostRunE: closeApp,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootHome, "home", "", "Data directory (default $TGJ_HOME or ~/.tgj)")
	rootCmd.PersistentFlags().StringVar(&rootBackend, "backend", "", "Storage backend: file, sqlite, s3, memory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(duplicateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(quickCmd)
}
