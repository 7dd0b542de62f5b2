// Package cli provides the cobra command tree for the tome binary.
// Commands are thin glue over the driving ports; services are injected
// from main before Execute runs.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomestack/tome/internal/core/ports/driving"
	"github.com/tomestack/tome/internal/logger"
)

// Injected services. Nil until main wires them in.
var notebookService driving.NotebookService

// version is overridden at startup via SetVersion.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "tome",
	Short: "Collect sources into notebooks",
	Long: `Tome collects pasted text, web pages, YouTube links and uploaded files
into notebooks of normalized plain-text sources, ready to ground
externally generated artifacts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

// SetNotebookService injects the notebook service.
func SetNotebookService(s driving.NotebookService) {
	notebookService = s
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose logging to stderr")
}
