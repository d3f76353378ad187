// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI surface of the efh maintenance tool.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// listOnly restricts the run to the name list update step.
	listOnly bool
	// zipOnly restricts the run to the store zip packaging step.
	zipOnly bool
	// rootDir is the extension project root all paths are resolved against.
	rootDir string
	// cfgFile allows specifying a custom config file.
	cfgFile string
	// verbose enables debug logging and full error chains.
	verbose bool

	// logger writes diagnostics to stderr; stdout is reserved for progress output.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "efh",
	})

	// rootCmd is the one and only command: both maintenance steps hang off
	// flags rather than subcommands.
	rootCmd = &cobra.Command{
		Use:   "efh",
		Short: "Maintain the Epstein Files Highlighter extension",
		Long: TitleStyle.Render("efh") + SubtitleStyle.Render(" - extension maintenance tool") + `

Refreshes the extension's hardcoded name list from Wikipedia and packages
the static assets into the store zip.

` + SubtitleStyle.Render("Examples:") + `
  efh                 Update the name list and create the zip
  efh --list          Only update content/names.js from Wikipedia
  efh --zip           Only create the store zip in the project root`,
		SilenceUsage: true,
		RunE:         runUpdate,
	}
)

func init() {
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "only update the generated name list")
	rootCmd.Flags().BoolVar(&zipOnly, "zip", false, "only create the store zip")
	rootCmd.Flags().StringVar(&rootDir, "root", ".", "extension project root")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is <root>/efh.toml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return Version + " (commit: " + Commit + ", built: " + BuildDate + ")"
}

// Execute runs the CLI. It is called by main.main() and exits non-zero when
// any requested step failed.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
