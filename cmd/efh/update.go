// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krismajean/epstein-files-highlighter/internal/archive"
	"github.com/krismajean/epstein-files-highlighter/internal/config"
	"github.com/krismajean/epstein-files-highlighter/internal/issue"
	"github.com/krismajean/epstein-files-highlighter/internal/namelist"
	"github.com/krismajean/epstein-files-highlighter/internal/wiki"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runUpdate executes the requested maintenance steps in sequence. With
// neither --list nor --zip both steps run; a failed step does not stop the
// remaining one, but any failure makes the run exit non-zero.
func runUpdate(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, cfgPath, err := config.Load(config.LoadOptions{
		ConfigFilePath: cfgFile,
		RootDir:        rootDir,
	})
	if err != nil {
		reportError(err)
		return errors.New("configuration error")
	}
	if cfgPath != "" {
		logger.Debug("loaded config file", "path", cfgPath)
	}

	doList, doZip := selectSteps(listOnly, zipOnly)

	var failed []string

	if doList {
		if listErr := updateNameList(cmd, cfg); listErr != nil {
			reportError(listErr)
			failed = append(failed, "list")
		}
	}
	if doZip {
		if zipErr := packageExtension(cfg); zipErr != nil {
			reportError(zipErr)
			failed = append(failed, "zip")
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("step(s) failed: %v", failed)
	}

	fmt.Printf("%s Done.\n", successIcon)
	return nil
}

// selectSteps maps the --list/--zip flags to the steps to run. Neither flag
// selects both steps; both flags also select both.
func selectSteps(list, zip bool) (doList, doZip bool) {
	return list || !zip, zip || !list
}

// updateNameList fetches the wiki sections, builds the name list, and
// overwrites the generated names file.
func updateNameList(cmd *cobra.Command, cfg *config.Config) error {
	namesPath := filepath.Join(rootDir, cfg.NamesFile)

	// The parent directory must already exist; this tool maintains an
	// extension checkout, it does not scaffold one.
	namesDir := filepath.Dir(namesPath)
	if info, err := os.Stat(namesDir); err != nil || !info.IsDir() {
		return issue.NewErrorContext().
			WithOperation("update name list").
			WithResource(namesDir).
			WithSuggestion("Run from the extension project root, or pass --root").
			Wrap(errors.New("expected directory under project root")).
			Build()
	}

	client := wiki.NewClient(
		wiki.WithBaseURL(cfg.Wiki.APIBase),
		wiki.WithPage(cfg.Wiki.Page),
		wiki.WithUserAgent(cfg.Wiki.UserAgent),
	)

	fmt.Printf("%s Fetching sections from %s\n", infoIcon, PathStyle.Render(cfg.Wiki.Page))
	sections, err := client.Sections(cmd.Context())
	if err != nil {
		return fmt.Errorf("update name list: %w", err)
	}
	logger.Debug("fetched sections", "count", len(sections))

	entries := namelist.NewBuilder(cfg.SkipSections).Build(sections)

	fmt.Printf("%s Writing %d names to %s\n", infoIcon, len(entries), PathStyle.Render(namesPath))
	if err := namelist.WriteFile(namesPath, entries, filepath.ToSlash(cfg.NamesFile)); err != nil {
		return fmt.Errorf("update name list: %w", err)
	}

	fmt.Printf("%s Name list updated\n", successIcon)
	return nil
}

// packageExtension zips the extension's static assets into the store archive.
func packageExtension(cfg *config.Config) error {
	p := &archive.Packager{
		Include:         cfg.Archive.Include,
		ExcludeSuffixes: cfg.Archive.ExcludeSuffixes,
		ExcludeDirs:     cfg.Archive.ExcludeDirs,
	}

	zipPath := filepath.Join(rootDir, cfg.Archive.Output)
	fmt.Printf("%s Creating %s\n", infoIcon, PathStyle.Render(zipPath))
	if err := p.Build(rootDir, cfg.Archive.Output); err != nil {
		return fmt.Errorf("package extension: %w", err)
	}

	fmt.Printf("%s Archive created\n", successIcon)
	return nil
}

// reportError prints an error to stderr, using the actionable rendering with
// suggestions when available.
func reportError(err error) {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, actionable.Format(verbose))
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, ErrorStyle.Render(err.Error()))
}
