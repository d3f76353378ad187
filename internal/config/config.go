// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/krismajean/epstein-files-highlighter/internal/issue"
	"github.com/krismajean/epstein-files-highlighter/internal/namelist"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the optional per-project config file looked up in the
	// project root.
	ConfigFileName = "efh.toml"
)

type (
	// Config holds every knob of the update tool. All values have working
	// defaults; a project-root efh.toml can override any of them.
	Config struct {
		// Wiki selects the page whose sections feed the name list.
		Wiki WikiConfig `mapstructure:"wiki"`

		// NamesFile is the generated JS file, relative to the project root.
		NamesFile string `mapstructure:"names_file"`

		// SkipSections are page headings that are not names and never enter
		// the list.
		SkipSections []string `mapstructure:"skip_sections"`

		// Archive controls store zip packaging.
		Archive ArchiveConfig `mapstructure:"archive"`
	}

	// WikiConfig identifies the MediaWiki endpoint and page.
	WikiConfig struct {
		Page      string `mapstructure:"page"`
		APIBase   string `mapstructure:"api_base"`
		UserAgent string `mapstructure:"user_agent"`
	}

	// ArchiveConfig lists what goes into the store zip and what never does.
	ArchiveConfig struct {
		// Output is the zip path relative to the project root.
		Output string `mapstructure:"output"`
		// Include are the packaged top-level entries; each must exist.
		Include []string `mapstructure:"include"`
		// ExcludeSuffixes drop files by name suffix at any depth.
		ExcludeSuffixes []string `mapstructure:"exclude_suffixes"`
		// ExcludeDirs drop directories by name at any depth.
		ExcludeDirs []string `mapstructure:"exclude_dirs"`
	}

	// LoadOptions controls config resolution.
	LoadOptions struct {
		// ConfigFilePath is an explicit --config value. When set, the file
		// must exist; the project-root lookup is skipped.
		ConfigFilePath string
		// RootDir is the project root searched for efh.toml (default ".").
		RootDir string
	}
)

// DefaultConfig returns the built-in configuration matching the extension's
// service worker constants.
func DefaultConfig() Config {
	return Config{
		Wiki: WikiConfig{
			Page:      "List_of_people_named_in_the_Epstein_files",
			APIBase:   "https://en.wikipedia.org/w/api.php",
			UserAgent: "EpsteinFilesHighlighter/1.0",
		},
		NamesFile:    filepath.Join("content", "names.js"),
		SkipSections: namelist.DefaultSkipSections(),
		Archive: ArchiveConfig{
			Output:          "epstein-files-highlighter.zip",
			Include:         []string{"manifest.json", "background", "content", "icons", "popup"},
			ExcludeSuffixes: []string{".DS_Store", ".zip", ".new"},
			ExcludeDirs:     []string{".git", ".claude", "scripts"},
		},
	}
}

// Load resolves the effective configuration: built-in defaults, overlaid with
// an explicit config file or a project-root efh.toml when present. Returns
// the config and the path of the file actually loaded ("" when running on
// defaults alone).
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	v.SetConfigType("toml")

	defaults := DefaultConfig()
	v.SetDefault("wiki.page", defaults.Wiki.Page)
	v.SetDefault("wiki.api_base", defaults.Wiki.APIBase)
	v.SetDefault("wiki.user_agent", defaults.Wiki.UserAgent)
	v.SetDefault("names_file", defaults.NamesFile)
	v.SetDefault("skip_sections", defaults.SkipSections)
	v.SetDefault("archive.output", defaults.Archive.Output)
	v.SetDefault("archive.include", defaults.Archive.Include)
	v.SetDefault("archive.exclude_suffixes", defaults.Archive.ExcludeSuffixes)
	v.SetDefault("archive.exclude_dirs", defaults.Archive.ExcludeDirs)

	resolvedPath := ""

	switch {
	case opts.ConfigFilePath != "":
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Omit --config to run on built-in defaults").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				Build()
		}
		if err := readInto(v, opts.ConfigFilePath); err != nil {
			return nil, "", err
		}
		resolvedPath = opts.ConfigFilePath
	default:
		rootDir := opts.RootDir
		if rootDir == "" {
			rootDir = "."
		}
		localPath := filepath.Join(rootDir, ConfigFileName)
		if fileExists(localPath) {
			if err := readInto(v, localPath); err != nil {
				return nil, "", err
			}
			resolvedPath = localPath
		}
		// No config file found: defaults apply, not an error.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Compare the file against the documented efh.toml keys").
			Wrap(err).
			Build()
	}

	return &cfg, resolvedPath, nil
}

// readInto merges one TOML config file into Viper with actionable context on
// failure.
func readInto(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid TOML syntax").
			Wrap(err).
			Build()
	}
	return nil
}

// validate enforces constraints the TOML format cannot express.
func (c *Config) validate() error {
	if c.Wiki.Page == "" {
		return fmt.Errorf("wiki.page must not be empty")
	}
	if c.Wiki.APIBase == "" {
		return fmt.Errorf("wiki.api_base must not be empty")
	}
	if c.NamesFile == "" || filepath.IsAbs(c.NamesFile) {
		return fmt.Errorf("names_file must be a non-empty path relative to the project root")
	}
	if c.Archive.Output == "" || filepath.IsAbs(c.Archive.Output) {
		return fmt.Errorf("archive.output must be a non-empty path relative to the project root")
	}
	if len(c.Archive.Include) == 0 {
		return fmt.Errorf("archive.include must list at least one entry")
	}
	return nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
