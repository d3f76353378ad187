// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/krismajean/epstein-files-highlighter/internal/issue"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	cfg, path, err := Load(LoadOptions{RootDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected no resolved config file, got %q", path)
	}

	if cfg.Wiki.Page != "List_of_people_named_in_the_Epstein_files" {
		t.Errorf("unexpected default page: %q", cfg.Wiki.Page)
	}
	if cfg.NamesFile != filepath.Join("content", "names.js") {
		t.Errorf("unexpected default names file: %q", cfg.NamesFile)
	}
	if len(cfg.SkipSections) == 0 {
		t.Error("default skip sections missing")
	}
	if cfg.Archive.Output != "epstein-files-highlighter.zip" {
		t.Errorf("unexpected default archive output: %q", cfg.Archive.Output)
	}
	if len(cfg.Archive.Include) != 5 {
		t.Errorf("unexpected default include set: %v", cfg.Archive.Include)
	}
}

func TestLoad_ProjectRootFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	content := `names_file = "generated/list.js"

[wiki]
page = "Some_Other_List"

[archive]
output = "dist.zip"
`
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Load(LoadOptions{RootDir: root})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if path != filepath.Join(root, ConfigFileName) {
		t.Errorf("resolved path: got %q", path)
	}

	if cfg.Wiki.Page != "Some_Other_List" {
		t.Errorf("page override lost: %q", cfg.Wiki.Page)
	}
	if cfg.NamesFile != "generated/list.js" {
		t.Errorf("names_file override lost: %q", cfg.NamesFile)
	}
	if cfg.Archive.Output != "dist.zip" {
		t.Errorf("archive output override lost: %q", cfg.Archive.Output)
	}
	// Unset keys keep their defaults.
	if cfg.Wiki.APIBase == "" || len(cfg.Archive.Include) == 0 {
		t.Error("defaults lost for keys absent from the file")
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	t.Parallel()

	_, _, err := Load(LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "missing.toml"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	var actionable *issue.ActionableError
	if !errors.As(err, &actionable) {
		t.Errorf("expected an actionable error, got %T: %v", err, err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("wiki = {"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(LoadOptions{RootDir: root}); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoad_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty page", "[wiki]\npage = \"\"\n"},
		{"absolute names file", "names_file = \"/etc/names.js\"\n"},
		{"absolute archive output", "[archive]\noutput = \"/tmp/out.zip\"\n"},
		{"empty include set", "[archive]\ninclude = []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, _, err := Load(LoadOptions{RootDir: root}); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}
