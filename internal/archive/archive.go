// SPDX-License-Identifier: MPL-2.0

// Package archive packages the extension's static assets into a distributable
// zip: a fixed include set walked recursively, minus excluded directories and
// file suffixes, with paths preserved relative to the project root.
package archive

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/krismajean/epstein-files-highlighter/internal/issue"
)

// Packager enumerates and zips the extension's distributable files.
type Packager struct {
	// Include are the top-level entries (files or directories) relative to
	// the project root. Every entry must exist or packaging fails up front.
	Include []string

	// ExcludeSuffixes drops files whose name ends in one of these suffixes
	// (OS metadata, prior archive outputs, temp/backup files).
	ExcludeSuffixes []string

	// ExcludeDirs drops directories with one of these names at any depth.
	// Hidden directories (leading dot) are always dropped.
	ExcludeDirs []string
}

// Build writes the archive to outPath under root. All include entries are
// checked before the zip file is created, so a missing entry aborts without
// touching the output. Empty directories contribute no entries and do not
// fail the run.
func (p *Packager) Build(root, outPath string) (err error) {
	files, err := p.collect(root)
	if err != nil {
		return err
	}

	zipPath := filepath.Join(root, outPath)
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if closeErr := zipFile.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	zw := zip.NewWriter(zipFile)
	defer func() {
		if closeErr := zw.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, f := range files {
		if addErr := addFile(zw, f.path, f.arcname); addErr != nil {
			return fmt.Errorf("archiving %s: %w", f.arcname, addErr)
		}
	}

	return nil
}

// entry pairs an on-disk path with its forward-slash archive name.
type entry struct {
	path    string
	arcname string
}

// collect stats every include entry, then walks directories applying the
// exclusion rules. The returned list is in include order, files within a
// directory in walk (lexical) order.
func (p *Packager) collect(root string) ([]entry, error) {
	var files []entry

	for _, inc := range p.Include {
		path := filepath.Join(root, inc)
		info, err := os.Stat(path)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("package extension").
				WithResource(path).
				WithSuggestion("Run from the extension project root, or pass --root").
				WithSuggestion("Check that the extension sources are complete").
				Wrap(err).
				Build()
		}

		if !info.IsDir() {
			// The exclusion rules apply to top-level files too; a denylisted
			// include entry is skipped, not an error.
			if arcname := filepath.ToSlash(inc); !p.excludedPath(arcname) {
				files = append(files, entry{path: path, arcname: arcname})
			}
			continue
		}

		walkErr := filepath.WalkDir(path, func(sub string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				if sub != path && p.excludedDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if p.excludedSuffix(d.Name()) {
				return nil
			}
			rel, relErr := filepath.Rel(root, sub)
			if relErr != nil {
				return fmt.Errorf("resolving relative path: %w", relErr)
			}
			arcname := filepath.ToSlash(rel)
			// Guard against excluded components anywhere in the path, not
			// just pruned walk directories.
			if p.excludedPath(arcname) {
				return nil
			}
			files = append(files, entry{path: sub, arcname: arcname})
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("enumerating %s: %w", inc, walkErr)
		}
	}

	return files, nil
}

// excludedDir reports whether a directory name is denylisted or hidden.
func (p *Packager) excludedDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, d := range p.ExcludeDirs {
		if name == d {
			return true
		}
	}
	return false
}

// excludedSuffix reports whether a file name ends in a denylisted suffix.
func (p *Packager) excludedSuffix(name string) bool {
	for _, s := range p.ExcludeSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// excludedPath reports whether any component of the slash-separated arcname
// is a denylisted directory, or the final component has a denylisted suffix.
func (p *Packager) excludedPath(arcname string) bool {
	if p.excludedSuffix(arcname) {
		return true
	}
	for part := range strings.SplitSeq(arcname, "/") {
		for _, d := range p.ExcludeDirs {
			if part == d {
				return true
			}
		}
	}
	return false
}

// addFile writes one file into the zip with a Deflate header and its
// archive name.
func addFile(zw *zip.Writer, path, arcname string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("getting file info: %w", err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("creating file header: %w", err)
	}
	header.Name = arcname
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating zip entry: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing zip entry: %w", err)
	}
	return nil
}
