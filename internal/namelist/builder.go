// SPDX-License-Identifier: MPL-2.0

package namelist

import (
	"slices"
	"strings"

	"github.com/krismajean/epstein-files-highlighter/internal/wiki"
)

type (
	// Entry is one cleaned (name, anchor) pair. Name is never empty, never a
	// single letter, never a skip-set heading, never an A-B index range marker.
	// The anchor is preserved verbatim from the source section.
	Entry struct {
		Name   string
		Anchor string
	}

	// Builder turns raw wiki sections into the final name list. It is a pure
	// transformation; the same input always produces the same output.
	Builder struct {
		skipSections map[string]struct{}
	}
)

// DefaultSkipSections are the non-name page headings discarded by the builder.
// They match the scrub rules of the extension's service worker.
func DefaultSkipSections() []string {
	return []string{
		"References", "External links", "Contents", "See also", "Notes",
		"Background", "Releases", "Redactions", "Litigation", "Names", "Name",
	}
}

// NewBuilder creates a Builder that discards the given section headings.
func NewBuilder(skipSections []string) *Builder {
	skip := make(map[string]struct{}, len(skipSections))
	for _, s := range skipSections {
		skip[s] = struct{}{}
	}
	return &Builder{skipSections: skip}
}

// Build filters and cleans sections into the final list:
//
//  1. Titles and anchors are trimmed; records with an empty title or anchor
//     are dropped.
//  2. Single-letter alphabetic titles (index headers) are dropped.
//  3. Titles in the skip set are dropped.
//  4. Letter-dash-letter range markers ("A-B") are dropped.
//  5. Titles containing " and " are split into one entry per part, all parts
//     sharing the original anchor.
//  6. The result is stable-sorted by descending name length, so a downstream
//     longest-match-first scanner tries longer names before shorter ones.
//
// Build is idempotent: running it over its own output (treating entries as
// sections) discards nothing further.
func (b *Builder) Build(sections []wiki.Section) []Entry {
	var entries []Entry
	for _, s := range sections {
		name := strings.TrimSpace(s.Title)
		anchor := strings.TrimSpace(s.Anchor)
		if name == "" || anchor == "" {
			continue
		}
		if isSingleLetter(name) {
			continue
		}
		if _, skip := b.skipSections[name]; skip {
			continue
		}
		if isLetterRange(name) {
			continue
		}
		entries = append(entries, Entry{Name: name, Anchor: anchor})
	}

	entries = expandConjunctions(entries)

	// Descending length, stable so equal-length names keep page order.
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return len(b.Name) - len(a.Name)
	})
	return entries
}

// expandConjunctions splits every "X and Y" entry into one entry per part,
// each sharing the original anchor. Parts are trimmed and empty parts dropped.
// A legitimate name that happens to contain " and " is split too; the source
// data has no way to tell the cases apart.
func expandConjunctions(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !strings.Contains(e.Name, " and ") {
			out = append(out, e)
			continue
		}
		for part := range strings.SplitSeq(e.Name, " and ") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, Entry{Name: part, Anchor: e.Anchor})
		}
	}
	return out
}

// isSingleLetter reports whether s is exactly one alphabetic character.
func isSingleLetter(s string) bool {
	return len(s) == 1 && isAlpha(s[0])
}

// isLetterRange reports whether s is a 3-character alphabetic index range
// marker such as "A-B".
func isLetterRange(s string) bool {
	return len(s) == 3 && s[1] == '-' && isAlpha(s[0]) && isAlpha(s[2])
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
