// SPDX-License-Identifier: MPL-2.0

package namelist

import (
	"fmt"
	"os"
	"strings"
)

// header is the explanatory comment block at the top of the generated file.
// The trailing %s is the path comment on the first line.
const header = `// %s
// Hardcoded fallback list generated from Wikipedia.
// The background service worker refreshes this daily via chrome.storage.local.
// Sorted longest-first so the regex engine tries longer names before shorter ones.
// Run 'efh --list' to refresh this file.

const HARDCODED_NAMES = [
`

// Render serializes entries into the generated JS fragment: a HARDCODED_NAMES
// constant with one {name, anchor} object literal per line. Backslashes and
// double quotes inside the strings are escaped so the emitted literals parse
// back to the exact original characters.
func Render(entries []Entry, pathComment string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, header, pathComment)
	for _, e := range entries {
		fmt.Fprintf(&sb, "  { name: \"%s\", anchor: \"%s\" },\n", jsEscape(e.Name), jsEscape(e.Anchor))
	}
	sb.WriteString("];\n")
	return []byte(sb.String())
}

// jsEscape escapes backslashes and double quotes for embedding in a
// double-quoted JS string literal. Backslashes first, so quote escapes are
// not themselves re-escaped.
func jsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// WriteFile renders entries and overwrites path unconditionally. There is no
// atomic rename and no backup; an I/O failure propagates to the caller.
func WriteFile(path string, entries []Entry, pathComment string) error {
	if err := os.WriteFile(path, Render(entries, pathComment), 0o644); err != nil {
		return fmt.Errorf("writing name list: %w", err)
	}
	return nil
}
