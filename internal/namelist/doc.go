// SPDX-License-Identifier: MPL-2.0

// Package namelist builds the extension's name list from raw wiki sections
// and serializes it into the generated content/names.js fragment.
//
// The package is organized into two concerns:
//   - builder.go: scrub rules, "X and Y" splitting, longest-first ordering
//   - writer.go: JS fragment rendering with string escaping, file overwrite
package namelist
