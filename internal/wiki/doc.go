// SPDX-License-Identifier: MPL-2.0

// Package wiki fetches the section headings of a Wikipedia page through the
// MediaWiki action=parse API. It performs exactly one request per call and
// leaves all error handling to the caller.
package wiki
