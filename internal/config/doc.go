// SPDX-License-Identifier: MPL-2.0

// Package config resolves the tool's configuration: built-in defaults that
// mirror the extension's service worker constants, optionally overridden by a
// TOML file in the project root or an explicit --config path.
package config
