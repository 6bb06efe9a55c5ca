// Package config loads and merges commit-format configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (COMMIT_FORMAT_MODE, COMMIT_FORMAT_BACKEND, etc.)
//  3. Config file ($XDG_CONFIG_HOME/commit-format/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
