// Package config loads, normalizes, and validates stuckscan settings.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Corpus globs, the default window
// length, logging output, and the verify history database are all
// resolved here so commands receive sanitized values in one pass.
package config
