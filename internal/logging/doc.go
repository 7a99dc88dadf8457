// Package logging builds the slog loggers used across stuckscan.
//
// It supports a human-oriented console format and a machine-oriented
// JSON format, writes to any mix of stdout, stderr, and files, and
// exposes small attribute helpers so call sites stay terse. Commands
// construct a logger once from configuration and hand it down; library
// packages accept a *slog.Logger and never configure output themselves.
package logging
