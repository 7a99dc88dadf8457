// Package main hosts the stuckscan CLI entrypoint and command graph.
//
// The Cobra-based command tree covers threshold calibration (suggest),
// detection and verification against labeled corpora, per-file gap
// diagnostics, and the verify run history. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on
// output; the metric and classification logic lives in the internal
// packages.
package main
