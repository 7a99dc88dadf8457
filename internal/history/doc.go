// Package history persists a summary of every verify run to a local
// SQLite database so threshold experiments can be compared later.
//
// Each run is stored with a generated identifier, its parameters
// (window length and threshold), the per-label tallies, and the overall
// accuracy. The store is append-and-read; rows are never updated.
package history
