// Package series loads labeled trajectory episodes from JSON files and
// normalizes them into step-sorted sample sequences.
//
// An episode file carries a "locations" list of (step, x, z) entries.
// Loading performs typed coercion into a Series and reports any shape
// problem as a single FormatError so callers can skip a bad source and
// keep scanning the rest of a corpus. The package also provides the
// step-set diagnostics (longest contiguous run, missing ranges) used to
// explain why a series yields no usable windows.
package series
