// Package corpus enumerates labeled episode files by glob pattern and
// runs the window scanner over each of them.
//
// Sources are processed independently: a file that cannot be read or
// parsed is logged as a warning and contributes nothing, so one bad
// episode never aborts a calibration run. Results keep the sorted
// enumeration order of the matched paths.
package corpus
