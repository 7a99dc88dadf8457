// Package transcript appends verify run transcripts to a shared
// plain-text log file.
//
// Each run is framed by timestamped START/END markers. A sibling lock
// file serializes concurrent invocations so transcripts never
// interleave. The file is write-only from the tool's point of view; it
// exists for humans and is never read back.
package transcript
