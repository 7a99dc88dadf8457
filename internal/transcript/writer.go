package transcript

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Writer appends run transcripts to one log file.
type Writer struct {
	path string
	lock *flock.Flock
}

// New returns a writer for the transcript at path. The file and its
// directory are created on first append.
func New(path string) *Writer {
	return &Writer{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the transcript file location.
func (w *Writer) Path() string {
	return w.path
}

// Append writes one framed transcript. The lines are written verbatim
// between the START and END markers; the caller supplies plain text
// without color codes.
func (w *Writer) Append(startedAt time.Time, lines []string) error {
	dir := filepath.Dir(w.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure transcript directory: %w", err)
		}
	}

	if err := w.lock.Lock(); err != nil {
		return fmt.Errorf("acquire transcript lock: %w", err)
	}
	defer func() {
		_ = w.lock.Unlock()
	}()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "=== VERIFY START %s ===\n", startedAt.Format(time.RFC3339))
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("=== VERIFY END ===\n\n")

	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("append transcript: %w", err)
	}
	return nil
}
