package corpus

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"stuckscan/internal/logging"
	"stuckscan/internal/scan"
	"stuckscan/internal/series"
)

// SourceWindows pairs one episode file with its scanned windows.
type SourceWindows struct {
	Path    string
	Windows []scan.Window
}

// Scanner loads episode files matched by a glob and scans their windows.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner returns a scanner that reports skipped sources through the
// provided logger. A nil logger discards the warnings.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{logger: logger}
}

// Expand resolves a glob pattern (with ** support) to a sorted list of
// .json file paths. Matches without a .json suffix are discarded.
func Expand(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand glob %q: %w", pattern, err)
	}
	paths := matches[:0]
	for _, match := range matches {
		if strings.HasSuffix(strings.ToLower(match), ".json") {
			paths = append(paths, match)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Scan expands the pattern and scans every matched episode with the
// given window length. Unreadable or malformed sources are skipped
// with a warning; the remaining sources are returned in path order.
func (s *Scanner) Scan(pattern string, window int) ([]SourceWindows, error) {
	paths, err := Expand(pattern)
	if err != nil {
		return nil, err
	}

	results := make([]SourceWindows, 0, len(paths))
	for _, path := range paths {
		episode, err := series.Load(path)
		if err != nil {
			s.logger.Warn("episode skipped",
				logging.String("source", path),
				logging.Error(err),
			)
			continue
		}
		results = append(results, SourceWindows{
			Path:    path,
			Windows: scan.Scan(episode, window),
		})
	}
	return results, nil
}

// Metrics flattens the window metrics of all sources, preserving order.
func Metrics(sources []SourceWindows) []float64 {
	var metrics []float64
	for _, src := range sources {
		for _, w := range src.Windows {
			metrics = append(metrics, w.Metric)
		}
	}
	return metrics
}

// WindowCount returns the total number of windows across all sources.
func WindowCount(sources []SourceWindows) int {
	count := 0
	for _, src := range sources {
		count += len(src.Windows)
	}
	return count
}
