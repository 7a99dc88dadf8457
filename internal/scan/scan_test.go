package scan_test

import (
	"math"
	"testing"

	"stuckscan/internal/scan"
	"stuckscan/internal/series"
)

func buildSeries(t *testing.T, steps []int, xs, zs []float64) *series.Series {
	t.Helper()
	if len(steps) != len(xs) || len(steps) != len(zs) {
		t.Fatalf("mismatched fixture lengths")
	}
	samples := make([]series.Sample, len(steps))
	for i := range steps {
		samples[i] = series.Sample{Step: steps[i], X: xs[i], Z: zs[i]}
	}
	return &series.Series{Path: "fixture.json", Samples: samples}
}

func TestScanEmptySeries(t *testing.T) {
	if got := scan.Scan(&series.Series{}, 3); got != nil {
		t.Fatalf("expected no windows, got %v", got)
	}
	if got := scan.Scan(nil, 3); got != nil {
		t.Fatalf("expected no windows for nil series, got %v", got)
	}
}

func TestScanWindowLongerThanSpan(t *testing.T) {
	s := buildSeries(t, []int{1, 2}, []float64{0, 1}, []float64{0, 0})
	if got := scan.Scan(s, 5); got != nil {
		t.Fatalf("expected no windows, got %v", got)
	}
}

func TestScanSingleStepWindowsAreZero(t *testing.T) {
	s := buildSeries(t, []int{3, 4, 9}, []float64{1.5, -2.0, 7.0}, []float64{0.1, 0.2, 0.3})
	windows := scan.Scan(s, 1)
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	for _, w := range windows {
		if w.Metric != 0 {
			t.Fatalf("window [%d,%d]: expected metric 0, got %g", w.Start, w.End, w.Metric)
		}
		if w.Start != w.End {
			t.Fatalf("window [%d,%d]: length-1 window should have start == end", w.Start, w.End)
		}
	}
}

func TestScanSkipsGappedWindows(t *testing.T) {
	// Steps 1..3 and 5..6: window length 2 must skip [3,4] and [4,5].
	s := buildSeries(t,
		[]int{1, 2, 3, 5, 6},
		[]float64{0, 0, 0, 0, 0},
		[]float64{0, 0, 0, 0, 0},
	)
	windows := scan.Scan(s, 2)
	wantStarts := []int{1, 2, 5}
	if len(windows) != len(wantStarts) {
		t.Fatalf("expected %d windows, got %d: %v", len(wantStarts), len(windows), windows)
	}
	for i, w := range windows {
		if w.Start != wantStarts[i] {
			t.Fatalf("window %d: expected start %d, got %d", i, wantStarts[i], w.Start)
		}
		if w.End != w.Start+1 {
			t.Fatalf("window %d: expected end %d, got %d", i, w.Start+1, w.End)
		}
	}
}

func TestScanBruteForceValidity(t *testing.T) {
	// Sparse non-zero-based steps; cross-check every produced window
	// against a brute-force membership test and confirm ordering.
	steps := []int{-2, -1, 0, 3, 4, 5, 6, 10}
	xs := []float64{1, 2, 4, 8, 16, 32, 64, 128}
	zs := []float64{0, 1, 0, 1, 0, 1, 0, 1}
	s := buildSeries(t, steps, xs, zs)

	present := make(map[int]bool, len(steps))
	for _, step := range steps {
		present[step] = true
	}

	for window := 1; window <= 6; window++ {
		windows := scan.Scan(s, window)
		prevStart := math.MinInt
		produced := make(map[int]bool, len(windows))
		for _, w := range windows {
			if w.Start <= prevStart {
				t.Fatalf("window=%d: starts not strictly increasing: %v", window, windows)
			}
			prevStart = w.Start
			if w.End != w.Start+window-1 {
				t.Fatalf("window=%d: bad end for start %d: %d", window, w.Start, w.End)
			}
			for step := w.Start; step <= w.End; step++ {
				if !present[step] {
					t.Fatalf("window=%d: produced gapped window [%d,%d]", window, w.Start, w.End)
				}
			}
			produced[w.Start] = true
		}
		// Every fully-present candidate must have been produced.
		for start := -2; start <= 10-window+1; start++ {
			valid := true
			for step := start; step < start+window; step++ {
				if !present[step] {
					valid = false
					break
				}
			}
			if valid && !produced[start] {
				t.Fatalf("window=%d: missing valid window starting at %d", window, start)
			}
		}
	}
}

func TestScanMetricIsPopulationStdDev(t *testing.T) {
	// x spread [0,2] has pstdev 1.0; z is flat.
	s := buildSeries(t, []int{1, 2}, []float64{0.0, 2.0}, []float64{0.0, 0.0})
	windows := scan.Scan(s, 2)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	w := windows[0]
	if w.Start != 1 || w.End != 2 {
		t.Fatalf("unexpected window bounds: [%d,%d]", w.Start, w.End)
	}
	if w.Metric != 1.0 {
		t.Fatalf("expected metric 1.0, got %g", w.Metric)
	}
}

func TestScanMetricTakesLargerAxis(t *testing.T) {
	// z varies more than x; the metric must follow z.
	s := buildSeries(t, []int{0, 1, 2},
		[]float64{0.0, 0.1, 0.2},
		[]float64{0.0, 3.0, 6.0},
	)
	windows := scan.Scan(s, 3)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	want := math.Sqrt((9.0 + 0.0 + 9.0) / 3.0) // pstdev of {0,3,6}
	if diff := math.Abs(windows[0].Metric - want); diff > 1e-12 {
		t.Fatalf("expected metric %g, got %g", want, windows[0].Metric)
	}
}

func TestScanDuplicateStepLastWins(t *testing.T) {
	// The later sample at step 2 replaces the earlier one in the lookup.
	s := &series.Series{Path: "dup.json", Samples: []series.Sample{
		{Step: 1, X: 0, Z: 0},
		{Step: 2, X: 10, Z: 0},
		{Step: 2, X: 0, Z: 0},
	}}
	windows := scan.Scan(s, 2)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if windows[0].Metric != 0 {
		t.Fatalf("expected metric 0 after last-wins dedup, got %g", windows[0].Metric)
	}
}
