package scan

import (
	"math"

	"stuckscan/internal/series"
)

// Window is one valid contiguous window and its dispersion metric.
type Window struct {
	Start  int
	End    int
	Metric float64
}

// Scan returns the metric for every valid window of the given length,
// in ascending start order. The window length must be >= 1; the CLI
// rejects non-positive values before any scanning happens.
func Scan(s *series.Series, window int) []Window {
	if s == nil || len(s.Samples) == 0 {
		return nil
	}

	byStep := s.ByStep()
	minStep := s.Samples[0].Step
	maxStep := s.Samples[len(s.Samples)-1].Step

	var windows []Window
	xs := make([]float64, 0, window)
	zs := make([]float64, 0, window)

	for start := minStep; start <= maxStep-window+1; start++ {
		end := start + window - 1
		xs = xs[:0]
		zs = zs[:0]
		complete := true
		for step := start; step <= end; step++ {
			sample, ok := byStep[step]
			if !ok {
				complete = false
				break
			}
			xs = append(xs, sample.X)
			zs = append(zs, sample.Z)
		}
		if !complete {
			continue
		}
		metric := math.Max(populationStdDev(xs), populationStdDev(zs))
		windows = append(windows, Window{Start: start, End: end, Metric: metric})
	}
	return windows
}

// populationStdDev uses the N denominator. A single value yields 0.
func populationStdDev(values []float64) float64 {
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var sumSquares float64
	for _, v := range values {
		d := v - mean
		sumSquares += d * d
	}
	variance := sumSquares / n
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}
