package calibrate

import "math"

// Suggestion summarizes the metric extremes of both labeled corpora.
// StuckMax and UnstuckMin are NaN when the corresponding corpus yielded
// no windows; NaN extremes must stay distinguishable from a real 0.
type Suggestion struct {
	StuckMax   float64
	UnstuckMin float64
	Threshold  float64
	Separable  bool
	Overlap    bool
}

// HasStuck reports whether the stuck corpus produced any windows.
func (s Suggestion) HasStuck() bool {
	return !math.IsNaN(s.StuckMax)
}

// HasUnstuck reports whether the unstuck corpus produced any windows.
func (s Suggestion) HasUnstuck() bool {
	return !math.IsNaN(s.UnstuckMin)
}

// Suggest computes the stuck maximum, the unstuck minimum, and the
// midpoint threshold when the two classes separate. Every stuck metric
// sits at or below StuckMax and every unstuck metric at or above
// UnstuckMin, so a midpoint strictly between them classifies the whole
// calibration corpus correctly.
func Suggest(stuckMetrics, unstuckMetrics []float64) Suggestion {
	suggestion := Suggestion{
		StuckMax:   maxOrNaN(stuckMetrics),
		UnstuckMin: minOrNaN(unstuckMetrics),
	}
	if !suggestion.HasStuck() || !suggestion.HasUnstuck() {
		return suggestion
	}
	if suggestion.StuckMax < suggestion.UnstuckMin {
		suggestion.Separable = true
		suggestion.Threshold = (suggestion.StuckMax + suggestion.UnstuckMin) / 2.0
	} else {
		suggestion.Overlap = true
	}
	return suggestion
}

func maxOrNaN(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minOrNaN(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
