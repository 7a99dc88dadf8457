package calibrate

import "stuckscan/internal/corpus"

// Label identifies which labeled corpus a window came from.
type Label string

const (
	LabelStuck   Label = "stuck"
	LabelUnstuck Label = "unstuck"
)

// Verdict records the classification outcome of one window.
type Verdict struct {
	Path   string
	Start  int
	End    int
	Metric float64
	Label  Label
	OK     bool
}

// Tally counts correctly and incorrectly classified windows.
type Tally struct {
	OK int
	NG int
}

// Total returns the number of windows behind the tally.
func (t Tally) Total() int {
	return t.OK + t.NG
}

// Report aggregates the verdicts of one verification run.
type Report struct {
	Threshold float64
	Verdicts  []Verdict
	Stuck     Tally
	Unstuck   Tally
}

// TotalOK returns the number of correctly classified windows.
func (r *Report) TotalOK() int {
	return r.Stuck.OK + r.Unstuck.OK
}

// TotalNG returns the number of misclassified windows.
func (r *Report) TotalNG() int {
	return r.Stuck.NG + r.Unstuck.NG
}

// Accuracy returns the overall correct percentage, 0 when no windows
// were evaluated.
func (r *Report) Accuracy() float64 {
	total := r.TotalOK() + r.TotalNG()
	if total == 0 {
		return 0
	}
	return float64(r.TotalOK()) / float64(total) * 100.0
}

// Verify classifies every window of both labeled corpora against the
// threshold. A stuck window is correct when its metric is at or below
// the threshold; an unstuck window is correct only when its metric is
// strictly above it. Verdicts keep source order, stuck corpus first.
func Verify(stuck, unstuck []corpus.SourceWindows, threshold float64) *Report {
	report := &Report{Threshold: threshold}

	for _, src := range stuck {
		for _, w := range src.Windows {
			ok := w.Metric <= threshold
			if ok {
				report.Stuck.OK++
			} else {
				report.Stuck.NG++
			}
			report.Verdicts = append(report.Verdicts, Verdict{
				Path:   src.Path,
				Start:  w.Start,
				End:    w.End,
				Metric: w.Metric,
				Label:  LabelStuck,
				OK:     ok,
			})
		}
	}

	for _, src := range unstuck {
		for _, w := range src.Windows {
			ok := w.Metric > threshold
			if ok {
				report.Unstuck.OK++
			} else {
				report.Unstuck.NG++
			}
			report.Verdicts = append(report.Verdicts, Verdict{
				Path:   src.Path,
				Start:  w.Start,
				End:    w.End,
				Metric: w.Metric,
				Label:  LabelUnstuck,
				OK:     ok,
			})
		}
	}

	return report
}
