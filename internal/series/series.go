package series

import (
	"fmt"
	"sort"
)

// Sample is one trajectory observation: a discrete step index and the
// two spatial coordinates the stillness metric is computed from.
type Sample struct {
	Step int
	X    float64
	Z    float64
}

// Series holds the step-sorted samples of one labeled episode. It is
// built once by the loader and treated as immutable afterwards.
type Series struct {
	Path    string
	Samples []Sample
}

// Len returns the number of samples, duplicates included.
func (s *Series) Len() int {
	return len(s.Samples)
}

// StepSet returns the sorted distinct step values present in the series.
func (s *Series) StepSet() []int {
	if len(s.Samples) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(s.Samples))
	steps := make([]int, 0, len(s.Samples))
	for _, sample := range s.Samples {
		if _, ok := seen[sample.Step]; ok {
			continue
		}
		seen[sample.Step] = struct{}{}
		steps = append(steps, sample.Step)
	}
	sort.Ints(steps)
	return steps
}

// ByStep returns a step-keyed lookup of samples. Duplicate steps within
// one episode are undefined input; the last-loaded sample wins.
func (s *Series) ByStep() map[int]Sample {
	byStep := make(map[int]Sample, len(s.Samples))
	for _, sample := range s.Samples {
		byStep[sample.Step] = sample
	}
	return byStep
}

// FormatError reports a structurally invalid episode file.
type FormatError struct {
	Path   string
	Detail string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Detail)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
