package series

// Gap is an inclusive range of steps absent from a series.
type Gap struct {
	First int
	Last  int
}

// LongestRun returns the length of the longest run of consecutive
// integers in steps, which must be sorted ascending and distinct.
func LongestRun(steps []int) int {
	if len(steps) == 0 {
		return 0
	}
	longest, current := 1, 1
	for i := 1; i < len(steps); i++ {
		if steps[i] == steps[i-1]+1 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

// MissingRanges returns the maximal gaps between consecutive present
// steps, in ascending order. Steps must be sorted ascending and
// distinct.
func MissingRanges(steps []int) []Gap {
	var gaps []Gap
	for i := 1; i < len(steps); i++ {
		next := steps[i-1] + 1
		if steps[i] > next {
			gaps = append(gaps, Gap{First: next, Last: steps[i] - 1})
		}
	}
	return gaps
}
