package airtime

// Sequence returns the ascending integers from start (inclusive) to end
// (exclusive) in the given step. A non-positive step yields nil.
func Sequence(start, end, step int) []int {
	if step <= 0 || end <= start {
		return nil
	}

	out := make([]int, 0, (end-start+step-1)/step)
	for v := start; v < end; v += step {
		out = append(out, v)
	}

	return out
}
