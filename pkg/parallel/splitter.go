package parallel

// split computes the midpoint that partitions [begin, end) into a
// non-empty, step-aligned left half and a possibly-empty right half. The
// caller is responsible for only invoking this when end-begin exceeds the
// effective chunk threshold; the formula itself doesn't reference chunk.
//
// m is always of the form begin + k*step with k >= 1, so [begin, m) is
// never empty; m <= end; and the left half is never smaller than the
// right, since the division rounds toward begin. These three properties
// are why the recursion always terminates (left always makes progress)
// and why the thread that falls straight into the left half is never
// starved relative to whatever gets forked off to the right.
func split(begin, end, step int) int {
	return begin + step + ((end-begin-1)/2/step)*step
}
