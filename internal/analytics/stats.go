package analytics

// Range returns the minimum and maximum of f(item) over items in a single
// pass, visiting each item exactly once. An empty slice yields (0, 0) rather
// than an error; callers treat that as a degenerate range.
func Range[T any](items []T, f func(T) float64) (min, max float64) {
	if len(items) == 0 {
		return 0, 0
	}
	min = f(items[0])
	max = min
	for _, it := range items[1:] {
		v := f(it)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Normalize rescales v linearly into [0,1] over the observed [min,max].
// When the range is degenerate (min == max, exact comparison on purpose:
// the range collapses only when every group shares the value) the caller's
// def is returned verbatim. Each metric picks its own degenerate default.
func Normalize(v, min, max, def float64) float64 {
	if max == min {
		return def
	}
	return (v - min) / (max - min)
}
