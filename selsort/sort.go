package selsort

import "cmp"

// T is the pair of callbacks Sort drives. Positions are logical: the caller
// decides what position i means and what swapping two of them moves.
type T struct {
	Less func(i, j int) bool
	Swap func(i, j int)
}

// Sort orders positions [0, n) of data by selection and returns the number of
// swaps performed. It never swaps a position with itself, so at most n-1 swaps
// and n(n-1)/2 comparisons are made.
func Sort(data T, n int) (swaps int) {
	for cur := 0; cur < n-1; cur++ {
		best := cur
		for i := cur + 1; i < n; i++ {
			if data.Less(i, best) {
				best = i
			}
		}
		if best != cur {
			data.Swap(cur, best)
			swaps++
		}
	}
	return swaps
}

func Less[S ~[]E, E any](x S, less func(i, j int) bool) int {
	return Sort(T{
		Less: less,
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x))
}

func Slice[S ~[]E, E cmp.Ordered](x S) int {
	return Sort(T{
		Less: func(i, j int) bool { return x[i] < x[j] },
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x))
}

// Range sorts x[start:start+length] without touching the rest of x.
func Range[E cmp.Ordered](x []E, start, length int) int {
	return Sort(T{
		Less: func(i, j int) bool { return x[start+i] < x[start+j] },
		Swap: func(i, j int) { x[start+i], x[start+j] = x[start+j], x[start+i] },
	}, length)
}
