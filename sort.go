package blockmerge

import "cmp"

// Sort sorts x in place with a bottom-up merge sort that merges windows of
// doubling size with Merge. It runs in O(n log n) time and allocates nothing
// proportional to len(x).
func Sort[E cmp.Ordered](x []E) error {
	return engine[E]{x: x, less: cmp.Less[E]}.sort("Sort")
}

// SortFunc is Sort ordered by less, which must be a strict weak ordering.
func SortFunc[E any](x []E, less func(a, b E) bool) error {
	return engine[E]{x: x, less: less}.sort("SortFunc")
}

func (e engine[E]) sort(op string) error {
	n := len(e.x)
	for size := 1; size < n; size *= 2 {
		for lo := 0; lo+size < n; lo += 2 * size {
			if err := e.merge(op, lo, min(2*size, n-lo)); err != nil {
				return err
			}
		}
	}
	return nil
}
