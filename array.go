package blockmerge

import "cmp"

//
// exported primitives validate their arguments and panic with a
// *PreconditionError, the way a slice expression panics when out of range.
//

func checkRange(op string, n, start, length int) {
	if start < 0 || length < 0 || start > n-length {
		panic(preconditionf(op, "range [%d, %d+%d) outside [0, %d)", start, start, length, n))
	}
}

// FirstUnsorted returns the smallest i in (start, start+length) with
// x[i] < x[i-1], or start+length if the range is sorted.
func FirstUnsorted[E cmp.Ordered](x []E, start, length int) int {
	checkRange("FirstUnsorted", len(x), start, length)
	return firstUnsorted(x, start, length, cmp.Less[E])
}

func FirstUnsortedFunc[E any](x []E, start, length int, less func(a, b E) bool) int {
	checkRange("FirstUnsortedFunc", len(x), start, length)
	return firstUnsorted(x, start, length, less)
}

func IsSorted[E cmp.Ordered](x []E, start, length int) bool {
	return FirstUnsorted(x, start, length) == start+length
}

func IsSortedFunc[E any](x []E, start, length int, less func(a, b E) bool) bool {
	return FirstUnsortedFunc(x, start, length, less) == start+length
}

// SwapBlock exchanges x[start:start+k] with x[target:target+k] element by
// element, left to right. The ranges must not overlap unless they are the
// same range, which leaves x unchanged.
func SwapBlock[E any](x []E, start, target, k int) {
	checkRange("SwapBlock", len(x), start, k)
	checkRange("SwapBlock", len(x), target, k)
	if start != target && start < target+k && target < start+k {
		panic(preconditionf("SwapBlock", "ranges [%d, %d) and [%d, %d) overlap",
			start, start+k, target, target+k))
	}
	swapBlock(x, start, target, k)
}

// Invert reverses x[start:start+length].
func Invert[E any](x []E, start, length int) {
	checkRange("Invert", len(x), start, length)
	invert(x, start, length)
}

// RotateLeft rotates x[start:start+length] left by k mod length positions
// with three reversals. The range must not be empty.
func RotateLeft[E any](x []E, start, length, k int) {
	checkRotate("RotateLeft", len(x), start, length, k)
	rotateLeft(x, start, length, k)
}

// RotateRight rotates x[start:start+length] right by k mod length positions.
func RotateRight[E any](x []E, start, length, k int) {
	checkRotate("RotateRight", len(x), start, length, k)
	rotateRight(x, start, length, k)
}

func checkRotate(op string, n, start, length, k int) {
	checkRange(op, n, start, length)
	if length == 0 {
		panic(preconditionf(op, "empty range at %d", start))
	}
	if k < 0 {
		panic(preconditionf(op, "negative rotation %d", k))
	}
}

//
// unchecked versions used by the engine
//

func firstUnsorted[E any](x []E, start, length int, less func(a, b E) bool) int {
	for i := start + 1; i < start+length; i++ {
		if less(x[i], x[i-1]) {
			return i
		}
	}
	return start + length
}

func swapBlock[E any](x []E, start, target, k int) {
	for i := 0; i < k; i++ {
		x[start+i], x[target+i] = x[target+i], x[start+i]
	}
}

func invert[E any](x []E, start, length int) {
	for i, j := start, start+length-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

func rotateLeft[E any](x []E, start, length, k int) {
	k %= length
	invert(x, start, k)
	invert(x, start+k, length-k)
	invert(x, start, length)
}

func rotateRight[E any](x []E, start, length, k int) {
	rotateLeft(x, start, length, length-k%length)
}
