package testhelp

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// IsPermutation reports whether x holds every value in [0, len(x)) exactly
// once.
func IsPermutation(x []int) bool {
	bm := roaring.New()
	for _, v := range x {
		if v < 0 || v >= len(x) || !bm.CheckedAdd(uint32(v)) {
			return false
		}
	}
	return bm.GetCardinality() == uint64(len(x))
}
