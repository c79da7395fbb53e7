package blockmerge

import (
	"cmp"

	"github.com/histdb/blockmerge/multiset"
)

// MergeVerified is Merge with every internal invariant rechecked and the
// multiset of the range compared before and after. Violations are reported as
// an *InvariantError. It costs a constant factor over Merge and no extra
// memory.
func MergeVerified[E cmp.Ordered](x []E, start, length int) error {
	e := engine[E]{x: x, less: cmp.Less[E], verify: true}
	if err := e.checkBounds("MergeVerified", start, length); err != nil {
		return err
	}

	before := multiset.Range(x, start, length)
	if err := e.merge("MergeVerified", start, length); err != nil {
		return err
	}
	if after := multiset.Range(x, start, length); after != before {
		return invariantf("MergeVerified", "elements changed: %v -> %v", before, after)
	}
	return nil
}

// SortVerified is Sort built on the checks of MergeVerified.
func SortVerified[E cmp.Ordered](x []E) error {
	e := engine[E]{x: x, less: cmp.Less[E], verify: true}

	before := multiset.Of(x)
	if err := e.sort("SortVerified"); err != nil {
		return err
	}
	if after := multiset.Of(x); after != before {
		return invariantf("SortVerified", "elements changed: %v -> %v", before, after)
	}
	return nil
}
