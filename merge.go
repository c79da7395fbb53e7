// Package blockmerge merges two adjacent sorted runs of a slice in linear
// time using a constant number of index variables, and builds a bottom-up
// merge sort on top of that merge.
//
// The merge borrows the 3Z-2 largest elements of the range (Z = floor(sqrt N))
// as a scratch buffer, cuts both runs into Z sized blocks, orders the blocks
// by their leading element and merges neighbouring blocks through the buffer.
// Equal elements may be reordered.
package blockmerge

import (
	"cmp"
	"math"

	"github.com/histdb/blockmerge/selsort"
)

// Merge sorts x[start:start+length], which must consist of at most two
// ascending runs back to back. A range that is already sorted is left
// untouched.
func Merge[E cmp.Ordered](x []E, start, length int) error {
	return engine[E]{x: x, less: cmp.Less[E]}.merge("Merge", start, length)
}

// MergeFunc is Merge ordered by less, which must be a strict weak ordering.
func MergeFunc[E any](x []E, start, length int, less func(a, b E) bool) error {
	return engine[E]{x: x, less: less}.merge("MergeFunc", start, length)
}

type engine[E any] struct {
	x    []E
	less func(a, b E) bool

	// verify rechecks the run invariants after every transform.
	verify bool
}

func (e engine[E]) checkBounds(op string, start, length int) error {
	if start < 0 || length < 0 || start > len(e.x)-length {
		return preconditionf(op, "range [%d, %d+%d) outside [0, %d)", start, start, length, len(e.x))
	}
	return nil
}

func (e engine[E]) merge(op string, start, length int) error {
	if err := e.checkBounds(op, start, length); err != nil {
		return err
	}

	end := start + length
	bound := firstUnsorted(e.x, start, length, e.less)
	if bound == end {
		return nil
	}
	if firstUnsorted(e.x, bound, end-bound, e.less) != end {
		return preconditionf(op, "range [%d, %d) holds more than two sorted runs", start, end)
	}

	z := isqrt(length)

	r, err := newRegion(start, bound-start, end-bound, 0)
	if err != nil {
		return err
	}

	if r, err = e.extractLargest(r, bufferBlocks*z-bufferSlack); err != nil {
		return err
	} else if err := e.check(op, "extract", r); err != nil {
		return err
	}

	e.sortRange(r.bufStart, r.bufLen)

	if r, err = e.padToBlocks(r, z); err != nil {
		return err
	} else if err := e.check(op, "pad", r); err != nil {
		return err
	}

	e.sortBlocks(r, z)
	e.mergeBlocks(r, z)
	e.sortRange(r.bufStart, r.bufLen)

	if !e.sorted(start, length) {
		return invariantf(op, "range [%d, %d) unsorted after merge", start, end)
	}
	return nil
}

// isqrt returns floor(sqrt(n)).
func isqrt(n int) int {
	z := int(math.Sqrt(float64(n)))
	for z*z > n {
		z--
	}
	for (z+1)*(z+1) <= n {
		z++
	}
	return z
}

func (e engine[E]) sorted(start, length int) bool {
	return firstUnsorted(e.x, start, length, e.less) == start+length
}

// check verifies, when e.verify is set, that both runs of r are sorted and
// that no run element exceeds a buffer element.
func (e engine[E]) check(op, step string, r region) error {
	if !e.verify {
		return nil
	}
	if !e.sorted(r.xsStart, r.xsLen) || !e.sorted(r.ysStart, r.ysLen) {
		return invariantf(op, "%s: runs of %v unsorted", step, r)
	}
	if r.bufLen == 0 {
		return nil
	}

	least := r.bufStart
	for i := r.bufStart + 1; i < r.bufEnd(); i++ {
		if e.less(e.x[i], e.x[least]) {
			least = i
		}
	}
	if r.xsLen > 0 && e.less(e.x[least], e.x[r.xsEnd()-1]) ||
		r.ysLen > 0 && e.less(e.x[least], e.x[r.ysEnd()-1]) {
		return invariantf(op, "%s: buffer of %v holds a small element", step, r)
	}
	return nil
}

// pointToKthBiggest walks inward from the ends of xs and ys for k steps, each
// step consuming the run whose trailing element is larger (ys on ties). The
// returned pointers mark where the surrendered suffixes of xs and ys begin.
// k must not exceed r.runs().
func (e engine[E]) pointToKthBiggest(r region, k int) (xp, yp int) {
	xp, yp = r.xsEnd(), r.ysEnd()
	for ; k > 0; k-- {
		switch {
		case xp <= r.xsStart:
			yp--
		case yp <= r.ysStart:
			xp--
		case !e.less(e.x[yp-1], e.x[xp-1]):
			yp--
		default:
			xp--
		}
	}
	return xp, yp
}

// moveLastToEnd moves the last xsMove elements of xs and the last ysMove
// elements of ys to the front of the buffer with one rotation:
//
//	| xs | big xs | ys | big ys | buf |  ->  | xs | ys | big xs | big ys | buf |
func (e engine[E]) moveLastToEnd(r region, xsMove, ysMove int) (region, error) {
	nr, err := r.resize(r.xsLen-xsMove, r.ysLen-ysMove, r.bufLen+xsMove+ysMove)
	if err != nil {
		return region{}, err
	}
	if n := xsMove + nr.ysLen; n > 0 {
		rotateLeft(e.x, nr.xsEnd(), n, xsMove)
	}
	return nr, nil
}

// extractLargest moves the k largest elements of xs and ys into the buffer,
// leaving both runs sorted.
func (e engine[E]) extractLargest(r region, k int) (region, error) {
	if k < 0 || k > r.runs() {
		return region{}, invariantf("extract", "cannot take %d elements from %v", k, r)
	}
	xp, yp := e.pointToKthBiggest(r, k)
	return e.moveLastToEnd(r, r.xsEnd()-xp, r.ysEnd()-yp)
}

// padToBlocks grows xs and ys to multiples of z using the smallest buffer
// elements: the first ones are rotated in after xs, the next ones already
// follow ys. The buffer must be sorted and must keep at least z elements.
func (e engine[E]) padToBlocks(r region, z int) (region, error) {
	xsNeeds := (z - r.xsLen%z) % z
	ysNeeds := (z - r.ysLen%z) % z

	if r.bufLen-xsNeeds-ysNeeds < z {
		return region{}, invariantf("pad", "buffer of %v too small for z=%d", r, z)
	}
	if xsNeeds > 0 {
		rotateRight(e.x, r.ysStart, r.ysLen+xsNeeds, xsNeeds)
	}
	return r.resize(r.xsLen+xsNeeds, r.ysLen+ysNeeds, r.bufLen-xsNeeds-ysNeeds)
}

// sortBlocks orders the z sized blocks of xs and ys by their first element,
// breaking ties by their last element so blocks of one run keep their order.
func (e engine[E]) sortBlocks(r region, z int) {
	base, x, less := r.xsStart, e.x, e.less
	selsort.Sort(selsort.T{
		Less: func(i, j int) bool {
			a, b := base+i*z, base+j*z
			if less(x[a], x[b]) {
				return true
			} else if less(x[b], x[a]) {
				return false
			}
			return less(x[a+z-1], x[b+z-1])
		},
		Swap: func(i, j int) { swapBlock(x, base+i*z, base+j*z, z) },
	}, r.runs()/z)
}

// mergeBlocks merges each pair of neighbouring blocks, left to right, using
// the first z elements of the buffer as scratch.
func (e engine[E]) mergeBlocks(r region, z int) {
	n := r.runs() / z
	for i := 0; i < n-1; i++ {
		cur := r.xsStart + i*z
		next := cur + z
		if !e.less(e.x[next], e.x[next-1]) {
			continue
		}
		swapBlock(e.x, cur, r.bufStart, z)
		e.mergeInto(r.bufStart, next, cur, z)
	}
}

// mergeInto merges the sorted runs x[xs:xs+length] and x[ys:ys+length] into
// x[target:target+2*length] by swapping, so whatever target held ends up in
// the source slots. The target may cover ys when target+length <= ys: the
// write position then never passes the ys read position.
func (e engine[E]) mergeInto(xs, ys, target, length int) {
	x, less := e.x, e.less
	xi, yi := xs, ys
	xe, ye := xs+length, ys+length

	for t := target; t < target+2*length; t++ {
		if yi >= ye || (xi < xe && !less(x[yi], x[xi])) {
			x[t], x[xi] = x[xi], x[t]
			xi++
		} else {
			x[t], x[yi] = x[yi], x[t]
			yi++
		}
	}
}

func (e engine[E]) sortRange(start, length int) {
	x, less := e.x, e.less
	selsort.Sort(selsort.T{
		Less: func(i, j int) bool { return less(x[start+i], x[start+j]) },
		Swap: func(i, j int) { x[start+i], x[start+j] = x[start+j], x[start+i] },
	}, length)
}
