package blockmerge

import "fmt"

// region splits one contiguous range into three consecutive zones: two sorted
// runs xs and ys, then an unordered buffer. Starts are derived from the
// lengths so the zones are always adjacent.
type region struct {
	xsStart, xsLen   int
	ysStart, ysLen   int
	bufStart, bufLen int
}

func newRegion(start, xsLen, ysLen, bufLen int) (region, error) {
	if xsLen < 0 || ysLen < 0 || bufLen < 0 {
		return region{}, invariantf("region", "negative length in xs=%d ys=%d buf=%d",
			xsLen, ysLen, bufLen)
	}
	return region{
		xsStart:  start,
		xsLen:    xsLen,
		ysStart:  start + xsLen,
		ysLen:    ysLen,
		bufStart: start + xsLen + ysLen,
		bufLen:   bufLen,
	}, nil
}

// resize keeps xsStart and recomputes every other bound.
func (r region) resize(xsLen, ysLen, bufLen int) (region, error) {
	return newRegion(r.xsStart, xsLen, ysLen, bufLen)
}

func (r region) xsEnd() int  { return r.xsStart + r.xsLen }
func (r region) ysEnd() int  { return r.ysStart + r.ysLen }
func (r region) bufEnd() int { return r.bufStart + r.bufLen }

// runs is the number of elements held by xs and ys together.
func (r region) runs() int { return r.xsLen + r.ysLen }

func (r region) String() string {
	return fmt.Sprintf("(region xs=[%d,%d) ys=[%d,%d) buf=[%d,%d))",
		r.xsStart, r.xsEnd(), r.ysStart, r.ysEnd(), r.bufStart, r.bufEnd())
}
