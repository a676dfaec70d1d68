package tickaxe

import (
	"fmt"
	"math"
)

// Range is a closed interval of data values. Ranges built with
// NewRange keep -Inf < min <= max < +Inf. RangeFrom may instead
// return the NaN sentinel or the inverted empty range, which callers
// have to check for before use.
type Range struct {
	min float64
	max float64
}

func NewRange(min, max float64) Range {
	if !isFinite(min) || !isFinite(max) || min > max {
		panic(fmt.Sprintf("invalid range: -inf < %g <= %g < +inf does not hold", min, max))
	}
	return Range{
		min: min,
		max: max,
	}
}

// RangeFrom scans values and returns their enclosing range. Without
// any value the result is the inverted (+Inf, -Inf) range and is
// unusable as is: check Size() >= 0 first. A single NaN makes both
// bounds NaN.
func RangeFrom(values ...float64) Range {
	rg := Range{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return Range{min: v, max: v}
		}
		if v < rg.min {
			rg.min = v
		}
		if v > rg.max {
			rg.max = v
		}
	}
	return rg
}

func (r Range) Min() float64 {
	return r.min
}

func (r Range) Max() float64 {
	return r.max
}

func (r Range) Size() float64 {
	return r.max - r.min
}

// ExtendTo grows the range to include v and reports whether a bound
// moved. NaN never compares below min or above max and is ignored.
func (r *Range) ExtendTo(v float64) bool {
	switch {
	case v < r.min:
		r.min = v
	case v > r.max:
		r.max = v
	default:
		return false
	}
	return true
}

func (r *Range) SetMin(min float64) {
	if !isFinite(min) || !(min <= r.max) {
		panic(fmt.Sprintf("invalid minimum %g for range up to %g", min, r.max))
	}
	r.min = min
}

func (r *Range) SetMax(max float64) {
	if !isFinite(max) || !(max >= r.min) {
		panic(fmt.Sprintf("invalid maximum %g for range down to %g", max, r.min))
	}
	r.max = max
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
