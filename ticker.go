package tickaxe

import (
	"math"
)

// Tick marks a labeled position on an axis: T is the normalized
// location in [0, 1] (0 at the range minimum, 1 at the maximum) and
// Value the data value displayed there.
type Tick struct {
	T     float64
	Value float64
}

// Ticker enumerates tick marks over a data range, at most target of
// them, spaced by a round {1,2,5}x10^n step. It snapshots the range
// it was built with: rebuild it when the range changes.
type Ticker struct {
	rng     Range
	target  int
	spacing float64
}

func NewTicker(rng Range, target int) Ticker {
	return Ticker{
		rng:     rng,
		target:  target,
		spacing: TickSpacing(rng, target),
	}
}

// Spacing is the gap between consecutive ticks. It is NaN when fewer
// than two ticks were asked for or the range has no width.
func (t Ticker) Spacing() float64 {
	return t.spacing
}

// Iter starts a fresh pass over the ticks. Every pass yields the
// same sequence.
func (t Ticker) Iter() *TickIter {
	return &TickIter{ticker: t}
}

// Ticks collects the whole sequence.
func (t Ticker) Ticks() []Tick {
	var (
		it  = t.Iter()
		all []Tick
	)
	for tk, ok := it.Next(); ok; tk, ok = it.Next() {
		all = append(all, tk)
	}
	return all
}

func (t Ticker) first() float64 {
	if t.target <= 2 {
		return t.rng.Min()
	}
	return NextTick(t.rng.Min(), t.spacing)
}

// TickIter walks the ticks of a Ticker in increasing value order.
type TickIter struct {
	ticker Ticker
	next   int
}

func (it *TickIter) Next() (Tick, bool) {
	switch it.ticker.target {
	case 0:
		return Tick{}, false
	case 1:
		if it.next > 0 {
			return Tick{}, false
		}
		it.next++
		return Tick{T: 0, Value: it.ticker.rng.Min()}, true
	case 2:
		// with only two labels show the data extremes instead of
		// computed round numbers
		switch it.next {
		case 0:
			it.next++
			return Tick{T: 0, Value: it.ticker.rng.Min()}, true
		case 1:
			it.next++
			return Tick{T: 1, Value: it.ticker.rng.Max()}, true
		default:
			return Tick{}, false
		}
	default:
		var (
			value = it.ticker.first() + float64(it.next)*it.ticker.spacing
			t     = (value - it.ticker.rng.Min()) / it.ticker.rng.Size()
		)
		// NaN compares false and ends the sequence too
		if t <= 1 {
			it.next++
			return Tick{T: t, Value: value}, true
		}
		return Tick{}, false
	}
}

// TickSpacing returns the gap between ticks over rng that comes
// closest to target marks without exceeding them, while staying a
// round number: 1, 2 or 5 x 10^n. It returns NaN when target <= 1 or
// the range has no width.
func TickSpacing(rng Range, target int) float64 {
	if target <= 1 || rng.Size() == 0 {
		return math.NaN()
	}
	base := powTenTooMany(rng, target)
	// probe 2x, 5x, 10x in that order and keep the first that fits:
	// that is the densest spacing under the cap
	if countTicks(rng, 2*base) <= target {
		return 2 * base
	}
	if countTicks(rng, 5*base) <= target {
		return 5 * base
	}
	return 10 * base
}

// powTenTooMany finds the spacing 10^x that yields strictly more
// ticks than target while 10^(x+1) yields at most target.
func powTenTooMany(rng Range, target int) float64 {
	var (
		steps   = float64(target - 1) // fence/fencepost
		ideal   = rng.Size() / steps
		spacing = math.Pow(10, math.Floor(math.Log10(ideal)))
		first   = NextTick(rng.Min(), spacing)
	)
	// space lost at the ends can leave too few ticks once the first
	// tick is pinned down
	if first+steps*spacing < PrevTick(rng.Max(), spacing) {
		return spacing
	}
	return spacing * 0.1
}

// NextTick returns the smallest multiple of spacing at or above v.
func NextTick(v, spacing float64) float64 {
	diff := remEuclid(v, spacing)
	if diff == 0 {
		return v
	}
	return v - diff + spacing
}

// PrevTick returns the largest multiple of spacing at or below v.
func PrevTick(v, spacing float64) float64 {
	diff := remEuclid(v, spacing)
	if diff == spacing {
		return v
	}
	return v - diff
}

func remEuclid(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += math.Abs(m)
	}
	return r
}

func countTicks(rng Range, spacing float64) int {
	var (
		first = NextTick(rng.Min(), spacing)
		last  = PrevTick(rng.Max(), spacing)
	)
	return int(math.Floor((last-first)/spacing)) + 1
}
