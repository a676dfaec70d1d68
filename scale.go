package tickaxe

import (
	"math"
)

// Direction tells which axis a scale lays out. Pixels grow rightward
// on the x axis and downward on the y axis.
type Direction int

const (
	DirectionX Direction = iota
	DirectionY
)

// MaxLabels guesses how many labels fit on an axis of the given
// pixel length.
func (d Direction) MaxLabels(length float64) int {
	if d == DirectionY {
		return int(math.Floor(length/40)) + 1
	}
	return int(math.Floor(length/100)) + 1
}

// Scale retains the ticks computed for one axis and rebuilds them
// only when the data range, the label target or the axis length
// changes.
type Scale struct {
	dir    Direction
	rng    Range
	length float64
	target int

	ticker *Ticker
}

func NewScaleX(rng Range) *Scale {
	return &Scale{dir: DirectionX, rng: rng}
}

func NewScaleY(rng Range) *Scale {
	return &Scale{dir: DirectionY, rng: rng}
}

func (s *Scale) Range() Range {
	return s.rng
}

func (s *Scale) SetRange(rng Range) {
	if s.rng != rng {
		s.rng = rng
		s.invalidate()
	}
}

// SetLength sets the pixel length of the axis.
func (s *Scale) SetLength(length float64) {
	length = math.Abs(length)
	if s.length != length {
		s.length = length
		s.invalidate()
	}
}

// SetTarget overrides the label count guessed from the axis length.
// A target of 0 restores the guess.
func (s *Scale) SetTarget(target int) {
	if s.target != target {
		s.target = target
		s.invalidate()
	}
}

// IncludeZero stretches the range to contain the origin.
func (s *Scale) IncludeZero() {
	if s.rng.ExtendTo(0) {
		s.invalidate()
	}
}

// Ticker returns the ticker for the current range, target and
// length, rebuilding it when stale.
func (s *Scale) Ticker() Ticker {
	if s.ticker == nil {
		tk := NewTicker(s.rng, s.labels())
		s.ticker = &tk
	}
	return *s.ticker
}

func (s *Scale) Ticks() []Tick {
	return s.Ticker().Ticks()
}

// Pixel maps a data value onto the axis. The minimum of the range
// sits at pixel 0 on an x axis and at the bottom of a y axis.
func (s *Scale) Pixel(v float64) float64 {
	t := (v - s.rng.Min()) / s.rng.Size()
	if s.dir == DirectionY {
		return (1 - t) * s.length
	}
	return t * s.length
}

func (s *Scale) labels() int {
	if s.target > 0 {
		return s.target
	}
	return s.dir.MaxLabels(s.length)
}

func (s *Scale) invalidate() {
	s.ticker = nil
}
