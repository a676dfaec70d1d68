package tickaxe

import (
	"math"
)

// Sector is one pie slice. Angles are in radians from the positive
// x axis.
type Sector struct {
	Start    float64
	Sweep    float64
	Fraction float64
}

// Sectors splits the full circle between counts, each sweep
// proportional to its share of the total. An empty or zero total
// yields nil.
func Sectors(counts []int) []Sector {
	var total int
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return nil
	}
	var (
		start   float64
		sectors = make([]Sector, 0, len(counts))
	)
	for _, c := range counts {
		var (
			frac  = float64(c) / float64(total)
			sweep = frac * 2 * math.Pi
		)
		sectors = append(sectors, Sector{
			Start:    start,
			Sweep:    sweep,
			Fraction: frac,
		})
		start += sweep
	}
	return sectors
}

// Square shrinks the rectangle (x0, y0)-(x1, y1) to the largest
// square sharing its center.
func Square(x0, y0, x1, y1 float64) (float64, float64, float64, float64) {
	var (
		width  = x1 - x0
		height = y1 - y0
	)
	switch {
	case width == height:
	case width < height:
		half := (height - width) / 2
		y0 += half
		y1 -= half
	default:
		half := (width - height) / 2
		x0 += half
		x1 -= half
	}
	return x0, y0, x1, y1
}
