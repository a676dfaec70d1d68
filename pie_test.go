package tickaxe

import (
	"math"
	"testing"
)

func TestSectors(t *testing.T) {
	sectors := Sectors([]int{1, 1, 2})
	if len(sectors) != 3 {
		t.Fatalf("got %d sectors, want 3", len(sectors))
	}
	want := []Sector{
		{Start: 0, Sweep: math.Pi / 2, Fraction: 0.25},
		{Start: math.Pi / 2, Sweep: math.Pi / 2, Fraction: 0.25},
		{Start: math.Pi, Sweep: math.Pi, Fraction: 0.5},
	}
	var total float64
	for i, s := range sectors {
		if !near(s.Start, want[i].Start) || !near(s.Sweep, want[i].Sweep) || !near(s.Fraction, want[i].Fraction) {
			t.Errorf("sector %d = %+v, want %+v", i, s, want[i])
		}
		total += s.Sweep
	}
	if !near(total, 2*math.Pi) {
		t.Errorf("sweeps sum to %g, want 2 pi", total)
	}
}

func TestSectorsDegenerate(t *testing.T) {
	if got := Sectors(nil); got != nil {
		t.Errorf("no counts: want nil, got %v", got)
	}
	if got := Sectors([]int{0, 0}); got != nil {
		t.Errorf("zero total: want nil, got %v", got)
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 float64
		wx0, wy0, wx1, wy1 float64
	}{
		{0, 0, 10, 20, 0, 5, 10, 15},
		{0, 0, 20, 10, 5, 0, 15, 10},
		{2, 3, 7, 8, 2, 3, 7, 8},
	}
	for _, c := range tests {
		x0, y0, x1, y1 := Square(c.x0, c.y0, c.x1, c.y1)
		if x0 != c.wx0 || y0 != c.wy0 || x1 != c.wx1 || y1 != c.wy1 {
			t.Errorf("Square(%g, %g, %g, %g) = (%g, %g, %g, %g), want (%g, %g, %g, %g)",
				c.x0, c.y0, c.x1, c.y1, x0, y0, x1, y1, c.wx0, c.wy0, c.wx1, c.wy1)
		}
	}
}
