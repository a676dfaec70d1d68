package tickaxe

// Bar is one histogram bar, placed from the top left corner of the
// drawing area.
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// HistogramRange returns the y axis range of a histogram: zero up to
// the tallest count.
func HistogramRange(counts []int) Range {
	var max int
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return NewRange(0, float64(max))
}

// HistogramBars lays out one equal width bar per count inside a
// width x height area, with spacing between the bars and at both
// edges. It returns nil when the gaps alone do not fit.
func HistogramBars(counts []int, width, height, spacing float64) []Bar {
	var (
		n     = float64(len(counts))
		space = (n + 1) * spacing
	)
	if len(counts) == 0 || space >= width {
		return nil
	}
	var (
		max  = HistogramRange(counts).Max()
		barw = (width - space) / n
		bars = make([]Bar, 0, len(counts))
	)
	for i, c := range counts {
		var h float64
		if max > 0 {
			h = float64(c) / max * height
		}
		bars = append(bars, Bar{
			X:      spacing + float64(i)*(barw+spacing),
			Y:      height - h,
			Width:  barw,
			Height: h,
		})
	}
	return bars
}
