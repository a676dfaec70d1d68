package tickaxe

// Point is one sample of a serie.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Serie is a titled sequence of points. Its axis ranges follow the
// data unless a fixed range overrides them.
type Serie struct {
	Title  string
	Points []Point

	fixedX *Range
	fixedY *Range
}

// NewSerie builds a serie from y values alone, with points placed at
// x = 0, 1, 2...
func NewSerie(title string, values ...float64) Serie {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = NewPoint(float64(i), v)
	}
	return Serie{
		Title:  title,
		Points: points,
	}
}

// SetFixedX pins the x axis range regardless of the data.
func (s *Serie) SetFixedX(rng Range) {
	s.fixedX = &rng
}

// SetFixedY pins the y axis range regardless of the data.
func (s *Serie) SetFixedY(rng Range) {
	s.fixedY = &rng
}

// XRange returns the fixed x range when set, the span of the x
// values otherwise. NaN data propagates to the result.
func (s Serie) XRange() Range {
	if s.fixedX != nil {
		return *s.fixedX
	}
	return RangeFrom(s.coords(func(pt Point) float64 { return pt.X })...)
}

// YRange returns the fixed y range when set, the span of the y
// values otherwise. NaN data propagates to the result.
func (s Serie) YRange() Range {
	if s.fixedY != nil {
		return *s.fixedY
	}
	return RangeFrom(s.coords(func(pt Point) float64 { return pt.Y })...)
}

func (s Serie) coords(get func(Point) float64) []float64 {
	vs := make([]float64, len(s.Points))
	for i, pt := range s.Points {
		vs[i] = get(pt)
	}
	return vs
}
