package tickaxe

import (
	"fmt"
	"math"
	"sort"

	"github.com/midbel/slices"
)

// Summary holds the order statistics a box plot is drawn from: the
// box spans Q25..Q75, the whiskers reach Q10 and Q90.
type Summary struct {
	Min float64
	Q10 float64
	Q25 float64
	Q50 float64
	Q75 float64
	Q90 float64
	Max float64
}

// Summarize sorts a copy of values and computes its box plot
// statistics. Values containing NaN can not be ordered and are
// refused.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("summarize: no values given")
	}
	data := make([]float64, len(values))
	copy(data, values)
	for _, v := range data {
		if math.IsNaN(v) {
			return Summary{}, fmt.Errorf("summarize: values contain NaN")
		}
	}
	sort.Float64s(data)
	sum := Summary{
		Min: slices.Fst(data),
		Q10: Quantile(data, 0.1),
		Q25: Quantile(data, 0.25),
		Q50: Quantile(data, 0.5),
		Q75: Quantile(data, 0.75),
		Q90: Quantile(data, 0.9),
		Max: slices.Lst(data),
	}
	return sum, nil
}

// Outliers returns the values falling outside the whiskers.
func (s Summary) Outliers(values []float64) []float64 {
	var out []float64
	for _, v := range values {
		if v < s.Q10 || v > s.Q90 {
			out = append(out, v)
		}
	}
	return out
}

// Quantile interpolates the pth quantile of already sorted values
// with the p(n+1) rule. Indexes saturate at the ends, so extreme
// quantiles return the first or last order statistic.
func Quantile(sorted []float64, p float64) float64 {
	var (
		np1   = float64(len(sorted) + 1)
		k     = math.Floor(p * np1)
		alpha = p*np1 - k
		xk    = at(sorted, int(k))
		xk1   = at(sorted, int(k)+1)
	)
	return xk + alpha*(xk1-xk)
}

func at(sorted []float64, k int) float64 {
	if k < 0 {
		k = 0
	}
	if k >= len(sorted) {
		k = len(sorted) - 1
	}
	return sorted[k]
}
