package tickaxe

import (
	"testing"
)

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct {
		p    float64
		want float64
	}{
		{0.25, 3.75},
		{0.5, 6.5},
		{0.9, 10},
		{0, 1},
		{1, 10},
	}
	for _, c := range tests {
		if got := Quantile(sorted, c.p); !near(got, c.want) {
			t.Errorf("Quantile(%g) = %g, want %g", c.p, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	sum, err := Summarize([]float64{5, 1, 3, 2, 4})
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{
		Min: 1,
		Q10: 1.6,
		Q25: 2.5,
		Q50: 4,
		Q75: 5,
		Q90: 5,
		Max: 5,
	}
	checks := []struct {
		label string
		got   float64
		want  float64
	}{
		{"min", sum.Min, want.Min},
		{"q10", sum.Q10, want.Q10},
		{"q25", sum.Q25, want.Q25},
		{"q50", sum.Q50, want.Q50},
		{"q75", sum.Q75, want.Q75},
		{"q90", sum.Q90, want.Q90},
		{"max", sum.Max, want.Max},
	}
	for _, c := range checks {
		if !near(c.got, c.want) {
			t.Errorf("%s = %g, want %g", c.label, c.got, c.want)
		}
	}

	out := sum.Outliers([]float64{5, 1, 3, 2, 4})
	if len(out) != 1 || out[0] != 1 {
		t.Errorf("outliers = %v, want [1]", out)
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize(nil); err == nil {
		t.Error("no values: error expected")
	}
	if _, err := Summarize([]float64{1, nan, 3}); err == nil {
		t.Error("NaN values: error expected")
	}
}

func TestSummarizeKeepsInput(t *testing.T) {
	values := []float64{3, 1, 2}
	if _, err := Summarize(values); err != nil {
		t.Fatal(err)
	}
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}
