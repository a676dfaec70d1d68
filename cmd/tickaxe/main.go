package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/slices"
	"github.com/midbel/tickaxe"
	"github.com/midbel/tickaxe/dataset"
)

const (
	defaultWidth  = 800.0
	defaultHeight = 600.0
)

func main() {
	var (
		xcol   = flag.Int("xcol", 0, "index of x column")
		ycol   = flag.Int("ycol", 1, "index of y column")
		ticks  = flag.Int("ticks", 0, "tick target for both axis (0: derive from size)")
		xdom   = flag.String("xdom", "", "fixed domain for x values (min:max)")
		ydom   = flag.String("ydom", "", "fixed domain for y values (min:max)")
		zero   = flag.Bool("zero", false, "include zero on the y axis")
		offset = flag.Int("offset", 0, "number of rows to skip (negative: keep the tail)")
		count  = flag.Int("count", 0, "number of rows to keep")
		width  = flag.Float64("width", defaultWidth, "axis width in pixels")
		height = flag.Float64("height", defaultHeight, "axis height in pixels")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input file given")
		os.Exit(1)
	}
	var files []dataset.File
	for _, a := range flag.Args() {
		files = append(files, dataset.File{
			Path: a,
			X:    *xcol,
			Y:    *ycol,
			Limit: dataset.Limit{
				Offset: *offset,
				Count:  *count,
			},
		})
	}
	series, err := dataset.LoadAll(files)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	xrange, err := mergeRange(series, *xdom, tickaxe.Serie.XRange)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	yrange, err := mergeRange(series, *ydom, tickaxe.Serie.YRange)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	xscale := tickaxe.NewScaleX(xrange)
	xscale.SetLength(*width)
	yscale := tickaxe.NewScaleY(yrange)
	yscale.SetLength(*height)
	if *zero {
		yscale.IncludeZero()
	}
	if *ticks > 0 {
		xscale.SetTarget(*ticks)
		yscale.SetTarget(*ticks)
	}

	for _, s := range series {
		fmt.Printf("serie %s: %d points\n", s.Title, len(s.Points))
	}
	printAxis("x", xscale)
	printAxis("y", yscale)
}

func printAxis(name string, scale *tickaxe.Scale) {
	var (
		tk = scale.Ticker()
		rg = scale.Range()
	)
	fmt.Printf("%s axis: range [%s, %s], spacing %s\n", name,
		formatValue(rg.Min()), formatValue(rg.Max()), formatValue(tk.Spacing()))
	it := tk.Iter()
	for t, ok := it.Next(); ok; t, ok = it.Next() {
		fmt.Printf("  %-12s t=%.4f px=%.1f\n", formatValue(t.Value), t.T, scale.Pixel(t.Value))
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}

func mergeRange(series []tickaxe.Serie, dom string, get func(tickaxe.Serie) tickaxe.Range) (tickaxe.Range, error) {
	if dom != "" {
		return parseRange(dom)
	}
	var rg tickaxe.Range
	for i, s := range series {
		sr := get(s)
		if math.IsNaN(sr.Size()) {
			return rg, fmt.Errorf("%s: data contains NaN", s.Title)
		}
		if sr.Size() < 0 {
			return rg, fmt.Errorf("%s: serie is empty", s.Title)
		}
		if i == 0 {
			rg = sr
			continue
		}
		rg.ExtendTo(sr.Min())
		rg.ExtendTo(sr.Max())
	}
	return rg, nil
}

func parseRange(str string) (tickaxe.Range, error) {
	var rg tickaxe.Range
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return rg, fmt.Errorf("invalid number of values given for domain")
	}
	fn, err := strconv.ParseFloat(slices.Fst(vs), 64)
	if err != nil {
		return rg, err
	}
	tn, err := strconv.ParseFloat(slices.Lst(vs), 64)
	if err != nil {
		return rg, err
	}
	if math.IsNaN(fn) || math.IsInf(fn, 0) || math.IsNaN(tn) || math.IsInf(tn, 0) || fn > tn {
		return rg, fmt.Errorf("%s: invalid domain", str)
	}
	return tickaxe.NewRange(fn, tn), nil
}
