package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/tickaxe"
	"golang.org/x/sync/errgroup"
)

// Limit windows the rows kept from a source. A negative offset
// counts from the end.
type Limit struct {
	Offset int
	Count  int
}

// File is a CSV source of points, either a local path or an http(s)
// URL. X and Y give the column indexes to read.
type File struct {
	Path  string
	Ident string
	X     int
	Y     int
	Limit
}

func (f File) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

// Load reads the source and returns its serie.
func (f File) Load() (tickaxe.Serie, error) {
	r, err := readFrom(f.Path)
	if err != nil {
		return tickaxe.Serie{}, err
	}
	defer r.Close()

	points, err := ReadPoints(r, f.X, f.Y)
	if err != nil {
		return tickaxe.Serie{}, fmt.Errorf("%s: %w", f.Path, err)
	}
	ser := tickaxe.Serie{
		Title:  f.Name(),
		Points: f.window(points),
	}
	return ser, nil
}

// LoadAll loads every source concurrently. Results keep the order of
// the given files.
func LoadAll(files []File) ([]tickaxe.Serie, error) {
	var (
		grp    errgroup.Group
		series = make([]tickaxe.Serie, len(files))
	)
	for i := range files {
		i := i
		grp.Go(func() error {
			ser, err := files[i].Load()
			if err == nil {
				series[i] = ser
			}
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

// ReadPoints decodes CSV rows into points, skipping the header row.
func ReadPoints(r io.Reader, x, y int) ([]tickaxe.Point, error) {
	var (
		rs     = csv.NewReader(r)
		points []tickaxe.Point
	)
	rs.Read()
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if x < 0 || x >= len(row) || y < 0 || y >= len(row) {
			return nil, fmt.Errorf("invalid x/y index columns given")
		}
		pt, err := getPoint(row[x], row[y])
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}

func (f File) window(points []tickaxe.Point) []tickaxe.Point {
	var (
		z   = len(points)
		off = f.Offset
	)
	if off < 0 {
		off = z + off
	}
	if off > 0 && off < z {
		points = points[off:]
	}
	if f.Count > 0 && f.Count < len(points) {
		points = points[:f.Count]
	}
	return points
}

func getPoint(x, y string) (tickaxe.Point, error) {
	var (
		pt  tickaxe.Point
		err error
	)
	if pt.X, err = strconv.ParseFloat(x, 64); err != nil {
		return pt, err
	}
	pt.Y, err = strconv.ParseFloat(y, 64)
	return pt, err
}

func readFrom(location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("request does not end with success result code")
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
