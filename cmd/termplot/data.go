package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vdobler/termplot/stat"
)

// loadPairs reads the columns xcol and ycol of the CSV file name, or
// of standard input if name is "-". Records where either field is not
// a number, such as a header line, are skipped.
func loadPairs(name string, xcol, ycol int) ([]stat.Pair, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := readPairs(r, xcol, ycol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}

func readPairs(r io.Reader, xcol, ycol int) ([]stat.Pair, error) {
	if xcol < 0 || ycol < 0 {
		return nil, errors.New("negative column index")
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var data []stat.Pair
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if xcol >= len(rec) || ycol >= len(rec) {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[xcol]), 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[ycol]), 64)
		if err != nil {
			continue
		}
		data = append(data, stat.Pair{x, y})
	}
	return data, nil
}

// xBounds returns the smallest and largest x of data.
func xBounds(data []stat.Pair) (min, max float64) {
	for i, p := range data {
		if i == 0 || p[0] < min {
			min = p[0]
		}
		if i == 0 || p[0] > max {
			max = p[0]
		}
	}
	return min, max
}

// parseBound parses s, an empty s yields def.
func parseBound(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad bound %q", s)
	}
	return f, nil
}
