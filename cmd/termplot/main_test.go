package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/test"

	"github.com/vdobler/termplot"
	"github.com/vdobler/termplot/stat"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestHistBars(t *testing.T) {
	values := []stat.Pair{{0, 0}, {9, 9}, {10, 10}}
	test.T(t, histBars(values, 0, 10, 2), []termplot.XY{{X: 0, Y: 1}, {X: 5, Y: 1}, {X: 10, Y: 1}})
}

func TestHistPlot(t *testing.T) {
	cmd := &Hist{
		Bins:   2,
		Width:  64,
		Height: 32,
		Color:  "red",
		Input:  writeCSV(t, "1\n2\n2\n3\n"),
	}
	var buf bytes.Buffer
	test.Error(t, cmd.plot(&buf))
	lines := outputLines(&buf)
	test.T(t, len(lines), 32/4+1+1)
	test.That(t, strings.HasSuffix(lines[0], " 2.0"), lines[0])
	test.That(t, strings.HasSuffix(lines[8], " 1.0"), lines[8])
	test.String(t, lines[9], fmt.Sprintf("%-29s%s", "1.0", "3.0"))
}

func TestHistErrors(t *testing.T) {
	input := writeCSV(t, "1\n2\n")
	tests := []Hist{
		{Bins: 0, Width: 64, Height: 32, Input: input},
		{Bins: 2, Min: "3", Max: "1", Width: 64, Height: 32, Input: input},
		{Bins: 2, Color: "mauve", Width: 64, Height: 32, Input: input},
		{Bins: 2, Width: 64, Height: 32, Input: writeCSV(t, "a\nb\n")},
		{Bins: 2, Width: 64, Height: 32, Input: filepath.Join(t.TempDir(), "missing.csv")},
	}
	for i, cmd := range tests {
		var buf bytes.Buffer
		if err := cmd.plot(&buf); err == nil {
			t.Errorf("%d: expected error", i)
		}
	}
}

func TestDataPlot(t *testing.T) {
	cmd := &Data{
		Kind:   "lines",
		Ycol:   1,
		Width:  64,
		Height: 32,
		Color:  "white",
		Input:  writeCSV(t, "x,y\n0,1\n1,3\n2,2\n"),
	}
	var buf bytes.Buffer
	test.Error(t, cmd.plot(&buf))
	lines := outputLines(&buf)
	test.That(t, strings.HasSuffix(lines[0], " 3.0"), lines[0])
	test.That(t, strings.HasSuffix(lines[8], " 1.0"), lines[8])
	test.String(t, lines[9], fmt.Sprintf("%-29s%s", "0.0", "2.0"))
}

func TestDataRange(t *testing.T) {
	input := writeCSV(t, "0,1\n1,3\n")
	tests := []struct {
		xmin, xmax string
		ok         bool
	}{
		{"", "", true},
		{"-1", "5", true},
		{"1", "1", true},
		{"5", "1", false},
		{"a", "", false},
	}
	for i, tc := range tests {
		cmd := &Data{Kind: "points", Ycol: 1, Xmin: tc.xmin, Xmax: tc.xmax, Width: 64, Height: 32, Input: input}
		var buf bytes.Buffer
		if err := cmd.plot(&buf); (err == nil) != tc.ok {
			t.Errorf("%d: [%q,%q] got error %v", i, tc.xmin, tc.xmax, err)
		}
	}

	cmd := &Data{Kind: "continuous", Ycol: 1, Width: 64, Height: 32, Input: input}
	test.That(t, cmd.plot(&bytes.Buffer{}) != nil, "continuous needs a function")
}

func TestPalette(t *testing.T) {
	p, err := palette("", 1)
	test.Error(t, err)
	test.T(t, p, termplot.Palette{termplot.White})

	p, err = palette("", 3)
	test.Error(t, err)
	test.T(t, p, termplot.DefaultPalette)

	p, err = palette("red,#00ff00", 2)
	test.Error(t, err)
	test.T(t, p, termplot.Palette{termplot.Red, "#00ff00"})

	_, err = palette("nope", 1)
	test.That(t, err != nil)
}

func TestPlotFormulas(t *testing.T) {
	cmd := &Plot{Xmin: -1, Xmax: 1, Width: 64, Height: 32, Formula: "x; x^2"}
	var buf bytes.Buffer
	test.Error(t, cmd.plot(&buf))
	lines := outputLines(&buf)
	test.String(t, lines[0], "y = x; y = x^2")
	test.T(t, len(lines), 1+32/4+1+1)

	cmd = &Plot{Xmin: -1, Xmax: 1, Width: 64, Height: 32, Nice: true, Formula: "sin(x)"}
	buf.Reset()
	test.Error(t, cmd.plot(&buf))
	test.That(t, strings.HasSuffix(buf.String(), "\ny = sin(x): ⠉⠉⠉\n"), buf.String())

	for _, f := range []string{" ; ", "x +", "y"} {
		cmd = &Plot{Xmin: -1, Xmax: 1, Width: 64, Height: 32, Formula: f}
		test.That(t, cmd.plot(&bytes.Buffer{}) != nil, f)
	}
}

func TestCommandsDeclare(t *testing.T) {
	// short flags must not collide, -h is taken by height
	root := argp.NewCmd(&Plot{}, "")
	root.AddCmd(&Data{}, "data", "")
	root.AddCmd(&Hist{}, "hist", "")
}
