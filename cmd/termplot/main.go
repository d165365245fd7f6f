package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"golang.org/x/term"

	"github.com/vdobler/termplot"
	"github.com/vdobler/termplot/internal/formula"
	"github.com/vdobler/termplot/stat"
)

const (
	defaultWidth = 180

	// columns right of the canvas taken by the y labels
	labelColumns = 12
)

type Plot struct {
	Xmin    float64 `default:"-10" desc:"X-axis start value"`
	Xmax    float64 `default:"10" desc:"X-axis end value"`
	Width   int     `short:"w" default:"0" desc:"Canvas width in points, 0 fits the terminal"`
	Height  int     `short:"h" default:"60" desc:"Canvas height in points"`
	Colors  string  `default:"" desc:"Comma separated line colors"`
	Nice    bool    `desc:"Draw borders and legend"`
	Verbose bool    `short:"v" desc:"Print debug messages"`
	Formula string  `index:"0" desc:"Formula in x, several formulas are separated by ';'"`
}

type Data struct {
	Kind    string `short:"k" default:"lines" desc:"One of points, lines, steps or bars"`
	Xcol    int    `default:"0" desc:"Index of the x column"`
	Ycol    int    `default:"1" desc:"Index of the y column"`
	Xmin    string `desc:"X-axis start value, defaults to the smallest x"`
	Xmax    string `desc:"X-axis end value, defaults to the largest x"`
	Width   int    `short:"w" default:"0" desc:"Canvas width in points, 0 fits the terminal"`
	Height  int    `short:"h" default:"60" desc:"Canvas height in points"`
	Color   string `short:"c" default:"white" desc:"Line color"`
	Nice    bool   `desc:"Draw borders"`
	Verbose bool   `short:"v" desc:"Print debug messages"`
	Input   string `index:"0" desc:"CSV file, - reads standard input"`
}

type Hist struct {
	Col     int    `default:"0" desc:"Index of the value column"`
	Min     string `desc:"Lower bound, defaults to the smallest value"`
	Max     string `desc:"Upper bound, defaults to the largest value"`
	Bins    int    `short:"b" default:"10" desc:"Number of buckets"`
	Width   int    `short:"w" default:"0" desc:"Canvas width in points, 0 fits the terminal"`
	Height  int    `short:"h" default:"60" desc:"Canvas height in points"`
	Color   string `short:"c" default:"white" desc:"Bar color"`
	Verbose bool   `short:"v" desc:"Print debug messages"`
	Input   string `index:"0" desc:"CSV file, - reads standard input"`
}

func main() {
	root := argp.NewCmd(&Plot{}, "Plot functions and data on the terminal")
	root.AddCmd(&Data{}, "data", "Plot x,y columns of a CSV file")
	root.AddCmd(&Hist{}, "hist", "Plot the histogram of a CSV column")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Plot) Run() error {
	if cmd.Formula == "" {
		return argp.ShowUsage
	}
	return cmd.plot(os.Stdout)
}

func (cmd *Plot) plot(w io.Writer) error {
	var srcs []string
	for _, src := range strings.Split(cmd.Formula, ";") {
		if src = strings.TrimSpace(src); src != "" {
			srcs = append(srcs, src)
		}
	}
	if len(srcs) == 0 {
		return fmt.Errorf("no formula in %q", cmd.Formula)
	}
	colors, err := palette(cmd.Colors, len(srcs))
	if err != nil {
		return err
	}

	chart, err := termplot.Make[termplot.Float, termplot.Float](fitWidth(cmd.Width), cmd.Height, cmd.Xmin, cmd.Xmax)
	if err != nil {
		return err
	}
	chart.SetLogger(newLogger(cmd.Verbose))

	titles := make([]string, len(srcs))
	for i, src := range srcs {
		expr, err := formula.Parse(src)
		if err != nil {
			return err
		}
		titles[i] = "y = " + src
		label := ""
		if cmd.Nice {
			label = titles[i]
		}
		chart.LinePlotWithTags(termplot.Function(expr.Func()), label, colors.At(i))
	}

	fmt.Fprintln(w, strings.Join(titles, "; "))
	if cmd.Nice {
		return chart.RenderNice(w)
	}
	return chart.Render(w)
}

// palette parses the comma separated colors. Without colors a single
// formula is drawn in white and several ones cycle DefaultPalette.
func palette(colors string, n int) (termplot.Palette, error) {
	if colors == "" {
		if n > 1 {
			return termplot.DefaultPalette, nil
		}
		return termplot.Palette{termplot.White}, nil
	}
	var p termplot.Palette
	for _, s := range strings.Split(colors, ",") {
		c, err := termplot.ParseColor(s)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

func (cmd *Data) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	return cmd.plot(os.Stdout)
}

func (cmd *Data) plot(w io.Writer) error {
	kind, ok := termplot.ParseKind(cmd.Kind)
	if !ok || kind == termplot.ContinuousKind {
		return fmt.Errorf("unknown kind %q", cmd.Kind)
	}
	color, err := termplot.ParseColor(cmd.Color)
	if err != nil {
		return err
	}

	data, err := loadPairs(cmd.Input, cmd.Xcol, cmd.Ycol)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: no data", cmd.Input)
	}
	lo, hi := xBounds(data)
	xmin, err := parseBound(cmd.Xmin, lo)
	if err != nil {
		return err
	}
	xmax, err := parseBound(cmd.Xmax, hi)
	if err != nil {
		return err
	}
	if xmin > xmax {
		return fmt.Errorf("empty range [%g,%g]", xmin, xmax)
	} else if xmin == xmax {
		xmin, xmax = xmin-1, xmax+1
	}

	chart, err := termplot.Make[termplot.Float, termplot.Float](fitWidth(cmd.Width), cmd.Height, xmin, xmax)
	if err != nil {
		return err
	}
	chart.SetLogger(newLogger(cmd.Verbose))

	chart.LinePlotWithTags(termplot.Of(kind, stat.Pairs(data)), "", color)
	if cmd.Nice {
		chart.Borders()
	}
	return chart.Render(w)
}

func (cmd *Hist) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	return cmd.plot(os.Stdout)
}

func (cmd *Hist) plot(w io.Writer) error {
	if cmd.Bins <= 0 {
		return fmt.Errorf("bins must be positive, %d is provided", cmd.Bins)
	}
	color, err := termplot.ParseColor(cmd.Color)
	if err != nil {
		return err
	}
	values, err := loadPairs(cmd.Input, cmd.Col, cmd.Col)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%s: no data", cmd.Input)
	}
	lo, hi := stat.Bounds(values)
	min, err := parseBound(cmd.Min, lo)
	if err != nil {
		return err
	}
	max, err := parseBound(cmd.Max, hi)
	if err != nil {
		return err
	}
	if min >= max {
		return fmt.Errorf("empty range [%g,%g]", min, max)
	}

	chart, err := termplot.Make[termplot.Float, termplot.Float](fitWidth(cmd.Width), cmd.Height, min, max)
	if err != nil {
		return err
	}
	chart.SetLogger(newLogger(cmd.Verbose))
	chart.LinePlotWithTags(termplot.Bars(histBars(values, min, max, cmd.Bins)), "", color)
	return chart.Render(w)
}

// histBars returns the histogram of values with one more point at max
// closing the last bar.
func histBars(values []stat.Pair, min, max float64, bins int) []termplot.XY {
	pts := stat.Histogram(values, min, max, bins)
	return append(pts, termplot.XY{X: termplot.Float(max), Y: pts[len(pts)-1].Y})
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// fitWidth returns width, or if it is 0 the widest canvas that fits
// the terminal next to the y labels.
func fitWidth(width int) int {
	if width != 0 {
		return width
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return defaultWidth
	}
	width = (cols - labelColumns) * 2
	if width < termplot.MinSize {
		width = termplot.MinSize
	}
	return width
}
