package termplot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame draws the chart and returns the bare canvas text without
// range labels.
func (c *Chart[X, Y]) Frame() string {
	c.redraw()
	return c.canvas.Frame(lipgloss.DefaultRenderer())
}

// Render draws the chart to w. The top row is followed by the maximum
// y value and the bottom row by the minimum; xmin and xmax are printed
// below the canvas. Colors are emitted only if w is a color capable
// terminal.
func (c *Chart[X, Y]) Render(w io.Writer) error {
	c.redraw()

	bw := bufio.NewWriter(w)
	frame := c.canvas.Frame(lipgloss.NewRenderer(w))
	rows := strings.Split(frame, "\n")
	for i, row := range rows {
		switch i {
		case 0:
			fmt.Fprintf(bw, "%s %s\n", row, fromFloat[Y](c.y.Max))
		case len(rows) - 1:
			fmt.Fprintf(bw, "%s %s\n", row, fromFloat[Y](c.y.Min))
		default:
			fmt.Fprintln(bw, row)
		}
	}
	fmt.Fprintln(bw, c.xLabels())
	return bw.Flush()
}

// xLabels returns xmin left aligned and xmax roughly at the right edge
// of the canvas.
func (c *Chart[X, Y]) xLabels() string {
	if isFloatAxis[X]() {
		return fmt.Sprintf("%-*.1f%.1f", c.width/2-3, c.xmin, c.xmax)
	}
	lo := fromFloat[X](c.xmin).String()
	hi := fromFloat[X](c.xmax).String()
	spacing := c.width/2 - (lipgloss.Width(lo) + lipgloss.Width(hi))
	if spacing < 0 {
		spacing = 0
	}
	return fmt.Sprintf("%-*s%-*s%s", spacing, lo, spacing, " ", hi)
}

// RenderLegends writes an empty line followed by one line per label,
// painted in the label's color.
func (c *Chart[X, Y]) RenderLegends(w io.Writer) error {
	r := lipgloss.NewRenderer(w)
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw)
	for _, l := range c.labels {
		fmt.Fprintln(bw, l.Color.Paint(r, fmt.Sprintf("%s: %s", l.Text, c.Theme.Swatch)))
	}
	return bw.Flush()
}

// RenderNice renders the chart with borders followed by the legend.
func (c *Chart[X, Y]) RenderNice(w io.Writer) error {
	c.Borders()
	if err := c.Render(w); err != nil {
		return err
	}
	return c.RenderLegends(w)
}

// Display prints the chart to standard output.
func (c *Chart[X, Y]) Display() {
	c.report(c.Render(os.Stdout))
}

// Legends prints the legend to standard output.
func (c *Chart[X, Y]) Legends() {
	c.report(c.RenderLegends(os.Stdout))
}

// Nice prints the chart with borders and legend to standard output.
func (c *Chart[X, Y]) Nice() {
	c.report(c.RenderNice(os.Stdout))
}

func (c *Chart[X, Y]) report(err error) {
	if err != nil {
		c.logger.Error("cannot print chart", "err", err)
	}
}
