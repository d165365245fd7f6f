package termplot

// Theme holds the fixed styling of a chart.
type Theme struct {
	// Line is the color of shapes registered without an explicit color.
	Line Color

	// Axis and Border color the dashed axis and border lines. NoColor
	// keeps whatever color the touched cells already have.
	Axis, Border Color

	// Swatch is printed after each legend label.
	Swatch string
}

var DefaultTheme = Theme{
	Line:   White,
	Axis:   NoColor,
	Border: NoColor,
	Swatch: "⠉⠉⠉",
}
