package termplot

import "errors"

// MinSize is the smallest width and height of a chart canvas in dots.
const MinSize = 32

var (
	ErrTooNarrow = errors.New("width should be more than 32")
	ErrTooShort  = errors.New("height should be more than 32")
	ErrBadColor  = errors.New("unknown color")
)
