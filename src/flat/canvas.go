package flat

import "image/color"

// Canvas is the drawing surface a host hands to the things it drives each
// frame.  Coordinates are integer units from the upper left, and text is
// drawn with its baseline at y.
type Canvas interface {
	Size() (w, h int)
	Background(c color.Color)
	Fill(c color.Color)
	TextSize(size int)
	Text(s string, x, y int)
	// TextWidth is the width of s at the current text size, truncated to
	// a whole unit.
	TextWidth(s string) int
}

// Measurer reports the width of s at the given text size.
type Measurer interface {
	Measure(s string, size int) int
}

// Gray returns an opaque gray with all channels set to v.
func Gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
