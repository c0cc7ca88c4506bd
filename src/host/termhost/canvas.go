package termhost

import (
	"image/color"

	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/flat"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// canvas maps one canvas unit to one terminal cell.  Text sizes are
// accepted but every size renders as a single row, with the baseline on
// the row below the text.  The margin is taken off the screen size the
// same way the window host takes it off the window.
type canvas struct {
	screen tcell.Screen
	margin int
	bg     tcell.Color
	fg     tcell.Color
	size   int
}

var _ = flat.Canvas((*canvas)(nil))

func newCanvas(screen tcell.Screen, margin int) *canvas {
	return &canvas{screen: screen, margin: margin, bg: tcell.ColorBlack, fg: tcell.ColorWhite}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (c *canvas) Size() (int, int) {
	w, h := c.screen.Size()
	return bounce.CanvasSize(w, h, c.margin)
}

func (c *canvas) Background(clr color.Color) {
	c.bg = toColor(clr)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.bg))
}

func (c *canvas) Fill(clr color.Color) {
	c.fg = toColor(clr)
}

func (c *canvas) TextSize(size int) {
	c.size = size
}

func (c *canvas) Text(s string, x, y int) {
	style := tcell.StyleDefault.Foreground(c.fg).Background(c.bg)
	row := y - 1
	for _, r := range s {
		c.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (c *canvas) TextWidth(s string) int {
	return runewidth.StringWidth(s)
}
