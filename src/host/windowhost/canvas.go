package windowhost

import (
	"image/color"

	"github.com/bradbev/bouncer/src/flat"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// canvas paints onto the ebiten screen image for the current Draw call.
type canvas struct {
	dst  *ebiten.Image
	font *flat.Font
	size int
	fill color.Color
}

var _ = flat.Canvas((*canvas)(nil))

func (c *canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Background(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *canvas) Fill(clr color.Color) {
	c.fill = clr
}

func (c *canvas) TextSize(size int) {
	c.size = size
}

func (c *canvas) Text(s string, x, y int) {
	fill := c.fill
	if fill == nil {
		fill = color.White
	}
	text.Draw(c.dst, s, c.font.Face(c.size), x, y, fill)
}

func (c *canvas) TextWidth(s string) int {
	return c.font.Measure(s, c.size)
}
