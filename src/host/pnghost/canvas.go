package pnghost

import (
	"image/color"

	"github.com/bradbev/bouncer/src/flat"
	"github.com/fogleman/gg"
)

// canvas draws into an in-memory gg context.
type canvas struct {
	dc   *gg.Context
	font *flat.Font
	size int
	fill color.Color
}

var _ = flat.Canvas((*canvas)(nil))

func newCanvas(w, h int, font *flat.Font) *canvas {
	return &canvas{dc: gg.NewContext(w, h), font: font, fill: color.White}
}

func (c *canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *canvas) Background(clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.Clear()
}

func (c *canvas) Fill(clr color.Color) {
	c.fill = clr
}

func (c *canvas) TextSize(size int) {
	c.size = size
	c.dc.SetFontFace(c.font.Face(size))
}

func (c *canvas) Text(s string, x, y int) {
	c.dc.SetColor(c.fill)
	c.dc.DrawString(s, float64(x), float64(y))
}

func (c *canvas) TextWidth(s string) int {
	return c.font.Measure(s, c.size)
}
