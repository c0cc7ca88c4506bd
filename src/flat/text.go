package flat

import "image/color"

// Label is a single line of text drawn with its own size and color.
type Label struct {
	Text  string
	Size  int
	Color color.RGBA
}

// DrawAt selects the label's size and color on c and draws it with its
// baseline at p.  The size and color stay selected afterwards.
func (l Label) DrawAt(c Canvas, p Point) {
	c.TextSize(l.Size)
	c.Fill(l.Color)
	c.Text(l.Text, p.X, p.Y)
}

func (l Label) Width(m Measurer) int {
	return m.Measure(l.Text, l.Size)
}
