package flat

import (
	"image/color"
)

type OpKind uint8

const (
	OpBackground OpKind = iota
	OpFill
	OpTextSize
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpBackground:
		return "Background"
	case OpFill:
		return "Fill"
	case OpTextSize:
		return "TextSize"
	case OpText:
		return "Text"
	}
	return "Unknown"
}

// DrawOp is a single recorded Canvas call.  Only the fields relevant to
// Kind are set.
type DrawOp struct {
	Kind  OpKind
	Color color.Color
	Size  int
	Text  string
	At    Point
}

// DisplayList is a Canvas that records calls so they can be replayed onto
// another Canvas later.  Hosts whose update and paint steps are separate
// (ebiten calls Update and Draw independently) run a frame into a
// DisplayList and replay it when painting.
type DisplayList struct {
	w, h     int
	measurer Measurer
	size     int
	ops      []DrawOp
}

var _ = Canvas((*DisplayList)(nil))

func NewDisplayList(w, h int, measurer Measurer) *DisplayList {
	return &DisplayList{w: w, h: h, measurer: measurer}
}

func (d *DisplayList) Size() (int, int) {
	return d.w, d.h
}

func (d *DisplayList) Resize(w, h int) {
	d.w, d.h = w, h
}

func (d *DisplayList) Background(c color.Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpBackground, Color: c})
}

func (d *DisplayList) Fill(c color.Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpFill, Color: c})
}

func (d *DisplayList) TextSize(size int) {
	d.size = size
	d.ops = append(d.ops, DrawOp{Kind: OpTextSize, Size: size})
}

func (d *DisplayList) Text(s string, x, y int) {
	d.ops = append(d.ops, DrawOp{Kind: OpText, Text: s, At: Point{X: x, Y: y}})
}

func (d *DisplayList) TextWidth(s string) int {
	if d.measurer == nil {
		return 0
	}
	return d.measurer.Measure(s, d.size)
}

// Ops returns the recorded calls.  The slice is reused after Reset.
func (d *DisplayList) Ops() []DrawOp {
	return d.ops
}

// Reset drops the recorded calls but keeps the current text size, the same
// way a host keeps its text state between frames.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

func (d *DisplayList) Replay(c Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpBackground:
			c.Background(op.Color)
		case OpFill:
			c.Fill(op.Color)
		case OpTextSize:
			c.TextSize(op.Size)
		case OpText:
			c.Text(op.Text, op.At.X, op.At.Y)
		}
	}
}
