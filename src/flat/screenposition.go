package flat

import (
	"github.com/deeean/go-vector/vector2"
)

type PositionAnchor int

const (
	UpperLeft PositionAnchor = iota
	UpperCenter
	UpperRight
	CenterLeft
	CenterCenter
	CenterRight
	LowerLeft
	LowerCenter
	LowerRight
)

// ScreenPosition places something relative to one of nine anchors on a
// canvas.  Offsets always point inward, so a LowerRight anchor with
// XPixels 10 sits 10 units left of the right edge.
type ScreenPosition struct {
	Anchor   PositionAnchor
	XPercent float64
	YPercent float64
	XPixels  int
	YPixels  int
}

func (s ScreenPosition) Resolve(w, h int) vector2.Vector2 {
	fw, fh := float64(w), float64(h)
	var startX, startY float64
	dirX, dirY := 1.0, 1.0

	switch s.Anchor {
	case UpperLeft:
		startX, startY = 0, 0
	case UpperCenter:
		startX, startY = fw/2, 0
	case UpperRight:
		startX, startY = fw, 0
		dirX = -1
	case CenterLeft:
		startX, startY = 0, fh/2
	case CenterCenter:
		startX, startY = fw/2, fh/2
	case CenterRight:
		startX, startY = fw, fh/2
		dirX = -1
	case LowerLeft:
		startX, startY = 0, fh
		dirY = -1
	case LowerCenter:
		startX, startY = fw/2, fh
		dirY = -1
	case LowerRight:
		startX, startY = fw, fh
		dirX, dirY = -1, -1
	}

	return vector2.Vector2{
		X: startX + dirX*(float64(s.XPixels)+fw*s.XPercent/100),
		Y: startY + dirY*(float64(s.YPixels)+fh*s.YPercent/100),
	}
}

// Point resolves s and truncates it to whole units.
func (s ScreenPosition) Point(w, h int) Point {
	return PointFromVec(s.Resolve(w, h))
}
