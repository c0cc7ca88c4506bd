package flat

import (
	"github.com/deeean/go-vector/vector2"
)

// Point is an integer position on a Canvas.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Vec() vector2.Vector2 {
	return vector2.Vector2{X: float64(p.X), Y: float64(p.Y)}
}

// PointFromVec truncates v toward zero.
func PointFromVec(v vector2.Vector2) Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}
