package bounce

import (
	"github.com/bradbev/bouncer/src/flat"
)

// AnimationState is everything that changes from frame to frame, plus the
// canvas size and text the frame is computed against.
type AnimationState struct {
	// Position is the left edge and baseline of the message.
	Position flat.Point
	// Direction holds -1 or +1 per axis.
	Direction flat.Point

	FontSize   int
	FooterSize int
	Message    string
	Footer     string

	Width  int
	Height int

	// Frame counts AdvanceFrame calls since Initialize.
	Frame uint64
}

// RightEdge is the largest X the message may reach given its width.
func (s AnimationState) RightEdge(textWidth int) int {
	return s.Width - textWidth
}

// InBounds reports whether the message lies inside the bounce area.
func (s AnimationState) InBounds(textWidth int) bool {
	return s.Position.X >= 0 && s.Position.X <= s.RightEdge(textWidth) &&
		s.Position.Y >= s.FontSize && s.Position.Y <= s.Height
}

// Period is the number of frames after which each axis, and then the pair,
// repeats.  An axis with no room to move reports 0, as does the pair.
func (s AnimationState) Period(textWidth int) (x, y, combined int) {
	if span := s.RightEdge(textWidth); span > 0 {
		x = 2 * span
	}
	if span := s.Height - s.FontSize; span > 0 {
		y = 2 * span
	}
	if x == 0 || y == 0 {
		return x, y, 0
	}
	return x, y, x / gcd(x, y) * y
}

// Bouncer moves the message one unit per axis per frame and reverses an
// axis when the message lands exactly on that axis's edge.  Only one
// goroutine may drive a Bouncer.
type Bouncer struct {
	scene  *Scene
	footer flat.Label
	state  AnimationState
}

var (
	_ = flat.Drawable((*Bouncer)(nil))
	_ = flat.Playable((*Bouncer)(nil))
)

func New(scene *Scene) *Bouncer {
	if scene == nil {
		scene = DefaultScene()
	}
	return &Bouncer{
		scene: scene,
		footer: flat.Label{
			Text:  scene.Footer,
			Size:  scene.FooterSize,
			Color: scene.FooterColor,
		},
	}
}

func NewDefault() *Bouncer {
	return New(DefaultScene())
}

// Initialize takes the canvas size, clears it and puts the message in the
// upper left corner heading down and right.
func (b *Bouncer) Initialize(c flat.Canvas) {
	w, h := c.Size()
	c.Background(b.scene.BackgroundColor)
	c.TextSize(b.scene.MessageSize)
	b.state = AnimationState{
		Position:   flat.Point{X: 0, Y: b.scene.MessageSize},
		Direction:  flat.Point{X: 1, Y: 1},
		FontSize:   b.scene.MessageSize,
		FooterSize: b.scene.FooterSize,
		Message:    b.scene.Message,
		Footer:     b.scene.Footer,
		Width:      w,
		Height:     h,
	}
}

// AdvanceFrame draws the current frame, then steps the message and flips
// any axis whose new coordinate equals its edge.  The comparison is exact:
// a coordinate already past its edge (after a Resize, say) keeps going.
func (b *Bouncer) AdvanceFrame(c flat.Canvas) {
	s := &b.state

	c.TextSize(s.FontSize)
	c.Fill(b.scene.MessageColor)
	c.Background(b.scene.BackgroundColor)
	c.Text(s.Message, s.Position.X, s.Position.Y)

	s.Position = s.Position.Add(s.Direction)

	if s.Position.X == s.RightEdge(c.TextWidth(s.Message)) {
		s.Direction.X = -1
	} else if s.Position.X == 0 {
		s.Direction.X = 1
	}
	if s.Position.Y == s.Height {
		s.Direction.Y = -1
	} else if s.Position.Y == s.FontSize {
		s.Direction.Y = 1
	}

	b.footer.DrawAt(c, b.FooterPoint())
	s.Frame++
}

// FooterPoint is where the footer baseline starts for the current canvas.
func (b *Bouncer) FooterPoint() flat.Point {
	return b.scene.FooterPosition.Point(b.state.Width, b.state.Height)
}

func (b *Bouncer) BeginPlay(c flat.Canvas) {
	b.Initialize(c)
}

func (b *Bouncer) Draw(c flat.Canvas) {
	b.AdvanceFrame(c)
}

// Resize changes the canvas size the edges are computed from.  Position
// and direction are left alone.
func (b *Bouncer) Resize(width, height int) {
	b.state.Width = width
	b.state.Height = height
}

// Snapshot returns a copy of the current state.
func (b *Bouncer) Snapshot() AnimationState {
	return b.state
}

// Period returns how many frames each axis takes to return to the same
// position and direction, and how many the pair takes.
func (b *Bouncer) Period(textWidth int) (x, y, combined int) {
	return b.state.Period(textWidth)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
