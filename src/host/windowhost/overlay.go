package windowhost

import (
	"fmt"

	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/flat"
	"github.com/gabstv/ebiten-imgui/renderer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/inkyblackness/imgui-go/v4"
)

// overlay is an imgui window showing the bounce state.  It is an
// Updateable in the game's world so it sees the state after each frame.
type overlay struct {
	mgr     *renderer.Manager
	bouncer *bounce.Bouncer
	font    *flat.Font
	tps     int
}

func newOverlay(b *bounce.Bouncer, font *flat.Font, tps int) *overlay {
	return &overlay{
		mgr:     renderer.New(nil),
		bouncer: b,
		font:    font,
		tps:     tps,
	}
}

func (o *overlay) Update() {
	updateRate := float32(1.0 / 60.0)
	if o.tps > 0 {
		updateRate = 1.0 / float32(o.tps)
	}
	o.mgr.Update(updateRate)
	o.mgr.BeginFrame()
	if imgui.Begin("Bouncer") {
		for _, line := range overlayLines(o.bouncer.Snapshot(), o.textWidth()) {
			imgui.Text(line)
		}
	}
	imgui.End()
	o.mgr.EndFrame()
}

func (o *overlay) textWidth() int {
	s := o.bouncer.Snapshot()
	return o.font.Measure(s.Message, s.FontSize)
}

func (o *overlay) DrawOnto(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.3f\nFPS: %.2f\n", ebiten.ActualTPS(), ebiten.ActualFPS()), 11, 2)
	o.mgr.Draw(screen)
}

func (o *overlay) Layout(w, h int) {
	o.mgr.SetDisplaySize(float32(w), float32(h))
}

func overlayLines(s bounce.AnimationState, textWidth int) []string {
	px, py, period := s.Period(textWidth)
	return []string{
		fmt.Sprintf("frame %d", s.Frame),
		fmt.Sprintf("position (%d, %d)", s.Position.X, s.Position.Y),
		fmt.Sprintf("direction (%+d, %+d)", s.Direction.X, s.Direction.Y),
		fmt.Sprintf("canvas %dx%d, text width %d", s.Width, s.Height, textWidth),
		fmt.Sprintf("x range [0, %d], y range [%d, %d]", s.RightEdge(textWidth), s.FontSize, s.Height),
		fmt.Sprintf("period x %d, y %d, both %d", px, py, period),
		fmt.Sprintf("in bounds %v", s.InBounds(textWidth)),
	}
}
