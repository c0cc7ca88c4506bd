package termhost

import (
	"context"
	"testing"
	"time"

	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/flat"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, row, from, n int) string {
	var out []rune
	for x := from; x < from+n; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		out = append(out, r)
	}
	return string(out)
}

func TestCanvasDrawsFrames(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	h := newHost(screen, TerminalScene())
	h.frame()

	assert.Equal(t, "Wright's", rowText(screen, 0, 0, 8), "message baseline 1 is row 0")
	assert.Equal(t, "Built using p5.js", rowText(screen, 18, 10, 17), "footer baseline 19 is row 18")

	_, _, style, _ := screen.GetContent(40, 10)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(65, 65, 65), bg)

	_, _, style, _ = screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(70, 70, 250), fg)

	h.frame()
	assert.Equal(t, " Wright's", rowText(screen, 1, 0, 9), "second frame is one cell right and down")

	s := h.bouncer.Snapshot()
	assert.Equal(t, flat.Point{X: 2, Y: 3}, s.Position)
}

func TestCanvasTextWidthCountsCells(t *testing.T) {
	c := newCanvas(newSimScreen(t, 10, 10), 0)
	assert.Equal(t, len(bounce.DefaultMessage), c.TextWidth(bounce.DefaultMessage))
	assert.Equal(t, 4, c.TextWidth("世界"), "wide runes take two cells")
}

func TestBounceAcrossTheTerminal(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	h := newHost(screen, TerminalScene())
	textWidth := len(bounce.DefaultMessage)

	for i := 0; i < 80-textWidth; i++ {
		h.frame()
	}
	s := h.bouncer.Snapshot()
	assert.Equal(t, 80-textWidth, s.Position.X)
	assert.Equal(t, -1, s.Direction.X)
	assert.True(t, s.InBounds(textWidth))
}

func TestHandleEvents(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	h := newHost(screen, TerminalScene())

	assert.False(t, h.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.True(t, h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, h.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))

	assert.False(t, h.handle(tcell.NewEventResize(60, 20)))
	s := h.bouncer.Snapshot()
	assert.Equal(t, 60, s.Width)
	assert.Equal(t, 20, s.Height)
}

func TestSceneMarginShrinksTheCanvas(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	scene := TerminalScene()
	scene.Margin = 4
	h := newHost(screen, scene)

	w, hgt := h.canvas.Size()
	assert.Equal(t, [2]int{76, 20}, [2]int{w, hgt})
	s := h.bouncer.Snapshot()
	assert.Equal(t, 76, s.Width)
	assert.Equal(t, 20, s.Height)

	assert.False(t, h.handle(tcell.NewEventResize(60, 20)))
	s = h.bouncer.Snapshot()
	assert.Equal(t, 56, s.Width)
	assert.Equal(t, 16, s.Height)
}

func TestRunStopsWithContext(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Run(ctx, Options{Screen: screen}) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the context ended")
	}
}
