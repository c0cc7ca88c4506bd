package termhost

import (
	"context"
	"fmt"
	systemLog "log"
	"os"
	"time"

	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/flat"
	"github.com/gdamore/tcell/v2"
)

var log = systemLog.New(os.Stderr, "Term ", systemLog.Ltime)

// TerminalScene is the default scene scaled to terminal cells: one row per
// line of text, no margin and a frame rate a terminal can keep up with.
func TerminalScene() *bounce.Scene {
	s := bounce.DefaultScene()
	s.MessageSize = 1
	s.FooterSize = 1
	s.Margin = 0
	s.TPS = 30
	return s
}

type Options struct {
	Scene *bounce.Scene

	// Screen defaults to the real terminal.
	Screen tcell.Screen
}

// host owns the screen and the world.  Only the goroutine running Run
// touches either.
type host struct {
	screen  tcell.Screen
	canvas  *canvas
	world   *flat.World
	bouncer *bounce.Bouncer
}

func newHost(screen tcell.Screen, scene *bounce.Scene) *host {
	h := &host{
		screen:  screen,
		canvas:  newCanvas(screen, scene.Margin),
		world:   flat.NewWorld(),
		bouncer: bounce.New(scene),
	}
	h.world.AddToWorld(h.bouncer)
	h.world.BeginPlay(h.canvas)
	h.screen.Show()
	return h
}

func (h *host) frame() {
	h.world.Draw(h.canvas)
	h.screen.Show()
}

// handle reports whether ev asks to quit.  A resize is passed on to the
// bouncer less the margin, with position and direction left as they are.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.bouncer.Resize(bounce.CanvasSize(w, hgt, h.canvas.margin))
		h.screen.Sync()
	}
	return false
}

// Run animates until ctx is done or the user quits.
func Run(ctx context.Context, opts Options) error {
	scene := opts.Scene
	if scene == nil {
		scene = TerminalScene()
	}
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal host: %w", err)
		}
	}
	log.Printf("starting at %d TPS", scene.TPS)
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal host: %w", err)
	}
	defer screen.Fini()

	h := newHost(screen, scene)

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	tps := scene.TPS
	if tps <= 0 {
		tps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.frame()
		}
	}
}
