package windowhost

import (
	"fmt"
	systemLog "log"
	"os"

	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/flat"
	"github.com/hajimehoshi/ebiten/v2"
)

var log = systemLog.New(os.Stderr, "Window ", systemLog.Ltime)

type Options struct {
	Scene *bounce.Scene
	Title string

	// Debug shows the state overlay.
	Debug bool

	// Width and Height override the canvas size.  Zero means the screen
	// size less the scene margin.
	Width, Height int
}

// Game runs a Bouncer inside ebiten.  Update advances the animation into a
// display list and Draw paints that list, so Draw may run any number of
// times per Update.
type Game struct {
	world   *flat.World
	bouncer *bounce.Bouncer
	frame   *flat.DisplayList
	screen  canvas
	overlay *overlay
	w, h    int
}

var _ = ebiten.Game((*Game)(nil))

func NewGame(opts Options, w, h int) *Game {
	scene := opts.Scene
	if scene == nil {
		scene = bounce.DefaultScene()
	}
	font := scene.TextFont()
	g := &Game{
		world:   flat.NewWorld(),
		bouncer: bounce.New(scene),
		frame:   flat.NewDisplayList(w, h, font),
		screen:  canvas{font: font},
		w:       w,
		h:       h,
	}
	g.world.AddToWorld(g.bouncer)
	if opts.Debug {
		g.overlay = newOverlay(g.bouncer, font, scene.TPS)
		g.world.AddToWorld(g.overlay)
	}
	g.world.BeginPlay(g.frame)
	return g
}

func (g *Game) Update() error {
	g.frame.Reset()
	g.world.Draw(g.frame)
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.dst = screen
	g.frame.Replay(&g.screen)
	if g.overlay != nil {
		g.overlay.DrawOnto(screen)
	}
}

// Layout keeps the canvas at the size chosen at startup; ebiten scales it
// when the window changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(g.w, g.h)
	}
	return g.w, g.h
}

func (g *Game) Bouncer() *bounce.Bouncer {
	return g.bouncer
}

// Run opens a window sized to the screen less the scene margin and
// blocks until it is closed.
func Run(opts Options) error {
	scene := opts.Scene
	if scene == nil {
		scene = bounce.DefaultScene()
		opts.Scene = scene
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		sw, sh := ebiten.ScreenSizeInFullscreen()
		w, h = bounce.CanvasSize(sw, sh, scene.Margin)
	}
	if w == 0 || h == 0 {
		return fmt.Errorf("window host: no room for a canvas (%dx%d)", w, h)
	}
	title := opts.Title
	if title == "" {
		title = "Wright"
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(scene.TPS)

	log.Printf("canvas %dx%d at %d TPS", w, h, scene.TPS)
	return ebiten.RunGame(NewGame(opts, w, h))
}
