package pnghost

import (
	"bytes"
	"context"
	"fmt"
	systemLog "log"
	"os"

	"github.com/bradbev/bouncer/src/asset"
	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/flat"
)

var log = systemLog.New(os.Stderr, "PNG ", systemLog.Ltime)

type Options struct {
	Scene *bounce.Scene

	// Width and Height are the canvas size.  Zero means 780x580, an
	// 800x600 window less the default margin.
	Width, Height int

	// Frames is how many frames to render.  Zero renders one full period
	// of the animation (or of the one axis that moves), capped at
	// MaxFrames.
	Frames int

	// Output receives frame-00000.png, frame-00001.png, ...
	Output asset.WriteableFileSystem
}

const MaxFrames = 10000

// Export renders frames headlessly and writes each one as a PNG.  It stops
// early, returning ctx.Err(), if ctx is cancelled between frames.  The
// number of frames written is returned either way.
func Export(ctx context.Context, opts Options) (int, error) {
	if opts.Output == nil {
		return 0, fmt.Errorf("png export: %w", asset.ErrNoWriteFS)
	}
	scene := opts.Scene
	if scene == nil {
		scene = bounce.DefaultScene()
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = bounce.CanvasSize(800, 600, scene.Margin)
	}

	font := scene.TextFont()
	c := newCanvas(w, h, font)
	b := bounce.New(scene)
	world := flat.NewWorld()
	world.AddToWorld(b)
	world.BeginPlay(c)

	frames := opts.Frames
	if frames <= 0 {
		px, py, period := b.Period(font.Measure(scene.Message, scene.MessageSize))
		if period == 0 {
			period = max(px, py, 1)
		}
		frames = min(period, MaxFrames)
	}
	log.Printf("rendering %d frames at %dx%d", frames, w, h)

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		world.Draw(c)
		// the writer may keep the slice, so every frame gets its own buffer
		var buf bytes.Buffer
		if err := c.dc.EncodePNG(&buf); err != nil {
			return i, fmt.Errorf("encode frame %d: %w", i, err)
		}
		name := asset.Path(fmt.Sprintf("frame-%05d.png", i))
		if err := opts.Output.WriteFile(name, buf.Bytes()); err != nil {
			return i, fmt.Errorf("write %s: %w", name, err)
		}
	}
	return frames, nil
}
