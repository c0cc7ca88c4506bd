package pnghost

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"

	"github.com/bradbev/bouncer/src/asset"
	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/flat"
	"github.com/psanford/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	fs *memfs.FS
}

func (m memWriter) WriteFile(path asset.Path, data []byte) error {
	return m.fs.WriteFile(string(path), data, 0777)
}

func smallScene() *bounce.Scene {
	s := bounce.DefaultScene()
	s.Message = "WIP"
	return s
}

func readFrame(t *testing.T, fsys fs.FS, name string) image.Image {
	data, err := fs.ReadFile(fsys, name)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func sameRGB(t *testing.T, want color.RGBA, got color.Color) {
	r, g, b, _ := got.RGBA()
	assert.Equal(t, [3]uint8{want.R, want.G, want.B}, [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
}

func TestExportWritesFrames(t *testing.T) {
	out := memfs.New()
	n, err := Export(context.Background(), Options{
		Scene:  smallScene(),
		Width:  200,
		Height: 120,
		Frames: 3,
		Output: memWriter{out},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, name := range []string{"frame-00000.png", "frame-00001.png", "frame-00002.png"} {
		img := readFrame(t, out, name)
		assert.Equal(t, image.Rect(0, 0, 200, 120), img.Bounds())
		sameRGB(t, flat.Gray(65), img.At(199, 60))
	}
	_, err = fs.Stat(out, "frame-00003.png")
	assert.Error(t, err)
}

func TestExportKeepsEveryFrame(t *testing.T) {
	out := memfs.New()
	n, err := Export(context.Background(), Options{
		Scene:  smallScene(),
		Width:  200,
		Height: 120,
		Frames: 4,
		Output: memWriter{out},
	})
	require.NoError(t, err)
	require.Equal(t, 4, n)

	first, err := fs.ReadFile(out, "frame-00000.png")
	require.NoError(t, err)
	last, err := fs.ReadFile(out, "frame-00003.png")
	require.NoError(t, err)
	assert.NotEqual(t, first, last, "the message moves between frames")

	_, err = png.Decode(bytes.NewReader(first))
	assert.NoError(t, err, "earlier frames must survive later writes")
}

func TestExportDrawsText(t *testing.T) {
	c := newCanvas(200, 120, flat.NewDefaultFont())
	b := bounce.New(smallScene())
	b.Initialize(c)
	b.AdvanceFrame(c)

	img := c.dc.Image()
	foundMessage, foundFooter := false, false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if bl>>8 > 150 && r>>8 < 120 {
				foundMessage = foundMessage || y <= 40
			}
			if r>>8 < 30 && g>>8 < 30 && bl>>8 < 30 {
				foundFooter = foundFooter || y > 100
			}
		}
	}
	assert.True(t, foundMessage, "blue message pixels near the top")
	assert.True(t, foundFooter, "black footer pixels near the bottom")
}

func TestCanvasMeasuresWithSceneFont(t *testing.T) {
	font := flat.NewDefaultFont()
	c := newCanvas(10, 10, font)
	c.TextSize(40)
	assert.Equal(t, font.Measure(bounce.DefaultMessage, 40), c.TextWidth(bounce.DefaultMessage))
	w, h := c.Size()
	assert.Equal(t, [2]int{10, 10}, [2]int{w, h})
}

func TestExportDefaultsToOnePeriod(t *testing.T) {
	out := memfs.New()
	scene := smallScene()
	font := scene.TextFont()
	tw := font.Measure(scene.Message, scene.MessageSize)
	width := tw + 5
	n, err := Export(context.Background(), Options{
		Scene:  scene,
		Width:  width,
		Height: 45,
		Output: memWriter{out},
	})
	require.NoError(t, err)
	// x period 10, y period 10
	assert.Equal(t, 10, n)
}

func TestExportStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := Export(ctx, Options{Frames: 5, Output: memWriter{memfs.New()}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)
}

func TestExportNeedsOutput(t *testing.T) {
	_, err := Export(context.Background(), Options{Frames: 1})
	assert.ErrorIs(t, err, asset.ErrNoWriteFS)
}
