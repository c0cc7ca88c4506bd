package bounce

import (
	"fmt"
	"image/color"

	"github.com/bradbev/bouncer/src/asset"
	"github.com/bradbev/bouncer/src/flat"
)

const (
	DefaultMessage = "Wright's website is still a work in progress."
	DefaultFooter  = "Built using p5.js"
)

// Scene holds everything about the animation that is fixed for its
// lifetime.  The defaults give the classic look; a scene asset only
// needs the fields it changes.
type Scene struct {
	Message     string
	Footer      string
	MessageSize int
	FooterSize  int

	MessageColor    color.RGBA
	FooterColor     color.RGBA
	BackgroundColor color.RGBA

	// Margin is subtracted from each window dimension to get the canvas.
	Margin int
	// TPS is the requested frame rate.  Hosts treat it as a hint.
	TPS int

	FooterPosition flat.ScreenPosition
	Font           *flat.Font `json:",omitempty"`
}

func (s *Scene) DefaultInitialize() {
	s.Message = DefaultMessage
	s.Footer = DefaultFooter
	s.MessageSize = 40
	s.FooterSize = 12
	s.MessageColor = flat.RGB(70, 70, 250)
	s.FooterColor = flat.RGB(0, 0, 0)
	s.BackgroundColor = flat.Gray(65)
	s.Margin = 20
	s.TPS = 160
	s.FooterPosition = flat.ScreenPosition{Anchor: flat.LowerLeft, XPixels: 10, YPixels: 5}
}

func DefaultScene() *Scene {
	s := &Scene{}
	s.DefaultInitialize()
	return s
}

// TextFont is the scene's font, or Go Regular when none was configured.
func (s *Scene) TextFont() *flat.Font {
	if s.Font == nil {
		s.Font = flat.NewDefaultFont()
	}
	return s.Font
}

func RegisterTypes() {
	flat.RegisterAllFlatTypes()
	asset.RegisterAsset(Scene{})
}

// LoadScene loads a scene asset.  RegisterTypes must have been called.
func LoadScene(path asset.Path) (*Scene, error) {
	scene, err := asset.LoadAs[*Scene](path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return scene, nil
}

// CanvasSize is the drawing area for a window of the given size: the
// window less margin on each axis, never negative.
func CanvasSize(windowWidth, windowHeight, margin int) (int, int) {
	return max(windowWidth-margin, 0), max(windowHeight-margin, 0)
}
