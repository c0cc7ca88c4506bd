package flat

import (
	"fmt"
	systemLog "log"
	"os"

	"github.com/bradbev/bouncer/src/asset"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var log = systemLog.New(os.Stderr, "Flat ", systemLog.Ltime)

const defaultDPI = 72

// Font is a TrueType/OpenType font asset.  An empty TtfFile means the
// embedded Go Regular font.  Faces are created lazily, one per text size,
// and a size is measured in canvas units (DPI 72 makes one point one unit).
type Font struct {
	Name    string
	TtfFile asset.Path `filter:"ttf"`
	DPI     float64

	parsed *opentype.Font
	faces  map[int]font.Face
}

var _ = Measurer((*Font)(nil))

func NewDefaultFont() *Font {
	f := &Font{}
	f.DefaultInitialize()
	return f
}

func (f *Font) DefaultInitialize() {
	f.Name = "Go Regular"
	f.DPI = defaultDPI
}

func (f *Font) PostLoad() {
	if err := f.load(); err != nil {
		log.Print(err)
	}
}

func (f *Font) load() error {
	f.faces = map[int]font.Face{}
	data := goregular.TTF
	if f.TtfFile != "" {
		d, err := asset.ReadFile(f.TtfFile)
		if err != nil {
			f.parsed, _ = opentype.Parse(goregular.TTF)
			return fmt.Errorf("font %s: %w, using Go Regular", f.TtfFile, err)
		}
		data = d
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		f.parsed, _ = opentype.Parse(goregular.TTF)
		return fmt.Errorf("font %s: %w, using Go Regular", f.TtfFile, err)
	}
	f.parsed = tt
	return nil
}

// Face returns the face for size, creating it on first use.  Sizes below 1
// are treated as 1.
func (f *Font) Face(size int) font.Face {
	if size < 1 {
		size = 1
	}
	if f.parsed == nil {
		f.PostLoad()
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	dpi := f.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}
	face, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Panicf("opentype.NewFace(%s, %d): %v", f.Name, size, err)
	}
	f.faces[size] = face
	return face
}

// Measure is the advance width of s at size, truncated to a whole unit.
func (f *Font) Measure(s string, size int) int {
	return font.MeasureString(f.Face(size), s).Floor()
}

func RegisterAllFlatTypes() {
	asset.RegisterAsset(Font{})
}
