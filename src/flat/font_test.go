package flat_test

import (
	"testing"

	"github.com/bradbev/bouncer/src/asset"
	"github.com/bradbev/bouncer/src/flat"
	"github.com/psanford/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFontMeasure(t *testing.T) {
	f := flat.NewDefaultFont()

	assert.Equal(t, 0, f.Measure("", 40))
	small := f.Measure("Built using p5.js", 12)
	large := f.Measure("Built using p5.js", 40)
	assert.Greater(t, small, 0)
	assert.Greater(t, large, small)
	assert.Same(t, f.Face(40), f.Face(40), "faces are cached per size")
	assert.Same(t, f.Face(1), f.Face(0), "sizes below 1 use size 1")
}

func TestZeroFontIsUsable(t *testing.T) {
	f := &flat.Font{}
	assert.Equal(t, flat.NewDefaultFont().Measure("work in progress", 40), f.Measure("work in progress", 40))
}

func TestFontAssetFallsBack(t *testing.T) {
	defer asset.Reset()
	flat.RegisterAllFlatTypes()
	rootFS := memfs.New()
	require.NoError(t, rootFS.WriteFile("bad.ttf", []byte("not a font"), 0777))
	require.NoError(t, rootFS.WriteFile("font.json", []byte(`{
	"Type": "github.com/bradbev/bouncer/src/flat.Font",
	"Inner": {"Name": "Broken", "TtfFile": "bad.ttf"}
}`), 0777))
	require.NoError(t, asset.RegisterFileSystem(rootFS, 0))

	f, err := asset.LoadAs[*flat.Font]("font.json")
	require.NoError(t, err)
	assert.Equal(t, "Broken", f.Name)
	assert.Equal(t, 72.0, f.DPI, "DPI keeps its default")
	assert.Equal(t, flat.NewDefaultFont().Measure("abc", 20), f.Measure("abc", 20))
}
