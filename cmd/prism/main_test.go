package main

import (
	"path/filepath"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taigrr/prism/internal/config"
	"github.com/taigrr/prism/pkg/models"
	"github.com/taigrr/prism/pkg/render"
)

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Render.Horizontal = 0
	cfg.Render.Vertical = 0
	cfg.Render.Width = 40
	cfg.Render.Height = 30
	cfg.Render.Background = "#0000ff"
	cfg.Output.Path = filepath.Join(dir, "cube.png")
	cfg.Output.Scale = 2
	cfg.Output.MeshPath = filepath.Join(dir, "cube.glb")
	require.NoError(t, cfg.Validate())

	require.NoError(t, runHeadless(cfg, zap.NewNop()))

	img, err := render.LoadImage(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	// The front face covers the whole frame head-on
	r, g, b, _ := img.At(40, 30).RGBA()
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.NotZero(t, r)

	doc, err := gltf.Open(cfg.Output.MeshPath)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)
}

func TestRunHeadlessBackground(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Shape = "pyramid"
	cfg.Render.Rounds = 1
	cfg.Render.Width = 500
	cfg.Render.Height = 500
	cfg.Render.Background = "#123456"
	cfg.Output.Path = filepath.Join(t.TempDir(), "pyramid.bmp")

	require.NoError(t, runHeadless(cfg, zap.NewNop()))

	img, err := render.LoadImage(cfg.Output.Path)
	require.NoError(t, err)

	// The solid fits in a sphere of radius ~173, so corners stay background
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0x12, 0x34, 0x56}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestRunHeadlessErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Path = filepath.Join(t.TempDir(), "out.gif")
	assert.ErrorIs(t, runHeadless(cfg, zap.NewNop()), render.ErrFormat)

	cfg = config.Default()
	cfg.Render.Shape = "torus"
	assert.ErrorIs(t, runHeadless(cfg, zap.NewNop()), models.ErrShape)
}

func TestSceneRebuilds(t *testing.T) {
	sc, err := newScene("pyramid", 0)
	require.NoError(t, err)

	m, err := sc.Mesh()
	require.NoError(t, err)
	assert.Equal(t, 4, m.TriangleCount())

	assert.True(t, sc.AddRounds(1))
	m, err = sc.Mesh()
	require.NoError(t, err)
	assert.Equal(t, 16, m.TriangleCount())

	assert.True(t, sc.AddRounds(-5))
	assert.Equal(t, 0, sc.rounds)
	assert.False(t, sc.AddRounds(-1), "rounds stay at zero")

	sc.rounds = models.MaxRounds
	assert.False(t, sc.AddRounds(1), "rounds stay at the maximum")

	sc.SetShape(models.ShapeCube)
	m, err = sc.Mesh()
	require.NoError(t, err)
	assert.Equal(t, "cube", m.Name)
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   uv.KeyPressEvent
		want action
	}{
		{"q", uv.KeyPressEvent{Code: 'q', Text: "q"}, actQuit},
		{"esc", uv.KeyPressEvent{Code: uv.KeyEscape}, actQuit},
		{"left arrow", uv.KeyPressEvent{Code: uv.KeyLeft}, actLeft},
		{"d", uv.KeyPressEvent{Code: 'd', Text: "d"}, actRight},
		{"w", uv.KeyPressEvent{Code: 'w', Text: "w"}, actUp},
		{"down arrow", uv.KeyPressEvent{Code: uv.KeyDown}, actDown},
		{"plus", uv.KeyPressEvent{Code: '+', Text: "+"}, actMoreRounds},
		{"minus", uv.KeyPressEvent{Code: '-', Text: "-"}, actFewerRounds},
		{"c", uv.KeyPressEvent{Code: 'c', Text: "c"}, actCube},
		{"p", uv.KeyPressEvent{Code: 'p', Text: "p"}, actPyramid},
		{"x", uv.KeyPressEvent{Code: 'x', Text: "x"}, actWireframe},
		{"r", uv.KeyPressEvent{Code: 'r', Text: "r"}, actReset},
		{"unbound", uv.KeyPressEvent{Code: 'z', Text: "z"}, actNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyAction(tt.ev))
		})
	}
}

func TestViewerStateApply(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Horizontal = 10
	cfg.Render.Vertical = 20
	cfg.Viewer.Step = 5

	s, err := newViewerState(cfg)
	require.NoError(t, err)

	changed, quit := s.apply(actRight)
	assert.True(t, changed)
	assert.False(t, quit)
	assert.Equal(t, 15.0, s.view.Horizontal)

	s.apply(actUp)
	assert.Equal(t, 15.0, s.view.Vertical)

	s.apply(actWireframe)
	assert.True(t, s.wireframe)

	s.apply(actPyramid)
	assert.Equal(t, models.ShapePyramid, s.scene.shape)

	s.apply(actReset)
	assert.Equal(t, 10.0, s.view.Horizontal)
	assert.Equal(t, 20.0, s.view.Vertical)

	changed, quit = s.apply(actNone)
	assert.False(t, changed)
	assert.False(t, quit)

	_, quit = s.apply(actQuit)
	assert.True(t, quit)
}

func TestDrawStatus(t *testing.T) {
	scr := uv.NewScreenBuffer(8, 2)
	drawStatus(scr, 1, 8, "hello world")

	assert.Equal(t, "h", scr.CellAt(0, 1).Content)
	assert.Equal(t, "o", scr.CellAt(4, 1).Content)
	assert.Equal(t, "w", scr.CellAt(6, 1).Content)
}
