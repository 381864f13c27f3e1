package main

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/taigrr/prism/internal/config"
	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/models"
	"github.com/taigrr/prism/pkg/render"
)

// wireColor is the wireframe overlay color.
var wireColor = render.RGB(0, 255, 128)

// scene holds the solid on display and rebuilds it when its settings change.
type scene struct {
	shape  models.Shape
	rounds int
	mesh   *models.Mesh
}

func newScene(shape string, rounds int) (*scene, error) {
	s, err := models.ParseShape(shape)
	if err != nil {
		return nil, err
	}
	return &scene{shape: s, rounds: rounds}, nil
}

// Mesh returns the current solid, building it if needed.
func (s *scene) Mesh() (*models.Mesh, error) {
	if s.mesh == nil {
		m, err := models.Build(s.shape, s.rounds)
		if err != nil {
			return nil, err
		}
		s.mesh = m
	}
	return s.mesh, nil
}

// SetShape switches the solid.
func (s *scene) SetShape(shape models.Shape) {
	if shape != s.shape {
		s.shape = shape
		s.mesh = nil
	}
}

// AddRounds changes the subdivision level, staying within 0..MaxRounds.
// It reports whether the level changed.
func (s *scene) AddRounds(delta int) bool {
	n := min(max(s.rounds+delta, 0), models.MaxRounds)
	if n == s.rounds {
		return false
	}
	s.rounds = n
	if s.shape == models.ShapePyramid {
		s.mesh = nil
	}
	return true
}

// draw renders mesh into fb over a background fill and optional wireframe.
func draw(r *render.Rasterizer, fb *render.Framebuffer, mesh *models.Mesh, view *render.View, bg color.RGBA, wireframe bool) render.RenderStats {
	fb.Clear(bg)
	rot := view.Matrix()
	stats := r.RenderMatrix(fb, mesh.Triangles, rot)
	if wireframe {
		render.NewWireframe(fb).DrawTriangles(mesh.Triangles, rot, wireColor)
	}
	return stats
}

// runHeadless renders one image and exits.
func runHeadless(cfg *config.Config, log *zap.Logger) error {
	sc, err := newScene(cfg.Render.Shape, cfg.Render.Rounds)
	if err != nil {
		return err
	}
	mesh, err := sc.Mesh()
	if err != nil {
		return fmt.Errorf("build mesh: %w", err)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(cfg.Render.Width, cfg.Render.Height)
	view := render.NewView(cfg.Render.Horizontal, cfg.Render.Vertical)
	stats := draw(render.NewRasterizer(log.Named("raster")), fb, mesh, view, bg, cfg.Render.Wireframe)

	if err := render.SaveImage(fb, cfg.Output.Path, cfg.Output.Scale); err != nil {
		return err
	}
	log.Info("image written",
		zap.String("path", cfg.Output.Path),
		zap.String("mesh", mesh.Name),
		zap.Int("triangles", stats.Triangles),
		zap.Int("drawn", stats.Drawn),
		zap.Int("degenerate", stats.Degenerate),
		zap.Int("pixels", stats.Pixels),
	)

	if cfg.Output.MeshPath != "" {
		if err := models.ExportGLB(mesh, cfg.Output.MeshPath); err != nil {
			return err
		}
		lo, hi := mesh.Bounds()
		log.Info("mesh exported",
			zap.String("path", cfg.Output.MeshPath),
			zap.Stringer("min", vecString(lo)),
			zap.Stringer("max", vecString(hi)),
		)
	}
	return nil
}

type vecString math3d.Vec3

func (v vecString) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}
