package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/prism/internal/config"
	"github.com/taigrr/prism/pkg/models"
	"github.com/taigrr/prism/pkg/render"
)

// action is a viewer command bound to a key.
type action int

const (
	actNone action = iota
	actLeft
	actRight
	actUp
	actDown
	actMoreRounds
	actFewerRounds
	actCube
	actPyramid
	actWireframe
	actReset
	actQuit
)

// keyAction maps a key press to a viewer command.
func keyAction(ev uv.KeyPressEvent) action {
	switch {
	case ev.MatchString("q", "esc", "ctrl+c"):
		return actQuit
	case ev.MatchString("a", "left"):
		return actLeft
	case ev.MatchString("d", "right"):
		return actRight
	case ev.MatchString("w", "up"):
		return actUp
	case ev.MatchString("s", "down"):
		return actDown
	case ev.Text == "+" || ev.MatchString("="):
		// MatchString splits on '+', so the plus key is matched by its text
		return actMoreRounds
	case ev.MatchString("-", "_"):
		return actFewerRounds
	case ev.MatchString("c"):
		return actCube
	case ev.MatchString("p"):
		return actPyramid
	case ev.MatchString("x"):
		return actWireframe
	case ev.MatchString("r"):
		return actReset
	default:
		return actNone
	}
}

// viewerState is the UI state between renders.
type viewerState struct {
	scene     *scene
	view      *render.View
	wireframe bool
	step      float64
	home      [2]float64 // Angles restored by reset
}

func newViewerState(cfg *config.Config) (*viewerState, error) {
	sc, err := newScene(cfg.Render.Shape, cfg.Render.Rounds)
	if err != nil {
		return nil, err
	}
	return &viewerState{
		scene:     sc,
		view:      render.NewView(cfg.Render.Horizontal, cfg.Render.Vertical),
		wireframe: cfg.Render.Wireframe,
		step:      cfg.Viewer.Step,
		home:      [2]float64{cfg.Render.Horizontal, cfg.Render.Vertical},
	}, nil
}

// apply runs a command. changed reports whether the image needs redrawing.
func (s *viewerState) apply(a action) (changed, quit bool) {
	switch a {
	case actLeft:
		s.view.Rotate(-s.step, 0)
	case actRight:
		s.view.Rotate(s.step, 0)
	case actUp:
		s.view.Rotate(0, -s.step)
	case actDown:
		s.view.Rotate(0, s.step)
	case actMoreRounds:
		return s.scene.AddRounds(1), false
	case actFewerRounds:
		return s.scene.AddRounds(-1), false
	case actCube:
		s.scene.SetShape(models.ShapeCube)
	case actPyramid:
		s.scene.SetShape(models.ShapePyramid)
	case actWireframe:
		s.wireframe = !s.wireframe
	case actReset:
		s.view.SetAngles(s.home[0], s.home[1])
	case actQuit:
		return false, true
	default:
		return false, false
	}
	return true, false
}

// status is the one-line summary shown under the image.
func (s *viewerState) status(stats render.RenderStats) string {
	shape := s.scene.shape.String()
	if s.scene.shape == models.ShapePyramid {
		shape = fmt.Sprintf("%s/%d", shape, s.scene.rounds)
	}
	return fmt.Sprintf(" %s  h=%.0f v=%.0f  %d tris  %d px  [x] wire=%t  q quit",
		shape, s.view.Horizontal, s.view.Vertical, stats.Triangles, stats.Pixels, s.wireframe)
}

// drawStatus writes text into one terminal row.
func drawStatus(scr uv.Screen, row, width int, text string) {
	style := uv.Style{Fg: render.ColorWhite, Bg: render.RGB(30, 30, 40)}
	col := 0
	for _, r := range text {
		if col >= width {
			break
		}
		scr.SetCell(col, row, &uv.Cell{Content: string(r), Width: 1, Style: style})
		col++
	}
	for ; col < width; col++ {
		scr.SetCell(col, row, &uv.Cell{Content: " ", Width: 1, Style: style})
	}
}

// viewport is the terminal area and the framebuffer that fills it.
type viewport struct {
	width, height int // Terminal cells
	out           *render.TerminalRenderer
	fb            *render.Framebuffer
}

func newViewport(term *uv.Terminal, width, height int) *viewport {
	// Last row is the status line
	rows := max(height-1, 1)
	out := render.NewTerminalRenderer(term, width, rows)
	fbw, fbh := out.FramebufferSize()
	return &viewport{width: width, height: height, out: out, fb: render.NewFramebuffer(fbw, fbh)}
}

// runViewer shows the solid in the terminal and re-renders once per input change.
func runViewer(cfg *config.Config, log *zap.Logger) error {
	state, err := newViewerState(cfg)
	if err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	_ = term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		_ = term.Shutdown(context.Background())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vp := newViewport(term, width, height)
	rasterizer := render.NewRasterizer(log.Named("raster"))
	dirty := true

	for {
		if dirty {
			if err := redraw(term, vp, rasterizer, state, bg); err != nil {
				return err
			}
			dirty = false
		}

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-term.Events():
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				_ = term.Resize(ev.Width, ev.Height)
				vp = newViewport(term, ev.Width, ev.Height)
				log.Debug("resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
				dirty = true

			case uv.KeyPressEvent:
				changed, quit := state.apply(keyAction(ev))
				if quit {
					return nil
				}
				dirty = dirty || changed
			}
		}
	}
}

func redraw(term *uv.Terminal, vp *viewport, r *render.Rasterizer, state *viewerState, bg color.RGBA) error {
	mesh, err := state.scene.Mesh()
	if err != nil {
		return fmt.Errorf("build mesh: %w", err)
	}

	stats := draw(r, vp.fb, mesh, state.view, bg, state.wireframe)
	vp.out.Render(vp.fb)
	drawStatus(term, vp.height-1, vp.width, state.status(stats))

	if err := vp.out.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
