package render

import (
	"math"

	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/models"
)

// Wireframe draws triangle edges on top of a framebuffer using the same
// orthographic projection as the Rasterizer. It does no depth testing.
type Wireframe struct {
	fb *Framebuffer
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(fb *Framebuffer) *Wireframe {
	return &Wireframe{fb: fb}
}

// screenPoint rotates p and moves it to the nearest pixel.
// ok is false for points too far off-screen to be worth a line walk.
func (w *Wireframe) screenPoint(p math3d.Vec3, rot math3d.Mat3) (x, y int, ok bool) {
	q := rot.MulVec3(p)
	sx := q.X + float64(w.fb.Width)/2
	sy := q.Y + float64(w.fb.Height)/2

	limit := float64(4 * (w.fb.Width + w.fb.Height))
	if math.IsNaN(sx) || math.IsNaN(sy) || math.Abs(sx) > limit || math.Abs(sy) > limit {
		return 0, 0, false
	}
	return int(math.Round(sx)), int(math.Round(sy)), true
}

// DrawLine3D draws the segment p1-p2 after rotation.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, rot math3d.Mat3, color Color) {
	x1, y1, ok1 := w.screenPoint(p1, rot)
	x2, y2, ok2 := w.screenPoint(p2, rot)
	if !ok1 || !ok2 {
		return
	}
	w.fb.DrawLine(x1, y1, x2, y2, color)
}

// DrawTriangles outlines every triangle.
func (w *Wireframe) DrawTriangles(tris []models.Triangle, rot math3d.Mat3, color Color) {
	for _, t := range tris {
		w.DrawLine3D(t.V[0], t.V[1], rot, color)
		w.DrawLine3D(t.V[1], t.V[2], rot, color)
		w.DrawLine3D(t.V[2], t.V[0], rot, color)
	}
}

// DrawAxes draws the rotated coordinate axes from the origin.
func (w *Wireframe) DrawAxes(rot math3d.Mat3, length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), rot, ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), rot, ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), rot, ColorBlue)  // Z axis
}
