package render

import (
	"math"

	"go.uber.org/zap"

	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/models"
)

// Rasterizer handles software triangle rasterization with orthographic
// projection, flat shading and a per-pixel depth buffer.
//
// A Rasterizer is not safe for concurrent use; only one Render may run
// against a given target at a time.
type Rasterizer struct {
	zbuffer []float64 // Depth buffer (1D array, row-major), larger is nearer
	width   int
	height  int
	logger  *zap.Logger

	Stats RenderStats // Statistics for the most recent Render call
}

// RenderStats summarizes one Render call.
type RenderStats struct {
	Triangles  int // Triangles submitted
	Drawn      int // Triangles that went through scan conversion
	Degenerate int // Triangles skipped for having no normal
	Pixels     int // Pixel writes that passed the depth test
}

// NewRasterizer creates a rasterizer. A nil logger disables logging.
func NewRasterizer(logger *zap.Logger) *Rasterizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rasterizer{logger: logger}
}

// resize makes the depth buffer match the target size.
func (r *Rasterizer) resize(w, h int) {
	if w == r.width && h == r.height && len(r.zbuffer) == w*h {
		return
	}
	r.width, r.height = w, h
	r.zbuffer = make([]float64, w*h)
}

// ClearDepth resets every depth value to negative infinity.
func (r *Rasterizer) ClearDepth() {
	// Use copy-doubling for faster clearing
	n := len(r.zbuffer)
	if n == 0 {
		return
	}
	r.zbuffer[0] = math.Inf(-1)
	for i := 1; i < n; i *= 2 {
		copy(r.zbuffer[i:], r.zbuffer[:i])
	}
}

// Depth returns the depth value stored at (x, y) by the last Render.
// Out-of-range coordinates report negative infinity.
func (r *Rasterizer) Depth(x, y int) float64 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return math.Inf(-1)
	}
	return r.zbuffer[y*r.width+x]
}

// Render rotates tris by the horizontal and vertical angles (degrees) and
// rasterizes them into target. The depth buffer starts empty on every call,
// so the result does not depend on earlier calls.
func (r *Rasterizer) Render(target Target, tris []models.Triangle, horizontalDeg, verticalDeg float64) RenderStats {
	return r.RenderMatrix(target, tris, math3d.Rotation(horizontalDeg, verticalDeg))
}

// RenderMatrix is Render with an explicit rotation matrix.
func (r *Rasterizer) RenderMatrix(target Target, tris []models.Triangle, rot math3d.Mat3) RenderStats {
	w, h := target.Size()
	r.resize(w, h)
	r.ClearDepth()
	r.Stats = RenderStats{Triangles: len(tris)}

	for i := range tris {
		r.drawTriangle(target, i, tris[i], rot)
	}

	if r.Stats.Degenerate > 0 {
		r.logger.Warn("degenerate triangles skipped",
			zap.Int("count", r.Stats.Degenerate),
			zap.Int("triangles", r.Stats.Triangles),
		)
	}
	return r.Stats
}

// project rotates a corner and moves it into screen space. Z is carried
// through unchanged.
func (r *Rasterizer) project(v math3d.Vec3, rot math3d.Mat3) math3d.Vec3 {
	p := rot.MulVec3(v)
	p.X += float64(r.width) / 2
	p.Y += float64(r.height) / 2
	return p
}

// drawTriangle runs one triangle through shading, bounding and scan conversion.
func (r *Rasterizer) drawTriangle(target Target, index int, tri models.Triangle, rot math3d.Mat3) {
	var sv [3]math3d.Vec3
	for i := range 3 {
		sv[i] = r.project(tri.V[i], rot)
	}

	normal, ok := models.FaceNormal(sv[0], sv[1], sv[2])
	if !ok {
		r.Stats.Degenerate++
		r.logger.Debug("skipping degenerate triangle",
			zap.Int("index", index),
			zap.Any("vertices", tri.V),
		)
		return
	}

	// Facing factor: 1 when the face looks straight down the view axis
	cosAngle := math.Abs(normal.Z)
	color := Shade(tri.Color, cosAngle)

	// Flat depth: translation leaves Z alone, so this is the rotated Z sum
	depth := sv[0].Z + sv[1].Z + sv[2].Z

	minX, maxX, okX := pixelSpan(min3(sv[0].X, sv[1].X, sv[2].X), max3(sv[0].X, sv[1].X, sv[2].X), r.width)
	minY, maxY, okY := pixelSpan(min3(sv[0].Y, sv[1].Y, sv[2].Y), max3(sv[0].Y, sv[1].Y, sv[2].Y), r.height)
	if !okX || !okY {
		return
	}
	r.Stats.Drawn++

	for y := minY; y <= maxY; y++ {
		row := y * r.width
		for x := minX; x <= maxX; x++ {
			p := math3d.V3(float64(x), float64(y), 0)
			if !InsideTriangle(sv[0], sv[1], sv[2], p) {
				continue
			}

			// Z-buffer test: strictly nearer wins, ties keep the earlier triangle
			if depth <= r.zbuffer[row+x] {
				continue
			}
			target.SetPixel(x, y, color)
			r.zbuffer[row+x] = depth
			r.Stats.Pixels++
		}
	}
}

// pixelSpan returns the integer pixels ceil(lo)..floor(hi) clamped to
// [0, size-1]. ok is false when nothing is left.
func pixelSpan(lo, hi float64, size int) (first, last int, ok bool) {
	lo = math.Max(0, math.Ceil(lo))
	hi = math.Min(float64(size-1), math.Floor(hi))
	if size <= 0 || lo > hi {
		return 0, 0, false
	}
	return int(lo), int(hi), true
}

// InsideTriangle reports whether p lies inside or on the screen-space
// triangle a, b, c. Only X and Y take part in the test.
func InsideTriangle(a, b, c, p math3d.Vec3) bool {
	return sameSide(a, b, c, p) &&
		sameSide(b, c, a, p) &&
		sameSide(c, a, b, p)
}

// sameSide reports whether p and c are on the same side of line ab,
// counting points on the line as inside.
func sameSide(a, b, c, p math3d.Vec3) bool {
	ab := b.Sub(a)
	return ab.Cross2D(c.Sub(a))*ab.Cross2D(p.Sub(a)) >= 0
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
