package models

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/taigrr/prism/pkg/math3d"
)

// Sphere and cube sizing. Corners of the template solids sit at ±HalfExtent,
// so the tetrahedron's corners already lie on the sphere of TargetRadius.
const (
	HalfExtent    = 100.0
	radiusDivisor = 30000.0

	// MaxRounds bounds subdivision; each pass multiplies the triangle count by 4.
	MaxRounds = 8
)

// TargetRadius is the distance from the origin every subdivided vertex is pushed to.
var TargetRadius = math.Sqrt(radiusDivisor)

var (
	// ErrRounds is returned for a subdivision count outside [0, MaxRounds].
	ErrRounds = errors.New("subdivision rounds out of range")
	// ErrShape is returned for an unknown shape name.
	ErrShape = errors.New("unknown shape")
)

// Flat face colors.
var (
	White   = color.RGBA{255, 255, 255, 255}
	Red     = color.RGBA{255, 0, 0, 255}
	Green   = color.RGBA{0, 255, 0, 255}
	Blue    = color.RGBA{0, 0, 255, 255}
	Yellow  = color.RGBA{255, 255, 0, 255}
	Cyan    = color.RGBA{0, 255, 255, 255}
	Magenta = color.RGBA{255, 0, 255, 255}
)

// Cube returns the 12-triangle cube with edge 2*HalfExtent centered at the origin.
// The front face (z = +HalfExtent) is red.
func Cube() *Mesh {
	h := HalfExtent

	v := [8]math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, // 0: left-bottom-back
		{X: h, Y: -h, Z: -h},  // 1: right-bottom-back
		{X: h, Y: h, Z: -h},   // 2: right-top-back
		{X: -h, Y: h, Z: -h},  // 3: left-top-back
		{X: -h, Y: -h, Z: h},  // 4: left-bottom-front
		{X: h, Y: -h, Z: h},   // 5: right-bottom-front
		{X: h, Y: h, Z: h},    // 6: right-top-front
		{X: -h, Y: h, Z: h},   // 7: left-top-front
	}

	// Each face: triangle 1 (f0, f1, f2), triangle 2 (f0, f2, f3)
	faces := []struct {
		idx   [4]int
		color color.RGBA
	}{
		{[4]int{4, 5, 6, 7}, Red},     // Front
		{[4]int{0, 1, 2, 3}, Green},   // Back
		{[4]int{0, 3, 7, 4}, Blue},    // Left
		{[4]int{1, 2, 6, 5}, Yellow},  // Right
		{[4]int{3, 2, 6, 7}, Cyan},    // Top
		{[4]int{0, 1, 5, 4}, Magenta}, // Bottom
	}

	m := NewMesh("cube")
	for _, f := range faces {
		m.Triangles = append(m.Triangles,
			Tri(v[f.idx[0]], v[f.idx[1]], v[f.idx[2]], f.color),
			Tri(v[f.idx[0]], v[f.idx[2]], v[f.idx[3]], f.color),
		)
	}
	return m
}

// Tetrahedron returns the four-face solid on alternating corners of the cube.
func Tetrahedron() *Mesh {
	h := HalfExtent
	a := math3d.V3(h, h, h)
	b := math3d.V3(-h, -h, h)
	c := math3d.V3(-h, h, -h)
	d := math3d.V3(h, -h, -h)

	m := NewMesh("tetrahedron")
	m.Triangles = append(m.Triangles,
		Tri(a, b, c, White),
		Tri(a, b, d, Red),
		Tri(c, d, a, Green),
		Tri(c, d, b, Blue),
	)
	return m
}

// Pyramid returns the tetrahedron refined by rounds subdivision passes.
// The triangle count is 4 * 4^rounds.
func Pyramid(rounds int) (*Mesh, error) {
	if rounds < 0 || rounds > MaxRounds {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrRounds, rounds, MaxRounds)
	}

	m := Tetrahedron()
	m.Name = "pyramid"
	for range rounds {
		m.Triangles = Subdivide(m.Triangles, TargetRadius)
	}
	return m, nil
}

// Subdivide performs one pass: every triangle becomes three corner triangles
// and one center triangle built from its edge midpoints, all inheriting the
// parent color. Every resulting corner is then pushed out to radius.
// The input slice is not modified.
func Subdivide(tris []Triangle, radius float64) []Triangle {
	out := make([]Triangle, 0, len(tris)*4)
	for _, t := range tris {
		v1, v2, v3 := t.V[0], t.V[1], t.V[2]
		m12 := v1.Midpoint(v2)
		m23 := v2.Midpoint(v3)
		m13 := v1.Midpoint(v3)

		out = append(out,
			Tri(v1, m12, m13, t.Color),
			Tri(v2, m12, m23, t.Color),
			Tri(v3, m23, m13, t.Color),
			Tri(m12, m23, m13, t.Color),
		)
	}

	for i := range out {
		for j := range out[i].V {
			out[i].V[j] = out[i].V[j].WithLength(radius)
		}
	}
	return out
}

// Shape selects one of the supported solids.
type Shape int

const (
	ShapeCube Shape = iota
	ShapePyramid
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapePyramid:
		return "pyramid"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape converts a shape name ("cube", "pyramid" or "sphere") to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cube":
		return ShapeCube, nil
	case "pyramid", "sphere":
		return ShapePyramid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrShape, name)
	}
}

// Build returns a freshly built mesh for the shape. rounds only applies to
// ShapePyramid.
func Build(shape Shape, rounds int) (*Mesh, error) {
	switch shape {
	case ShapeCube:
		return Cube(), nil
	case ShapePyramid:
		return Pyramid(rounds)
	default:
		return nil, fmt.Errorf("%w: %v", ErrShape, shape)
	}
}
