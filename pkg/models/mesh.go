// Package models builds the solids Prism renders.
package models

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/taigrr/prism/pkg/math3d"
)

// ErrDegenerate is reported for a triangle whose corners are collinear.
var ErrDegenerate = errors.New("degenerate triangle")

// Triangle is three corner positions plus one flat color.
// Each triangle owns its corners; shared edges are numerically equal copies.
type Triangle struct {
	V     [3]math3d.Vec3
	Color color.RGBA
}

// Tri creates a triangle from three corners and a color.
func Tri(a, b, c math3d.Vec3, col color.RGBA) Triangle {
	return Triangle{V: [3]math3d.Vec3{a, b, c}, Color: col}
}

// Normal returns the unit geometric normal (v1-v0)×(v2-v0).
// ok is false when the triangle is degenerate.
func (t Triangle) Normal() (n math3d.Vec3, ok bool) {
	return FaceNormal(t.V[0], t.V[1], t.V[2])
}

// Degenerate reports whether the triangle has no usable normal.
func (t Triangle) Degenerate() bool {
	_, ok := t.Normal()
	return !ok
}

// FaceNormal returns the unit normal of the triangle a, b, c.
func FaceNormal(a, b, c math3d.Vec3) (math3d.Vec3, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	// also rejects NaN and Inf lengths
	if !(l > 0) || math.IsInf(l, 0) {
		return math3d.Vec3{}, false
	}
	return n.Div(l), true
}

// Mesh is an ordered list of flat-colored triangles.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the axis-aligned bounding box of all corners.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Triangles) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}

	min = m.Triangles[0].V[0]
	max = min
	for _, t := range m.Triangles {
		for _, v := range t.V {
			min = min.Min(v)
			max = max.Max(v)
		}
	}
	return min, max
}

// Colors returns how many triangles carry each flat color.
func (m *Mesh) Colors() map[color.RGBA]int {
	counts := make(map[color.RGBA]int)
	for _, t := range m.Triangles {
		counts[t.Color]++
	}
	return counts
}

// Validate returns ErrDegenerate for the first triangle without a normal.
func (m *Mesh) Validate() error {
	for i, t := range m.Triangles {
		if t.Degenerate() {
			return fmt.Errorf("%s triangle %d: %w", m.Name, i, ErrDegenerate)
		}
	}
	return nil
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	copy(clone.Triangles, m.Triangles)
	return clone
}
