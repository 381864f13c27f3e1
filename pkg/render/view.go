package render

import (
	"github.com/taigrr/prism/pkg/math3d"
)

// View holds the two rotation angles the UI feeds into the rasterizer.
// The zero value looks straight at the front face.
type View struct {
	Horizontal float64 // Turn about the Y axis, in degrees
	Vertical   float64 // Tilt about the X axis, in degrees

	// Cached matrix and the angles it was built from
	matrix       math3d.Mat3
	cachedH      float64
	cachedV      float64
	cachedMatrix bool
}

// NewView creates a view at the given angles (degrees).
func NewView(horizontal, vertical float64) *View {
	return &View{Horizontal: horizontal, Vertical: vertical}
}

// SetAngles sets both angles in degrees.
func (v *View) SetAngles(horizontal, vertical float64) {
	v.Horizontal = horizontal
	v.Vertical = vertical
}

// Rotate adds deltas (degrees) to the current angles.
func (v *View) Rotate(dHorizontal, dVertical float64) {
	v.SetAngles(v.Horizontal+dHorizontal, v.Vertical+dVertical)
}

// Reset returns both angles to zero.
func (v *View) Reset() {
	v.SetAngles(0, 0)
}

// Matrix returns the combined rotation for the current angles.
func (v *View) Matrix() math3d.Mat3 {
	if !v.cachedMatrix || v.cachedH != v.Horizontal || v.cachedV != v.Vertical {
		v.matrix = math3d.Rotation(v.Horizontal, v.Vertical)
		v.cachedH, v.cachedV = v.Horizontal, v.Vertical
		v.cachedMatrix = true
	}
	return v.matrix
}
