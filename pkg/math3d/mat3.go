package math3d

import "math"

// Mat3 is a 3x3 matrix stored in row-major order.
//
// Memory layout (indices):
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
//
// Vectors are columns: MulVec3 computes M·v.
type Mat3 [9]float64

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotateX creates a rotation about the X axis (vertical tilt on screen).
func RotateX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotateY creates a rotation about the Y axis (horizontal turn on screen).
func RotateY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// DegToRad converts degrees to radians. Any value is accepted.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rotation builds the combined view rotation from horizontal and vertical
// angles in degrees. The vertical tilt is applied first, then the horizontal
// turn: Rotation(h, v).MulVec3(p) == RotateY(h).MulVec3(RotateX(v).MulVec3(p)).
func Rotation(horizontalDeg, verticalDeg float64) Mat3 {
	return RotateY(DegToRad(horizontalDeg)).Mul(RotateX(DegToRad(verticalDeg)))
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for row := range 3 {
		for col := range 3 {
			var sum float64
			for k := range 3 {
				sum += a[row*3+k] * b[k*3+col]
			}
			m[row*3+col] = sum
		}
	}
	return m
}

// MulVec3 applies the matrix to v and returns the transformed vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Get returns the element at (row, col).
func (m Mat3) Get(row, col int) float64 {
	return m[row*3+col]
}

// Set sets the element at (row, col).
func (m *Mat3) Set(row, col int, val float64) {
	m[row*3+col] = val
}
