package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/prism/pkg/math3d"
)

func TestFaceNormal(t *testing.T) {
	n, ok := FaceNormal(math3d.V3(0, 0, 0), math3d.V3(2, 0, 0), math3d.V3(0, 3, 0))
	require.True(t, ok)
	assert.Equal(t, math3d.V3(0, 0, 1), n)

	_, ok = FaceNormal(math3d.V3(0, 0, 0), math3d.V3(1, 1, 1), math3d.V3(2, 2, 2))
	assert.False(t, ok, "collinear corners have no normal")

	p := math3d.V3(5, 5, 5)
	_, ok = FaceNormal(p, p, p)
	assert.False(t, ok, "coincident corners have no normal")
}

func TestMeshValidate(t *testing.T) {
	m := NewMesh("broken")
	m.Triangles = append(m.Triangles,
		Tri(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), Red),
		Tri(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(2, 0, 0), Blue),
	)

	err := m.Validate()
	require.ErrorIs(t, err, ErrDegenerate)
	assert.Contains(t, err.Error(), "triangle 1")
}

func TestMeshClone(t *testing.T) {
	m := Cube()
	c := m.Clone()
	require.Equal(t, m.TriangleCount(), c.TriangleCount())

	c.Triangles[0].V[0] = math3d.V3(9, 9, 9)
	assert.NotEqual(t, c.Triangles[0], m.Triangles[0], "clone must not share triangles")
}

func TestEmptyMeshBounds(t *testing.T) {
	min, max := NewMesh("empty").Bounds()
	assert.Equal(t, math3d.Zero3(), min)
	assert.Equal(t, math3d.Zero3(), max)
}
