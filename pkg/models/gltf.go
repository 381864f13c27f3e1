package models

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrEmptyMesh is returned when exporting a mesh with no triangles.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// GLTFDocument converts a mesh to a glTF document holding a single
// non-indexed triangle primitive with POSITION and COLOR_0 attributes.
// Every triangle corner is written separately, so seams stay duplicated.
func GLTFDocument(m *Mesh) (*gltf.Document, error) {
	if m.TriangleCount() == 0 {
		return nil, fmt.Errorf("export %q: %w", m.Name, ErrEmptyMesh)
	}

	positions := make([][3]float32, 0, 3*len(m.Triangles))
	colors := make([][4]uint8, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		for _, v := range t.V {
			positions = append(positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
			colors = append(colors, [4]uint8{t.Color.R, t.Color.G, t.Color.B, t.Color.A})
		}
	}

	doc := gltf.NewDocument()
	posIdx := modeler.WritePosition(doc, positions)
	colIdx := modeler.WriteColor(doc, colors)

	doc.Meshes = []*gltf.Mesh{{
		Name: m.Name,
		Primitives: []*gltf.Primitive{{
			Mode: gltf.PrimitiveTriangles,
			Attributes: map[string]int{
				gltf.POSITION: posIdx,
				gltf.COLOR_0:  colIdx,
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: m.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// ExportGLB writes the mesh as a binary glTF (.glb) file.
func ExportGLB(m *Mesh, path string) error {
	doc, err := GLTFDocument(m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
