package asset

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// SaveGLB writes the model's mesh as a binary glTF file with a single node.
// Clips are not written.
func SaveGLB(m *Model, name string) error {
	if m == nil || len(m.Mesh.Indices) < 3 {
		return ErrNoGeometry
	}
	positions := make([][3]float32, len(m.Mesh.Vertices))
	for i, v := range m.Mesh.Vertices {
		positions[i] = [3]float32{v.Pos.X, v.Pos.Y, v.Pos.Z}
	}

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	idx := modeler.WriteIndices(doc, m.Mesh.Indices)
	doc.Meshes = []*gltf.Mesh{{
		Name: m.Name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: m.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, name); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
