package asset

import (
	"context"
	"fmt"
	"path"
	"time"

	"arplace/quarkgl"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// loadGLTF merges every mesh primitive of the document into one mesh.
// Node transforms are not applied; scene files are expected to be authored
// around the origin.
func loadGLTF(ctx context.Context, name string) (*Model, error) {
	doc, err := gltf.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	m := &Model{Name: path.Base(name)}
	for _, mesh := range doc.Meshes {
		for i, prim := range mesh.Primitives {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			part, ok, err := readPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", mesh.Name, i, err)
			}
			if ok {
				m.Mesh = quarkgl.MergeMeshes(m.Mesh, part)
			}
		}
	}
	if len(m.Mesh.Indices) < 3 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoGeometry)
	}
	m.Mesh.Material.BaseColor = quarkgl.RGB(0xD0, 0xC8, 0xB8)

	for _, a := range doc.Animations {
		m.Clips = append(m.Clips, Clip{Name: a.Name, Duration: clipDuration(doc, a)})
	}
	return m, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (quarkgl.Mesh, bool, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return quarkgl.Mesh{}, false, nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return quarkgl.Mesh{}, false, fmt.Errorf("read positions: %w", err)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return quarkgl.Mesh{}, false, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	out := quarkgl.Mesh{
		Vertices: make([]quarkgl.Vertex, len(positions)),
		Indices:  indices,
	}
	for i, p := range positions {
		out.Vertices[i] = quarkgl.Vertex{Pos: quarkgl.V3(p[0], p[1], p[2])}
	}
	return out, true, nil
}

// clipDuration is the largest keyframe time across the clip's samplers,
// read from the input accessors' max bound.
func clipDuration(doc *gltf.Document, a *gltf.Animation) time.Duration {
	var longest float64
	for _, s := range a.Samplers {
		acc := doc.Accessors[s.Input]
		if len(acc.Max) == 0 {
			continue
		}
		if v := float64(acc.Max[0]); v > longest {
			longest = v
		}
	}
	return time.Duration(longest * float64(time.Second))
}
