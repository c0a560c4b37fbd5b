package quarkgl

import "math"

// RingMesh builds a flat annulus in the XZ plane facing +Y.
func RingMesh(inner, outer Scalar, segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	verts := make([]Vertex, 0, segments*2)
	indices := make([]uint32, 0, segments*6)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		c, s := Scalar(math.Cos(a)), Scalar(math.Sin(a))
		verts = append(verts,
			Vertex{Pos: V3(c*inner, 0, s*inner)},
			Vertex{Pos: V3(c*outer, 0, s*outer)},
		)
	}
	n := uint32(segments)
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		in0, out0 := i*2, i*2+1
		in1, out1 := j*2, j*2+1
		indices = append(indices, in0, out1, out0, in0, in1, out1)
	}
	return Mesh{Vertices: verts, Indices: indices}
}

// BoxMesh builds an axis-aligned box centered on the origin.
func BoxMesh(size Vec3) Mesh {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	corners := [8]Vec3{
		V3(-hx, -hy, -hz), V3(hx, -hy, -hz), V3(hx, hy, -hz), V3(-hx, hy, -hz),
		V3(-hx, -hy, hz), V3(hx, -hy, hz), V3(hx, hy, hz), V3(-hx, hy, hz),
	}
	verts := make([]Vertex, len(corners))
	for i, p := range corners {
		verts[i] = Vertex{Pos: p}
	}
	return Mesh{
		Vertices: verts,
		Indices: []uint32{
			0, 2, 1, 0, 3, 2, // back
			4, 5, 6, 4, 6, 7, // front
			0, 1, 5, 0, 5, 4, // bottom
			3, 7, 6, 3, 6, 2, // top
			0, 4, 7, 0, 7, 3, // left
			1, 2, 6, 1, 6, 5, // right
		},
	}
}

// ConeMesh builds a cone (topRadius 0) or a capped cylinder standing on the
// XZ plane with its base at y=0.
func ConeMesh(baseRadius, topRadius, height Scalar, segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	verts := make([]Vertex, 0, segments*2+2)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		c, s := Scalar(math.Cos(a)), Scalar(math.Sin(a))
		verts = append(verts,
			Vertex{Pos: V3(c*baseRadius, 0, s*baseRadius)},
			Vertex{Pos: V3(c*topRadius, height, s*topRadius)},
		)
	}
	n := uint32(segments)
	bottom := uint32(len(verts))
	verts = append(verts, Vertex{Pos: V3(0, 0, 0)}, Vertex{Pos: V3(0, height, 0)})
	top := bottom + 1

	indices := make([]uint32, 0, segments*12)
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		b0, t0 := i*2, i*2+1
		b1, t1 := j*2, j*2+1
		indices = append(indices, b0, t0, t1, b0, t1, b1)
		indices = append(indices, bottom, b0, b1)
		if topRadius > 0 {
			indices = append(indices, top, t1, t0)
		}
	}
	return Mesh{Vertices: verts, Indices: indices}
}

// GridMesh builds a square grid of thin lines in the XZ plane.
func GridMesh(half Scalar, cells int, thickness Scalar) Mesh {
	if cells < 1 {
		cells = 1
	}
	var out Mesh
	step := 2 * half / Scalar(cells)
	for i := 0; i <= cells; i++ {
		p := -half + Scalar(i)*step
		line := BoxMesh(V3(2*half, 0, thickness))
		out = MergeMeshes(out, Transformed(line, Mat4Translate(V3(0, 0, p))))
		line = BoxMesh(V3(thickness, 0, 2*half))
		out = MergeMeshes(out, Transformed(line, Mat4Translate(V3(p, 0, 0))))
	}
	return out
}

// MergeMeshes concatenates geometry. Material and transform come from the
// first mesh.
func MergeMeshes(ms ...Mesh) Mesh {
	if len(ms) == 0 {
		return Mesh{}
	}
	out := Mesh{Transform: ms[0].Transform, Material: ms[0].Material}
	for _, m := range ms {
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}

// Transformed bakes m into the vertex positions of a copy of mesh.
func Transformed(mesh Mesh, m Mat4) Mesh {
	verts := make([]Vertex, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		p := Mat4MulV4(m, Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1})
		verts[i] = Vertex{Pos: V3(p.X, p.Y, p.Z)}
	}
	mesh.Vertices = verts
	return mesh
}
