package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
)

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; the depth buffer is kept between frames.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a flat-shaded renderer with an optional depth buffer.
func NewRenderer(enableDepth bool) *Renderer {
	return &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	if r.Depth {
		r.resetDepth(w * h)
	}

	aspect := Scalar(w) / Scalar(h)
	viewProj := Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())

	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, viewProj, m, s.Light)
	})
}

func (r *Renderer) resetDepth(n int) {
	if cap(r.depthBuf) < n {
		r.depthBuf = make([]float32, n)
	}
	r.depthBuf = r.depthBuf[:n]
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

type screenPoint struct {
	x, y int
	z    float32
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	mvp := Mat4Mul(viewProj, m.Transform)
	n := uint32(len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}
		a, b, c := m.Vertices[i0].Pos, m.Vertices[i1].Pos, m.Vertices[i2].Pos

		p0, ok0 := project(mvp, a, w, h)
		p1, ok1 := project(mvp, b, w, h)
		p2, ok2 := project(mvp, c, w, h)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		col := m.Material.BaseColor
		if !m.Material.Unlit && light.Mode == LightAmbientDirectional {
			// Normals are taken in object space rotated by the model matrix.
			nrm := triangleNormal(a, b, c)
			wn := Mat4MulV4(m.Transform, Vec4{X: nrm.X, Y: nrm.Y, Z: nrm.Z})
			col = col.MulScalar(lightIntensity(light, Normalize(V3(wn.X, wn.Y, wn.Z))))
		}

		if r.Mode == RenderWireframe {
			drawLine(t, p0.x, p0.y, p1.x, p1.y, col)
			drawLine(t, p1.x, p1.y, p2.x, p2.y, col)
			drawLine(t, p2.x, p2.y, p0.x, p0.y, col)
			continue
		}
		r.fillTriangle(t, w, h, p0, p1, p2, col)
	}
}

// project maps an object-space point to screen space. Points at or behind
// the eye are rejected, which drops the whole triangle.
func project(mvp Mat4, p Vec3, w, h int) (screenPoint, bool) {
	c := Mat4MulV4(mvp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if c.W <= 0 {
		return screenPoint{}, false
	}
	inv := 1 / c.W
	nx, ny, nz := c.X*inv, c.Y*inv, c.Z*inv
	sx := (nx*0.5 + 0.5) * float32(w-1)
	sy := (1 - (ny*0.5 + 0.5)) * float32(h-1)
	return screenPoint{x: int(sx + 0.5), y: int(sy + 0.5), z: nz}, true
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		// Two-sided: imported meshes have mixed winding.
		d = -d
	}
	return Clamp01(amb + d*Clamp01(l.DirAmount))
}

func (r *Renderer) depthTest(w, x, y int, z float32) bool {
	if !r.Depth {
		return true
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) fillTriangle(t Target, w, h int, p0, p1, p2 screenPoint, c Color) {
	minX := max(min(p0.x, p1.x, p2.x), 0)
	maxX := min(max(p0.x, p1.x, p2.x), w-1)
	minY := max(min(p0.y, p1.y, p2.y), 0)
	maxY := min(max(p0.y, p1.y, p2.y), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(p0.x, p0.y, p1.x, p1.y, p2.x, p2.y)
	if area == 0 {
		return
	}
	invArea := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(p1.x, p1.y, p2.x, p2.y, x, y)
			w1 := edgeFn(p2.x, p2.y, p0.x, p0.y, x, y)
			w2 := edgeFn(p0.x, p0.y, p1.x, p1.y, x, y)
			// Accept either winding.
			if area > 0 && (w0|w1|w2) < 0 {
				continue
			}
			if area < 0 && (w0 > 0 || w1 > 0 || w2 > 0) {
				continue
			}
			z := (float32(w0)*p0.z + float32(w1)*p1.z + float32(w2)*p2.z) * invArea
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
