package quarkgl

import "testing"

type memTarget struct {
	w, h int
	px   []Color
}

func newMemTarget(w, h int) *memTarget {
	return &memTarget{w: w, h: h, px: make([]Color, w*h)}
}

func (m *memTarget) Size() (int, int) { return m.w, m.h }

func (m *memTarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.px[y*m.w+x] = c
}

func (m *memTarget) Clear(c Color) {
	for i := range m.px {
		m.px[i] = c
	}
}

func (m *memTarget) count(c Color) int {
	n := 0
	for _, p := range m.px {
		if p == c {
			n++
		}
	}
	return n
}

func TestRenderDrawsEnabledMeshOnly(t *testing.T) {
	red := RGB(0xFF, 0, 0)
	s := CreateScene(2)
	box := BoxMesh(V3(0.5, 0.5, 0.5))
	box.Material = Material{BaseColor: red, Unlit: true}
	box.Transform = Mat4Translate(V3(0, 0, -2))
	id := s.AddMesh(box)

	r := NewRenderer(true)
	tgt := newMemTarget(64, 48)

	r.Render(tgt, s)
	if n := tgt.count(red); n != 0 {
		t.Fatalf("disabled mesh drew %d pixels", n)
	}

	s.SetMeshEnabled(id, true)
	r.Render(tgt, s)
	if n := tgt.count(red); n == 0 {
		t.Fatalf("enabled mesh drew nothing")
	}
}

func TestRenderTrackedCameraBehindMesh(t *testing.T) {
	green := RGB(0, 0xFF, 0)
	s := CreateScene(1)
	box := BoxMesh(V3(0.5, 0.5, 0.5))
	box.Material = Material{BaseColor: green, Unlit: true}
	box.Enabled = true
	s.AddMesh(box)

	// Camera looks down -Z; put it at +Z so the box is in front.
	s.Camera.Tracked = true
	s.Camera.Pose = Mat4Translate(V3(0, 0, 2))

	r := NewRenderer(true)
	tgt := newMemTarget(64, 48)
	r.Render(tgt, s)
	if tgt.count(green) == 0 {
		t.Fatalf("box in front of tracked camera not drawn")
	}

	// Turned around, the box is behind the camera and must be culled.
	s.Camera.Pose = Mat4Mul(Mat4Translate(V3(0, 0, 2)), Mat4RotateY(3.14159))
	r.Render(tgt, s)
	if n := tgt.count(green); n != 0 {
		t.Fatalf("box behind camera drew %d pixels", n)
	}
}

func TestSceneCapacityAndRemove(t *testing.T) {
	s := CreateScene(1)
	if id := s.AddMesh(BoxMesh(V3(1, 1, 1))); id != 0 {
		t.Fatalf("expected id 0, got %d", id)
	}
	if id := s.AddMesh(BoxMesh(V3(1, 1, 1))); id != -1 {
		t.Fatalf("expected full scene, got %d", id)
	}
	s.RemoveMesh(0)
	if _, ok := s.Mesh(0); ok {
		t.Fatalf("removed mesh still present")
	}
	if id := s.AddMesh(RingMesh(0.05, 0.07, 32)); id != 0 {
		t.Fatalf("slot not reused, got %d", id)
	}
}

func TestRingMeshIsFlat(t *testing.T) {
	m := RingMesh(0.05, 0.07, 32)
	if len(m.Vertices) != 64 || len(m.Indices) != 32*6 {
		t.Fatalf("unexpected ring size: %d verts %d indices", len(m.Vertices), len(m.Indices))
	}
	for _, v := range m.Vertices {
		if v.Pos.Y != 0 {
			t.Fatalf("ring vertex off the XZ plane: %+v", v.Pos)
		}
	}
}
