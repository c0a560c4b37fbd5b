package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	// Unlit skips lighting; used for indicators that must read as flat color.
	Unlit bool
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

// Camera describes a perspective viewing transform.
//
// When Tracked is set the view is derived from Pose (a rigid camera-to-world
// transform, e.g. a tracked viewer pose); otherwise from Position/Target/Up.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	Tracked bool
	Pose    Mat4

	FOVYRad Scalar
	Near    Scalar
	Far     Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	if c.Tracked {
		return Mat4InverseRigid(c.Pose)
	}
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos Vec3
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint32 // triangle list

	Transform Mat4
	Material  Material
}

// Scene is a collection of meshes to render.
//
// Mesh ids are stable for the life of the scene; removed slots are reused.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 0),
			Target:   V3(0, 0, -1),
			Up:       V3(0, 1, 0),
			FOVYRad:  1.22, // ~70 degrees
			Near:     0.01,
			Far:      20,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.35,
			Dir:       Normalize(V3(-1, -1, -1)),
			DirAmount: 0.65,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if !s.valid(id) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Transform = m
}

// Mesh returns a copy of the mesh with the given id.
func (s *Scene) Mesh(id int) (Mesh, bool) {
	if !s.valid(id) {
		return Mesh{}, false
	}
	return s.meshes[id], true
}

func (s *Scene) valid(id int) bool {
	return s != nil && id >= 0 && id < len(s.meshes) && s.alive[id]
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
