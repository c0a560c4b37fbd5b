package asset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path"
	"strings"
	"time"

	"arplace/internal/future"
	"arplace/quarkgl"
)

// BuiltinPrefix marks procedural models that need no file.
const BuiltinPrefix = "builtin:"

var (
	// ErrUnknownFormat is returned for paths the loader cannot read.
	ErrUnknownFormat = errors.New("asset: unknown format")
	// ErrNoGeometry is returned for scene files without triangles.
	ErrNoGeometry = errors.New("asset: no geometry")
)

// Model is a loaded scene: one merged mesh plus its animation clips.
type Model struct {
	Name  string
	Mesh  quarkgl.Mesh
	Clips []Clip

	// Pose optionally maps clip phase to a local transform applied under the
	// object's placement transform. Nil means the clip does not move the mesh.
	Pose func(phase float64) quarkgl.Mat4
}

// Loader loads a model from a path.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}

// LoadAsync runs l.Load on its own goroutine.
func LoadAsync(ctx context.Context, l Loader, p string) *future.Future[*Model] {
	return future.Go(func() (*Model, error) {
		return l.Load(ctx, p)
	})
}

// FileLoader reads builtin models and glTF files (.gltf, .glb).
type FileLoader struct{}

var _ Loader = FileLoader{}

func (FileLoader) Load(ctx context.Context, p string) (*Model, error) {
	if name, ok := strings.CutPrefix(p, BuiltinPrefix); ok {
		return builtin(name)
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".glb", ".gltf":
		return loadGLTF(ctx, p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, p)
	}
}

func builtin(name string) (*Model, error) {
	var mesh quarkgl.Mesh
	switch name {
	case "error":
		mesh = quarkgl.Transformed(quarkgl.BoxMesh(quarkgl.V3(0.4, 0.4, 0.4)), quarkgl.Mat4Translate(quarkgl.V3(0, 0.2, 0)))
		mesh.Material.BaseColor = quarkgl.RGB(0xE0, 0x30, 0x60)
	case "monk":
		body := quarkgl.ConeMesh(0.18, 0.12, 0.55, 16)
		head := quarkgl.Transformed(quarkgl.BoxMesh(quarkgl.V3(0.2, 0.2, 0.2)), quarkgl.Mat4Translate(quarkgl.V3(0, 0.67, 0)))
		mesh = quarkgl.MergeMeshes(body, head)
		mesh.Material.BaseColor = quarkgl.RGB(0xC8, 0x7A, 0x2C)
	case "tree":
		trunk := quarkgl.ConeMesh(0.06, 0.05, 0.3, 8)
		crown := quarkgl.Transformed(quarkgl.ConeMesh(0.3, 0, 0.6, 16), quarkgl.Mat4Translate(quarkgl.V3(0, 0.3, 0)))
		mesh = quarkgl.MergeMeshes(trunk, crown)
		mesh.Material.BaseColor = quarkgl.RGB(0x3C, 0xA0, 0x4A)
	default:
		return nil, fmt.Errorf("%w: builtin %q", ErrUnknownFormat, name)
	}
	return &Model{
		Name:  BuiltinPrefix + name,
		Mesh:  mesh,
		Clips: []Clip{{Name: "idle", Duration: 2 * time.Second}},
		Pose:  bob,
	}, nil
}

// bob lifts the mesh a few centimetres once per clip loop.
func bob(phase float64) quarkgl.Mat4 {
	h := 0.03 * (1 - math.Cos(2*math.Pi*phase)) / 2
	return quarkgl.Mat4Translate(quarkgl.V3(0, quarkgl.Scalar(h), 0))
}
