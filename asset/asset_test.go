package asset

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		selection string
		dir       string
		want      Entry
	}{
		{"reno", "assets", Entry{Name: "reno", Model: "assets/monk_character.glb", QuickLook: "assets/pc.usdz"}},
		{" ARBOL ", "", Entry{Name: "arbol", Model: "tree.glb", QuickLook: "tree.usdz"}},
		{"", "assets", Entry{Name: ErrorName, Model: "builtin:error"}},
		{"dragon", "assets", Entry{Name: ErrorName, Model: "builtin:error"}},
	}
	for _, tt := range tests {
		t.Run(tt.selection, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.selection, tt.dir))
		})
	}
}

func TestBuiltinModelsHaveOneClip(t *testing.T) {
	for _, name := range []string{"error", "monk", "tree"} {
		m, err := FileLoader{}.Load(context.Background(), BuiltinPrefix+name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, m.Mesh.Vertices, name)
		assert.GreaterOrEqual(t, len(m.Mesh.Indices), 3, name)
		require.Len(t, m.Clips, 1, name)
		assert.Positive(t, m.Clips[0].Duration, name)
		require.NotNil(t, m.Pose, name)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := FileLoader{}.Load(context.Background(), "model.usdz")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = FileLoader{}.Load(context.Background(), BuiltinPrefix+"nope")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = FileLoader{}.Load(context.Background(), filepath.Join(t.TempDir(), "missing.glb"))
	require.Error(t, err)
}

func TestLoadAsync(t *testing.T) {
	f := LoadAsync(context.Background(), FileLoader{}, BuiltinPrefix+"error")
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatalf("load never finished")
	}
	m, ok, err := f.Poll()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "builtin:error", m.Name)
}

func TestPlayerLoops(t *testing.T) {
	p := NewPlayer(Clip{Name: "idle", Duration: time.Second})
	p.Advance(600 * time.Millisecond)
	p.Advance(600 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, p.Time())
	assert.Equal(t, 1200*time.Millisecond, p.Played())
	assert.InDelta(t, 0.2, p.Phase(), 1e-9)
	assert.Equal(t, "idle", p.Clip().Name)

	p.Advance(-time.Second)
	assert.Equal(t, 1200*time.Millisecond, p.Played())
}

func TestPlayerZeroLengthClip(t *testing.T) {
	p := NewPlayer(Clip{})
	p.Advance(time.Second)
	assert.Equal(t, time.Second, p.Time())
	assert.Zero(t, p.Phase())
}

func TestSaveGLBRoundTrip(t *testing.T) {
	src, err := FileLoader{}.Load(context.Background(), BuiltinPrefix+"tree")
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "tree.glb")
	require.NoError(t, SaveGLB(src, name))

	got, err := FileLoader{}.Load(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, "tree.glb", got.Name)
	assert.Len(t, got.Mesh.Vertices, len(src.Mesh.Vertices))
	assert.Equal(t, src.Mesh.Indices, got.Mesh.Indices)
	assert.Equal(t, src.Mesh.Vertices[3], got.Mesh.Vertices[3])
	assert.Empty(t, got.Clips)
}

func TestSaveGLBRejectsEmptyModel(t *testing.T) {
	require.ErrorIs(t, SaveGLB(&Model{}, filepath.Join(t.TempDir(), "x.glb")), ErrNoGeometry)
}
