package app

import (
	"fmt"

	"arplace/asset"
	"arplace/hal"
	"arplace/placement"
	"arplace/quarkgl"
	"arplace/xr"
)

var (
	previewClear   = quarkgl.RGB(0xF2, 0xF2, 0xF2)
	passthrough    = quarkgl.RGB(0x20, 0x24, 0x2A)
	reticleColor   = quarkgl.RGB(0xFF, 0xFF, 0xFF)
	backdropColor  = quarkgl.RGB(0x5A, 0x62, 0x6E)
	previewEye     = quarkgl.V3(0, 0.15, 0)
	previewTarget  = quarkgl.V3(0, 0.15, -1)
	reticleInner   = quarkgl.Scalar(0.05)
	reticleOuter   = quarkgl.Scalar(0.07)
	reticleSegment = 32
)

// view owns the scene and draws the loop state into the framebuffer.
type view struct {
	fb     hal.Framebuffer
	target quarkgl.RGB565Target
	r      *quarkgl.Renderer
	scene  *quarkgl.Scene
	hud    *hud

	model      *asset.Model
	modelID    int
	reticleID  int
	backdropID int
}

// newView builds the scene. The reticle mesh only exists on the immersive
// path.
func newView(fb hal.Framebuffer, path xr.Path, backdrop *quarkgl.Mesh, withHUD bool) *view {
	v := &view{
		fb:         fb,
		r:          quarkgl.NewRenderer(true),
		scene:      quarkgl.CreateScene(4),
		modelID:    -1,
		reticleID:  -1,
		backdropID: -1,
	}
	v.scene.Camera.Position = previewEye
	v.scene.Camera.Target = previewTarget

	if path == xr.PathImmersivePlacement {
		ring := quarkgl.RingMesh(reticleInner, reticleOuter, reticleSegment)
		ring.Material = quarkgl.Material{BaseColor: reticleColor, Unlit: true}
		v.reticleID = v.scene.AddMesh(ring)
	}

	if backdrop != nil {
		m := *backdrop
		if m.Material.BaseColor == (quarkgl.Color{}) {
			m.Material = quarkgl.Material{BaseColor: backdropColor, Unlit: true}
		}
		v.backdropID = v.scene.AddMesh(m)
	}

	if fb != nil && fb.Format() == hal.PixelFormatRGB565 {
		v.target = quarkgl.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
		if withHUD {
			v.hud = newHUD(fb)
		}
	}
	return v
}

func (v *view) setModel(m *asset.Model) {
	if v.modelID >= 0 {
		v.scene.RemoveMesh(v.modelID)
	}
	v.model = m
	v.modelID = v.scene.AddMesh(m.Mesh)
}

// sync copies loop state into the scene.
func (v *view) sync(st *SessionState, obj *placement.PlacedObject, f xr.Frame) {
	if obj != nil && v.modelID >= 0 {
		m := obj.Transform()
		if v.model != nil && v.model.Pose != nil {
			m = quarkgl.Mat4Mul(m, v.model.Pose(st.Player.Phase()))
		}
		v.scene.UpdateMeshTransform(v.modelID, m)
		v.scene.SetMeshEnabled(v.modelID, obj.Visible)
	}

	v.scene.SetMeshEnabled(v.reticleID, st.Presenting && st.Reticle.Visible)
	if st.Reticle.Visible {
		v.scene.UpdateMeshTransform(v.reticleID, st.Reticle.Transform)
	}
	v.scene.SetMeshEnabled(v.backdropID, st.Presenting)

	cam := &v.scene.Camera
	cam.Tracked = false
	v.r.ClearColor = previewClear
	if st.Presenting {
		v.r.ClearColor = passthrough
		if f != nil && st.RefSpace != nil {
			if pose, ok := f.ViewerPose(st.RefSpace); ok {
				cam.Tracked = true
				cam.Pose = pose.Transform
			}
		}
	}
}

func (v *view) draw(st *SessionState, obj *placement.PlacedObject, f xr.Frame, lines []string) error {
	v.sync(st, obj, f)
	if v.fb == nil || v.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	v.r.Render(&v.target, v.scene)
	if v.hud != nil {
		v.hud.draw(lines)
	}
	if err := v.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
