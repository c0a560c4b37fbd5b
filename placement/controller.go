package placement

import "arplace/quarkgl"

// Controller places, re-places and rotates the single PlacedObject.
//
// It is driven from the frame loop; it is not safe for concurrent use.
type Controller struct {
	obj *PlacedObject

	dragging bool
	lastAxis float64
}

// SetObject installs the object once its asset has loaded.
func (c *Controller) SetObject(o *PlacedObject) { c.obj = o }

// Object returns the placed object or nil before the asset has loaded.
func (c *Controller) Object() *PlacedObject { return c.obj }

// HasObject reports whether the asset has loaded.
func (c *Controller) HasObject() bool { return c.obj != nil }

// OnSelect moves the object to the reticle's position and makes it visible.
//
// It is a silent no-op while the reticle is hidden or before an object
// exists, and reports whether the object was placed. Only the translation is
// taken from the reticle; the object keeps its yaw and scale. Selecting
// again re-places the same object.
func (c *Controller) OnSelect(r ReticleState) bool {
	if !r.Visible || c.obj == nil {
		return false
	}
	c.obj.Position = quarkgl.Mat4Position(r.Transform)
	c.obj.Visible = true
	return true
}

// BeginDrag starts a rotation drag and samples the axis baseline.
func (c *Controller) BeginDrag(axis AxisReader) {
	c.dragging = true
	if v, ok := readAxis(axis); ok {
		c.lastAxis = v
	}
}

// EndDrag stops the rotation drag.
func (c *Controller) EndDrag() { c.dragging = false }

// Dragging reports whether a rotation drag is held.
func (c *Controller) Dragging() bool { return c.dragging }

// StepDrag applies one frame of drag rotation and reports whether the yaw
// was updated.
func (c *Controller) StepDrag(axis AxisReader) bool {
	if !c.dragging || c.obj == nil {
		return false
	}
	v, ok := readAxis(axis)
	if !ok {
		return false
	}
	c.obj.Yaw += quarkgl.Scalar((v - c.lastAxis) * RotationSpeed)
	c.lastAxis = v
	return true
}

func readAxis(axis AxisReader) (float64, bool) {
	if axis == nil {
		return 0, false
	}
	return axis.Axis()
}
