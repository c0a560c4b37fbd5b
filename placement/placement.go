// Package placement holds the reticle and placed-object state and the
// controller that commits a placement when the user selects.
package placement

import "arplace/quarkgl"

// RotationSpeed scales analog axis deltas into yaw radians while dragging.
const RotationSpeed = 3

// ReticleState is the best current surface estimate.
//
// Transform is only meaningful while Visible; when Visible is false it holds
// a stale pose that must not be rendered or consumed.
type ReticleState struct {
	Visible   bool
	Transform quarkgl.Mat4
}

// Show records a fresh surface pose.
func (r *ReticleState) Show(m quarkgl.Mat4) {
	r.Visible = true
	r.Transform = m
}

// Hide marks the reticle as lost. The transform is left as is.
func (r *ReticleState) Hide() { r.Visible = false }

// PlacedObject is the single model instance in the scene.
type PlacedObject struct {
	Visible  bool
	Position quarkgl.Vec3
	Yaw      quarkgl.Scalar
	Scale    quarkgl.Vec3
}

// Transform composes the object's world transform.
func (o *PlacedObject) Transform() quarkgl.Mat4 {
	return quarkgl.Mat4TRS(o.Position, o.Yaw, o.Scale)
}

// AxisReader exposes a one-axis analog input (e.g. gamepad axis 0).
type AxisReader interface {
	// Axis returns the current axis value, or false if no analog input is
	// attached.
	Axis() (float64, bool)
}
