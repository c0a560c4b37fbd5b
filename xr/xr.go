// Package xr defines the contract between the placement loop and a
// motion-tracking device: reference spaces, hit-test subscriptions and
// per-frame hit results.
//
// Implementations live elsewhere (see xr/sim); this package only names what
// the loop consumes.
package xr

import (
	"context"
	"errors"

	"arplace/internal/future"
	"arplace/quarkgl"
)

var (
	// ErrSessionEnded is returned for requests made after End.
	ErrSessionEnded = errors.New("xr: session ended")
	// ErrNotSupported is returned when the device lacks a requested feature.
	ErrNotSupported = errors.New("xr: not supported")
)

// ReferenceSpaceType selects the coordinate space a pose is expressed in.
type ReferenceSpaceType uint8

const (
	// ReferenceSpaceLocal is stable for the session, origin near the
	// viewer's starting position.
	ReferenceSpaceLocal ReferenceSpaceType = iota
	// ReferenceSpaceViewer follows the viewer.
	ReferenceSpaceViewer
)

func (t ReferenceSpaceType) String() string {
	switch t {
	case ReferenceSpaceLocal:
		return "local"
	case ReferenceSpaceViewer:
		return "viewer"
	default:
		return "unknown"
	}
}

// ReferenceSpace is an opaque handle to a coordinate space owned by the
// session. It is invalid once the session ends.
type ReferenceSpace interface {
	Type() ReferenceSpaceType
}

// HitTestSource is an opaque hit-test subscription bound to a space.
type HitTestSource interface {
	Space() ReferenceSpace
}

// HitTestOptions configures a hit-test subscription request.
type HitTestOptions struct {
	Space ReferenceSpaceType
}

// Pose is a rigid transform expressed in some reference space.
type Pose struct {
	Transform quarkgl.Mat4
}

// HitTestResult is one ray/surface intersection in a frame.
type HitTestResult interface {
	// Pose returns the intersection pose relative to space. It reports
	// false if the pose cannot be expressed in that space this frame.
	Pose(space ReferenceSpace) (Pose, bool)
}

// Frame is the per-frame device context available while a session is
// presenting.
type Frame interface {
	// HitTestResults returns intersections for src ordered by the device's
	// priority, nearest first.
	HitTestResults(src HitTestSource) []HitTestResult
	// ViewerPose returns the viewer pose in space.
	ViewerPose(space ReferenceSpace) (Pose, bool)
}

// Session is an active immersive session.
type Session interface {
	// RequestReferenceSpace resolves a reference space.
	RequestReferenceSpace(ctx context.Context, t ReferenceSpaceType) *future.Future[ReferenceSpace]
	// RequestHitTestSource asynchronously creates a hit-test subscription.
	// The returned future may never resolve.
	RequestHitTestSource(ctx context.Context, opts HitTestOptions) *future.Future[HitTestSource]
	// NextFrame returns the device context for the frame about to be
	// rendered, or nil once the session has ended.
	NextFrame() Frame
	// End terminates the session and invalidates its spaces and sources.
	End() error
}

// Device starts immersive sessions.
type Device interface {
	StartSession(ctx context.Context) (Session, error)
}
