// Package sim is a simulated motion-tracking device for hosts without AR
// hardware.
//
// The viewer stands at the origin of the local reference space and aims
// with yaw/pitch. Hit tests cast the viewer's forward ray onto a bounded
// horizontal floor below it.
package sim

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"arplace/internal/future"
	"arplace/quarkgl"
	"arplace/xr"

	"gonum.org/v1/gonum/spatial/r3"
)

// Config tunes the simulated environment.
type Config struct {
	// FloorY is the floor height relative to the viewer.
	FloorY float64
	// FloorRadius bounds the detectable floor around the origin.
	FloorRadius float64
	// HitTestLatency delays hit-test subscription resolution.
	HitTestLatency time.Duration
	// FailHitTest resolves subscription requests with xr.ErrNotSupported.
	FailHitTest bool
	// StallHitTest leaves subscription requests unresolved forever.
	StallHitTest bool
}

// DefaultConfig returns a floor 1.4m below the viewer, 3m across.
func DefaultConfig() Config {
	return Config{
		FloorY:         -1.4,
		FloorRadius:    3,
		HitTestLatency: 50 * time.Millisecond,
	}
}

// Device is the simulated hardware. It is safe for concurrent use.
type Device struct {
	cfg Config

	mu         sync.Mutex
	yaw, pitch float64

	hitTestRequests atomic.Int32
}

// NewDevice returns a device aiming straight ahead.
func NewDevice(cfg Config) *Device {
	if cfg.FloorRadius <= 0 {
		cfg.FloorRadius = DefaultConfig().FloorRadius
	}
	return &Device{cfg: cfg}
}

// Aim sets the viewer orientation. Pitch is clamped to ±89°.
func (d *Device) Aim(yaw, pitch float64) {
	const limit = 89 * math.Pi / 180
	pitch = math.Max(-limit, math.Min(limit, pitch))
	d.mu.Lock()
	d.yaw, d.pitch = yaw, pitch
	d.mu.Unlock()
}

func (d *Device) aim() (yaw, pitch float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.yaw, d.pitch
}

// HitTestRequests returns how many subscriptions were requested across all
// sessions.
func (d *Device) HitTestRequests() int { return int(d.hitTestRequests.Load()) }

var _ xr.Device = (*Device)(nil)

// Start begins an immersive session.
func (d *Device) Start() *Session {
	s := &Session{d: d}
	s.local = &space{t: xr.ReferenceSpaceLocal, s: s}
	s.viewer = &space{t: xr.ReferenceSpaceViewer, s: s}
	return s
}

// StartSession implements xr.Device.
func (d *Device) StartSession(ctx context.Context) (xr.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.Start(), nil
}

// SweepAim returns a scripted aim that pans left and right and dips the
// gaze below and above the horizon, so the reticle comes and goes.
func SweepAim(elapsed time.Duration) (yaw, pitch float64) {
	t := elapsed.Seconds()
	yaw = 0.6 * math.Sin(t*0.5)
	pitch = -0.45 + 0.5*math.Sin(t*0.8)
	return yaw, pitch
}

// Session implements xr.Session.
type Session struct {
	d      *Device
	local  *space
	viewer *space
	ended  atomic.Bool
}

var _ xr.Session = (*Session)(nil)

type space struct {
	t xr.ReferenceSpaceType
	s *Session
}

func (sp *space) Type() xr.ReferenceSpaceType { return sp.t }

type hitTestSource struct {
	space *space
}

func (h *hitTestSource) Space() xr.ReferenceSpace { return h.space }

// RequestReferenceSpace resolves immediately.
func (s *Session) RequestReferenceSpace(_ context.Context, t xr.ReferenceSpaceType) *future.Future[xr.ReferenceSpace] {
	f := future.New[xr.ReferenceSpace]()
	switch {
	case s.ended.Load():
		f.Resolve(nil, xr.ErrSessionEnded)
	case t == xr.ReferenceSpaceLocal:
		f.Resolve(s.local, nil)
	case t == xr.ReferenceSpaceViewer:
		f.Resolve(s.viewer, nil)
	default:
		f.Resolve(nil, xr.ErrNotSupported)
	}
	return f
}

// RequestHitTestSource resolves after the configured latency on its own
// goroutine.
func (s *Session) RequestHitTestSource(ctx context.Context, opts xr.HitTestOptions) *future.Future[xr.HitTestSource] {
	s.d.hitTestRequests.Add(1)
	f := future.New[xr.HitTestSource]()
	if s.ended.Load() {
		f.Resolve(nil, xr.ErrSessionEnded)
		return f
	}
	if s.d.cfg.StallHitTest {
		return f
	}
	sp := s.viewer
	if opts.Space == xr.ReferenceSpaceLocal {
		sp = s.local
	}
	go func() {
		timer := time.NewTimer(s.d.cfg.HitTestLatency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			f.Resolve(nil, ctx.Err())
			return
		case <-timer.C:
		}
		switch {
		case s.ended.Load():
			f.Resolve(nil, xr.ErrSessionEnded)
		case s.d.cfg.FailHitTest:
			f.Resolve(nil, xr.ErrNotSupported)
		default:
			f.Resolve(&hitTestSource{space: sp}, nil)
		}
	}()
	return f
}

// End invalidates the session's spaces and sources.
func (s *Session) End() error {
	if s.ended.Swap(true) {
		return xr.ErrSessionEnded
	}
	return nil
}

// Local returns the session's local reference space.
func (s *Session) Local() xr.ReferenceSpace { return s.local }

// NextFrame snapshots the viewer for one rendered frame. It returns nil
// once the session has ended.
func (s *Session) NextFrame() xr.Frame {
	if s.ended.Load() {
		return nil
	}
	yaw, pitch := s.d.aim()
	return &frame{s: s, yaw: yaw, pitch: pitch}
}

type frame struct {
	s          *Session
	yaw, pitch float64
}

// viewerPose is the viewer-to-local transform: Ry(yaw) * Rx(pitch).
func (f *frame) viewerPose() quarkgl.Mat4 {
	return quarkgl.Mat4Mul(quarkgl.Mat4RotateY(quarkgl.Scalar(f.yaw)), quarkgl.Mat4RotateX(quarkgl.Scalar(f.pitch)))
}

func (f *frame) forward() r3.Vec {
	cp := math.Cos(f.pitch)
	return r3.Vec{
		X: -math.Sin(f.yaw) * cp,
		Y: math.Sin(f.pitch),
		Z: -math.Cos(f.yaw) * cp,
	}
}

func (f *frame) ViewerPose(sp xr.ReferenceSpace) (xr.Pose, bool) {
	own, ok := f.ownSpace(sp)
	if !ok {
		return xr.Pose{}, false
	}
	if own.t == xr.ReferenceSpaceViewer {
		return xr.Pose{Transform: quarkgl.Mat4Identity()}, true
	}
	return xr.Pose{Transform: f.viewerPose()}, true
}

func (f *frame) HitTestResults(src xr.HitTestSource) []xr.HitTestResult {
	h, ok := src.(*hitTestSource)
	if !ok || h.space.s != f.s || f.s.ended.Load() {
		return nil
	}
	p, ok := castFloor(r3.Vec{}, f.forward(), f.s.d.cfg.FloorY, f.s.d.cfg.FloorRadius)
	if !ok {
		return nil
	}
	return []xr.HitTestResult{&hit{f: f, at: p}}
}

func (f *frame) ownSpace(sp xr.ReferenceSpace) (*space, bool) {
	own, ok := sp.(*space)
	if !ok || own.s != f.s || f.s.ended.Load() {
		return nil, false
	}
	return own, true
}

type hit struct {
	f  *frame
	at r3.Vec
}

func (h *hit) Pose(sp xr.ReferenceSpace) (xr.Pose, bool) {
	own, ok := h.f.ownSpace(sp)
	if !ok {
		return xr.Pose{}, false
	}
	m := quarkgl.Mat4Translate(quarkgl.V3(quarkgl.Scalar(h.at.X), quarkgl.Scalar(h.at.Y), quarkgl.Scalar(h.at.Z)))
	if own.t == xr.ReferenceSpaceViewer {
		m = quarkgl.Mat4Mul(quarkgl.Mat4InverseRigid(h.f.viewerPose()), m)
	}
	return xr.Pose{Transform: m}, true
}

// castFloor intersects a ray with the plane y=floorY, limited to a disc of
// the given radius around the origin.
func castFloor(origin, dir r3.Vec, floorY, radius float64) (r3.Vec, bool) {
	up := r3.Vec{Y: 1}
	denom := r3.Dot(dir, up)
	if denom >= -1e-6 {
		return r3.Vec{}, false
	}
	t := (floorY - r3.Dot(origin, up)) / denom
	if t <= 0 {
		return r3.Vec{}, false
	}
	p := r3.Add(origin, r3.Scale(t, dir))
	if r3.Norm(r3.Vec{X: p.X, Z: p.Z}) > radius {
		return r3.Vec{}, false
	}
	return p, true
}
