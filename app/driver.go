package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arplace/asset"
	"arplace/hal"
	"arplace/internal/future"
	"arplace/placement"
	"arplace/quarkgl"
	"arplace/xr"

	"github.com/google/uuid"
)

const (
	// MaxFrameDelta caps the animation step after a stall.
	MaxFrameDelta = 100 * time.Millisecond
	// IdleSpinPerFrame is the preview rotation in radians per frame.
	IdleSpinPerFrame quarkgl.Scalar = 0.005
	// PreviewScale is the uniform scale of a freshly loaded object.
	PreviewScale quarkgl.Scalar = 0.5
)

// PreviewPosition is where the object sits before it is placed.
var PreviewPosition = quarkgl.V3(0, 0, -1)

var (
	ErrPlacementDisabled = errors.New("app: placement is not available on this platform")
	ErrPresenting        = errors.New("app: session already presenting")
)

// FrameStats records what one Frame call did.
type FrameStats struct {
	Delta   time.Duration
	Selects int
	Spun    bool
	Dragged bool
	Placed  bool
}

// Driver runs the per-frame placement loop.
type Driver struct {
	ctx   context.Context
	log   hal.Logger
	neg   xr.Negotiation
	queue *placement.Queue
	axis  placement.AxisReader
	view  *view

	ctl   placement.Controller
	state SessionState
	stats FrameStats
}

// DriverConfig wires a Driver to its collaborators.
type DriverConfig struct {
	Negotiation xr.Negotiation
	Logger      hal.Logger
	// Framebuffer may be nil; the loop then runs without drawing.
	Framebuffer hal.Framebuffer
	// Axis is the analog input sampled while dragging. May be nil.
	Axis placement.AxisReader
	// Backdrop is drawn under the reticle while presenting.
	Backdrop *quarkgl.Mesh
	// HUD prints status lines over the frame.
	HUD bool
}

// NewDriver returns a driver with its select queue. ctx bounds the async
// requests the driver issues.
func NewDriver(ctx context.Context, cfg DriverConfig) *Driver {
	d := &Driver{
		ctx:   ctx,
		log:   cfg.Logger,
		neg:   cfg.Negotiation,
		queue: placement.NewQueue(),
		axis:  cfg.Axis,
	}
	d.state.Path = cfg.Negotiation.Path
	d.view = newView(cfg.Framebuffer, cfg.Negotiation.Path, cfg.Backdrop, cfg.HUD)
	return d
}

// Queue returns the select queue the input layer pushes into.
func (d *Driver) Queue() *placement.Queue { return d.queue }

// State exposes the session state for inspection.
func (d *Driver) State() *SessionState { return &d.state }

// Object returns the placed object, nil until the asset has loaded.
func (d *Driver) Object() *placement.PlacedObject { return d.ctl.Object() }

// Stats returns what the last Frame call did.
func (d *Driver) Stats() FrameStats { return d.stats }

func (d *Driver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (d *Driver) immersive() bool { return d.state.Path == xr.PathImmersivePlacement }

// LoadModel installs a pending asset load. The object appears on the first
// frame after f resolves.
func (d *Driver) LoadModel(f *future.Future[*asset.Model]) {
	d.state.load = f
}

// StartSession enters AR on the immersive path. It resolves the local
// reference space, starts a fresh hit-test lifecycle and hides the object
// until the user places it.
func (d *Driver) StartSession(ctx context.Context, s xr.Session) error {
	st := &d.state
	if !d.neg.PlacementEnabled || !d.immersive() {
		return ErrPlacementDisabled
	}
	if st.Presenting {
		return ErrPresenting
	}

	f := s.RequestReferenceSpace(ctx, xr.ReferenceSpaceLocal)
	select {
	case <-f.Done():
	case <-ctx.Done():
		_ = s.End()
		return ctx.Err()
	}
	ref, _, err := f.Poll()
	if err != nil {
		_ = s.End()
		return fmt.Errorf("request local reference space: %w", err)
	}

	st.resetSession()
	st.Session = s
	st.SessionID = uuid.New()
	st.RefSpace = ref
	st.Presenting = true
	d.ctl.EndDrag()
	if obj := d.ctl.Object(); obj != nil {
		obj.Visible = false
	}
	d.logf("session %s: started, space=%s", st.SessionID, ref.Type())
	return nil
}

// EndSession leaves AR and restores the preview.
func (d *Driver) EndSession() error {
	st := &d.state
	if !st.Presenting {
		return nil
	}
	s, id := st.Session, st.SessionID
	st.resetSession()
	d.ctl.EndDrag()
	if obj := d.ctl.Object(); obj != nil {
		obj.Position = PreviewPosition
		obj.Visible = true
	}

	err := s.End()
	if errors.Is(err, xr.ErrSessionEnded) {
		err = nil
	}
	d.logf("session %s: ended", id)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// Frame runs one iteration of the loop. ts is the frame timestamp and f the
// device frame, nil when no session is presenting.
func (d *Driver) Frame(ts time.Duration, f xr.Frame) error {
	st := &d.state
	d.stats = FrameStats{Delta: d.advanceClock(ts)}

	d.pollModel()
	st.Player.Advance(d.stats.Delta)
	d.drainSelects()

	obj := d.ctl.Object()
	switch {
	case d.immersive() && st.Presenting && d.ctl.Dragging():
		d.stats.Dragged = d.ctl.StepDrag(d.axis)
	case !st.Presenting && !d.neg.QuickLookOnly() && obj != nil:
		obj.Yaw += IdleSpinPerFrame
		d.stats.Spun = true
	}

	if f != nil && d.immersive() && st.Presenting {
		d.updateReticle(f)
	}

	return d.view.draw(st, obj, f, d.statusLines())
}

func (d *Driver) advanceClock(ts time.Duration) time.Duration {
	st := &d.state
	var delta time.Duration
	if st.framed {
		delta = min(max(ts-st.LastTimestamp, 0), MaxFrameDelta)
	}
	st.LastTimestamp = ts
	st.framed = true
	return delta
}

func (d *Driver) pollModel() {
	st := &d.state
	if st.load == nil {
		return
	}
	m, ok, err := st.load.Poll()
	if !ok {
		return
	}
	st.load = nil
	if err != nil {
		d.logf("asset load failed: %v", err)
		return
	}

	obj := &placement.PlacedObject{
		Visible:  !(d.immersive() && st.Presenting),
		Position: PreviewPosition,
		Scale:    quarkgl.V3(PreviewScale, PreviewScale, PreviewScale),
	}
	d.ctl.SetObject(obj)
	st.Model = m
	if len(m.Clips) > 0 {
		st.Player = asset.NewPlayer(m.Clips[0])
	}
	d.view.setModel(m)
	d.logf("asset %s loaded: %d triangles, %d clips", m.Name, len(m.Mesh.Indices)/3, len(m.Clips))
}

// drainSelects consumes queued select input. Outside an immersive session
// the events are discarded.
func (d *Driver) drainSelects() {
	st := &d.state
	accept := d.neg.PlacementEnabled && d.immersive() && st.Presenting
	d.stats.Selects = d.queue.Drain(func(ev placement.SelectEvent) {
		if !accept {
			return
		}
		switch ev.Kind {
		case placement.SelectStart:
			d.ctl.BeginDrag(d.axis)
		case placement.SelectEnd:
			d.ctl.EndDrag()
		case placement.Select:
			if d.ctl.OnSelect(st.Reticle) {
				d.stats.Placed = true
				p := d.ctl.Object().Position
				d.logf("session %s: placed at (%.2f, %.2f, %.2f)", st.SessionID, p.X, p.Y, p.Z)
			}
		}
	})
}

// updateReticle drives the hit-test subscription lifecycle and refreshes the
// reticle from the first hit of this frame.
func (d *Driver) updateReticle(f xr.Frame) {
	st := &d.state
	if st.Session == nil {
		return
	}
	if !st.HitTestRequested {
		st.HitTestRequested = true
		st.hitTestReq = st.Session.RequestHitTestSource(d.ctx, xr.HitTestOptions{Space: xr.ReferenceSpaceViewer})
	}
	if st.HitTestSource == nil && st.hitTestReq != nil {
		src, ok, err := st.hitTestReq.Poll()
		if ok {
			st.hitTestReq = nil
			if err != nil {
				d.logf("session %s: hit-test subscription failed: %v", st.SessionID, err)
			} else {
				st.HitTestSource = src
				d.logf("session %s: hit-test subscription ready", st.SessionID)
			}
		}
	}
	if st.HitTestSource == nil {
		return
	}

	if hits := f.HitTestResults(st.HitTestSource); len(hits) > 0 {
		if pose, ok := hits[0].Pose(st.RefSpace); ok {
			st.Reticle.Show(pose.Transform)
			return
		}
	}
	st.Reticle.Hide()
}
