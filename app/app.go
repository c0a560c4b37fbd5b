// Package app wires the placement loop to the host: it negotiates the
// presentation path, loads the selected asset, turns pointer and key input
// into select events and session changes, and renders every frame.
package app

import (
	"context"

	"arplace/asset"
	"arplace/hal"
	"arplace/internal/buildinfo"
	"arplace/placement"
	"arplace/quarkgl"
	"arplace/xr"
	"arplace/xr/sim"
)

// Config selects what the app shows and how it reaches the device.
type Config struct {
	Negotiation xr.Negotiation
	Asset       asset.Entry
	Loader      asset.Loader
	// Device starts immersive sessions. Nil disables AR even on the
	// immersive path.
	Device xr.Device
	// Backdrop is drawn while presenting, standing in for the camera feed.
	Backdrop *quarkgl.Mesh
	// AutoAR enters AR on the first frame.
	AutoAR bool
}

// Aimer is a device whose viewer can be steered by the host.
type Aimer interface {
	Aim(yaw, pitch float64)
}

type system struct {
	ctx context.Context
	h   hal.HAL
	cfg Config
	d   *Driver

	autoTried bool
}

// NewWithConfig starts the app and returns the per-frame step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(context.Background(), h, cfg)
	return guard(h, s.step)
}

func newSystem(ctx context.Context, h hal.HAL, cfg Config) *system {
	dc := DriverConfig{
		Negotiation: cfg.Negotiation,
		Logger:      h.Logger(),
		Backdrop:    cfg.Backdrop,
		HUD:         true,
	}
	if disp := h.Display(); disp != nil {
		dc.Framebuffer = disp.Framebuffer()
	}
	if in := h.Input(); in != nil && in.Axis() != nil {
		dc.Axis = in.Axis()
	}
	s := &system{ctx: ctx, h: h, cfg: cfg, d: NewDriver(ctx, dc)}

	s.d.logf("%s", buildinfo.Banner())
	n := cfg.Negotiation
	s.d.logf("path=%s affordance=%s placement=%t", n.Path, n.Affordance, n.PlacementEnabled)
	if n.Affordance == xr.AffordanceQuickLook && cfg.Asset.QuickLook != "" {
		s.d.logf("quick look: %s", cfg.Asset.QuickLook)
	}

	loader := cfg.Loader
	if loader == nil {
		loader = asset.FileLoader{}
	}
	s.d.logf("asset %s: loading %s", cfg.Asset.Name, cfg.Asset.Model)
	s.d.LoadModel(asset.LoadAsync(ctx, loader, cfg.Asset.Model))
	return s
}

func (s *system) step() error {
	s.handleKeys()
	s.handlePointer()
	if s.cfg.AutoAR && !s.autoTried {
		s.autoTried = true
		s.enterAR()
	}

	var f xr.Frame
	if st := s.d.State(); st.Presenting {
		s.aim()
		f = st.Session.NextFrame()
		if f == nil {
			if err := s.d.EndSession(); err != nil {
				s.d.logf("%v", err)
			}
		}
	}

	now := s.d.State().LastTimestamp
	if c := s.h.Clock(); c != nil {
		now = c.Now()
	}
	return s.d.Frame(now, f)
}

func (s *system) enterAR() {
	if !s.cfg.Negotiation.PlacementEnabled || s.cfg.Device == nil {
		s.d.logf("AR is not available on this platform")
		return
	}
	if s.d.State().Presenting {
		return
	}
	sess, err := s.cfg.Device.StartSession(s.ctx)
	if err != nil {
		s.d.logf("start session: %v", err)
		return
	}
	if err := s.d.StartSession(s.ctx, sess); err != nil {
		s.d.logf("start session: %v", err)
	}
}

func (s *system) handleKeys() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEnter:
				s.enterAR()
			case hal.KeyEscape:
				if err := s.d.EndSession(); err != nil {
					s.d.logf("%v", err)
				}
			}
		default:
			return
		}
	}
}

// handlePointer maps primary pointer transitions onto select events: a press
// starts a select, a release completes it.
func (s *system) handlePointer() {
	in := s.h.Input()
	if in == nil || in.Pointer() == nil {
		return
	}
	q := s.d.Queue()
	ch := in.Pointer().Events()
	for {
		select {
		case ev := <-ch:
			switch ev.Kind {
			case hal.PointerDown:
				q.Push(placement.SelectEvent{Kind: placement.SelectStart})
			case hal.PointerUp:
				q.Push(placement.SelectEvent{Kind: placement.Select})
				q.Push(placement.SelectEvent{Kind: placement.SelectEnd})
			}
		default:
			return
		}
	}
}

// aim steers a simulated viewer from the pointer, or sweeps it when there
// is no pointer over the display.
func (s *system) aim() {
	a, ok := s.cfg.Device.(Aimer)
	if !ok {
		return
	}
	if in := s.h.Input(); in != nil && in.Pointer() != nil {
		if x, y, ok := in.Pointer().Position(); ok {
			a.Aim((0.5-x)*1.2, -0.35+(0.5-y)*1.2)
			return
		}
	}
	elapsed := s.d.State().LastTimestamp
	if c := s.h.Clock(); c != nil {
		elapsed = c.Now()
	}
	a.Aim(sim.SweepAim(elapsed))
}
