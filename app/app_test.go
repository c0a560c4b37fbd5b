package app

import (
	"context"
	"testing"
	"time"

	"arplace/asset"
	"arplace/hal"
	"arplace/xr"
	"arplace/xr/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t *testing.T, h *testHAL, cfg Config) *system {
	t.Helper()
	if cfg.Loader == nil {
		cfg.Loader = asset.FileLoader{}
	}
	if cfg.Asset.Model == "" {
		cfg.Asset = asset.Resolve("", "")
	}
	s := newSystem(context.Background(), h, cfg)
	// Wait for the async builtin load so the first step sees the model.
	<-s.d.state.load.Done()
	return s
}

func (h *testHAL) step(t *testing.T, s *system) {
	t.Helper()
	require.NoError(t, s.step())
	h.clock.now += 16 * time.Millisecond
}

func TestPointerTapPlacesOnSimulatedFloor(t *testing.T) {
	h := newTestHAL()
	dev := sim.NewDevice(sim.Config{FloorY: -1.4, FloorRadius: 3})
	s := newTestSystem(t, h, Config{Negotiation: immersive, Device: dev})

	h.step(t, s)
	require.NotNil(t, s.d.Object())

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEnter, Press: true}
	h.ptr.x, h.ptr.y, h.ptr.inside = 0.5, 0.9, true
	h.step(t, s)
	require.True(t, s.d.State().Presenting)
	assert.False(t, s.d.Object().Visible)

	for i := 0; i < 200 && !s.d.State().Reticle.Visible; i++ {
		h.step(t, s)
		time.Sleep(time.Millisecond)
	}
	require.True(t, s.d.State().Reticle.Visible, "reticle never appeared")
	assert.Equal(t, 1, dev.HitTestRequests())

	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerDown}
	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerUp}
	h.step(t, s)

	obj := s.d.Object()
	assert.True(t, obj.Visible)
	assert.InDelta(t, -1.4, obj.Position.Y, 1e-4)
	assert.Less(t, float64(obj.Position.Z), 0.0)
	assert.False(t, s.d.ctl.Dragging(), "release must end the drag")

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	h.step(t, s)
	assert.False(t, s.d.State().Presenting)
	assert.Equal(t, PreviewPosition, obj.Position)
}

func TestAutoARWithoutCapabilityStaysInPreview(t *testing.T) {
	h := newTestHAL()
	s := newTestSystem(t, h, Config{
		Negotiation: xr.Negotiate(xr.Capabilities{}),
		Device:      sim.NewDevice(sim.DefaultConfig()),
		AutoAR:      true,
	})
	h.step(t, s)
	h.step(t, s)
	assert.False(t, s.d.State().Presenting)
	assert.Equal(t, 1, h.log.count("AR is not available"))
	assert.True(t, s.d.Stats().Spun)
}

func TestEndedDeviceSessionReturnsToPreview(t *testing.T) {
	h := newTestHAL()
	dev := sim.NewDevice(sim.DefaultConfig())
	s := newTestSystem(t, h, Config{Negotiation: immersive, Device: dev, AutoAR: true})
	h.step(t, s)
	require.True(t, s.d.State().Presenting)

	require.NoError(t, s.d.State().Session.End())
	h.step(t, s)
	assert.False(t, s.d.State().Presenting)
	assert.True(t, s.d.Object().Visible)
}

func TestQuickLookLinkLogged(t *testing.T) {
	h := newTestHAL()
	newTestSystem(t, h, Config{
		Negotiation: xr.Negotiate(xr.Capabilities{QuickLook: true}),
		Asset:       asset.Resolve("arbol", "src"),
	})
	assert.Equal(t, 1, h.log.count("quick look: src/tree.usdz"))
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newTestHAL()
	step := guard(h, func() error { panic("boom") })

	err := step()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, h.log.count("panic: boom"))
	assert.Equal(t, 1, h.fb.presents)
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in         string
		n          int16
		head, tail string
	}{
		{"hello", 10, "hello", ""},
		{"hello", 2, "he", "llo"},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.in, tt.n)
		assert.Equal(t, tt.head, head, tt.in)
		assert.Equal(t, tt.tail, tail, tt.in)
	}
}
