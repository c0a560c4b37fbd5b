package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"arplace/asset"
	"arplace/hal"
	"arplace/internal/future"
	"arplace/quarkgl"
	"arplace/xr"
)

type recordLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordLogger) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *recordLogger) count(substr string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
	err      error
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error {
	f.presents++
	return f.err
}

type fakeAxis struct {
	v  float64
	ok bool
}

func (a *fakeAxis) Axis() (float64, bool) { return a.v, a.ok }

type fakeSpace struct {
	t xr.ReferenceSpaceType
}

func (s *fakeSpace) Type() xr.ReferenceSpaceType { return s.t }

type fakeSource struct{}

func (fakeSource) Space() xr.ReferenceSpace { return &fakeSpace{t: xr.ReferenceSpaceViewer} }

type fakeHit struct {
	m  quarkgl.Mat4
	ok bool
}

func (h fakeHit) Pose(xr.ReferenceSpace) (xr.Pose, bool) {
	return xr.Pose{Transform: h.m}, h.ok
}

type fakeFrame struct {
	hits []xr.HitTestResult
}

func (f *fakeFrame) HitTestResults(xr.HitTestSource) []xr.HitTestResult { return f.hits }

func (f *fakeFrame) ViewerPose(xr.ReferenceSpace) (xr.Pose, bool) {
	return xr.Pose{Transform: quarkgl.Mat4Identity()}, true
}

func hitAt(x, y, z quarkgl.Scalar) *fakeFrame {
	return &fakeFrame{hits: []xr.HitTestResult{fakeHit{m: quarkgl.Mat4Translate(quarkgl.V3(x, y, z)), ok: true}}}
}

// fakeSession resolves hit-test requests according to its mode.
type fakeSession struct {
	// stall leaves hit-test requests pending until resolve is called.
	stall   bool
	failErr error

	requests int
	pending  *future.Future[xr.HitTestSource]
	ended    int
}

func (s *fakeSession) RequestReferenceSpace(_ context.Context, t xr.ReferenceSpaceType) *future.Future[xr.ReferenceSpace] {
	f := future.New[xr.ReferenceSpace]()
	f.Resolve(&fakeSpace{t: t}, nil)
	return f
}

func (s *fakeSession) RequestHitTestSource(context.Context, xr.HitTestOptions) *future.Future[xr.HitTestSource] {
	s.requests++
	f := future.New[xr.HitTestSource]()
	s.pending = f
	switch {
	case s.stall:
	case s.failErr != nil:
		f.Resolve(nil, s.failErr)
	default:
		f.Resolve(fakeSource{}, nil)
	}
	return f
}

func (s *fakeSession) resolve() { s.pending.Resolve(fakeSource{}, nil) }

func (s *fakeSession) NextFrame() xr.Frame { return &fakeFrame{} }

func (s *fakeSession) End() error {
	s.ended++
	if s.ended > 1 {
		return xr.ErrSessionEnded
	}
	return nil
}

func loadedModel() *future.Future[*asset.Model] {
	f := future.New[*asset.Model]()
	f.Resolve(asset.FileLoader{}.Load(context.Background(), asset.BuiltinPrefix+"error"))
	return f
}

type fakePointer struct {
	ch     chan hal.PointerEvent
	x, y   float64
	inside bool
}

func (p *fakePointer) Events() <-chan hal.PointerEvent { return p.ch }
func (p *fakePointer) Position() (float64, float64, bool) {
	return p.x, p.y, p.inside
}

type fakeKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

type testHAL struct {
	log   *recordLogger
	fb    *fakeFB
	kbd   *fakeKeyboard
	ptr   *fakePointer
	axis  *fakeAxis
	clock *fakeClock
}

func newTestHAL() *testHAL {
	return &testHAL{
		log:   &recordLogger{},
		fb:    newFakeFB(24, 16),
		kbd:   &fakeKeyboard{ch: make(chan hal.KeyEvent, 8)},
		ptr:   &fakePointer{ch: make(chan hal.PointerEvent, 8)},
		axis:  &fakeAxis{},
		clock: &fakeClock{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Clock() hal.Clock     { return h.clock }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h.kbd }
func (h *testHAL) Pointer() hal.Pointer         { return h.ptr }
func (h *testHAL) Axis() hal.Axis               { return h.axis }
