package hal

import "sync"

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent
	touchState

	mu     sync.Mutex
	x, y   float64
	inside bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) Position() (x, y float64, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y, p.inside
}

func (p *hostPointer) emit(kind PointerKind) {
	select {
	case p.ch <- PointerEvent{Kind: kind}:
	default:
	}
}

func (p *hostPointer) setPosition(x, y float64, inside bool) {
	p.mu.Lock()
	p.x, p.y, p.inside = x, y, inside
	p.mu.Unlock()
}

type hostAxis struct {
	mu    sync.Mutex
	value float64
	ok    bool
}

func (a *hostAxis) Axis() (float64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value, a.ok
}

func (a *hostAxis) set(v float64, ok bool) {
	a.mu.Lock()
	a.value, a.ok = v, ok
	a.mu.Unlock()
}
