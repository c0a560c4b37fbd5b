//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	keys := []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
	}
	for _, kk := range keys {
		if inpututil.IsKeyJustPressed(kk.key) {
			k.emit(kk.code, true)
		}
		if inpututil.IsKeyJustReleased(kk.key) {
			k.emit(kk.code, false)
		}
	}
}

// poll turns the left mouse button and the first touch into primary pointer
// transitions and records the pointer position relative to a w x h screen.
func (p *hostPointer) poll(w, h int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.emit(PointerDown)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.emit(PointerUp)
	}
	if p.touching && inpututil.IsTouchJustReleased(p.touch) {
		p.touching = false
		p.emit(PointerUp)
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 && !p.touching {
		p.touch, p.touching = ids[0], true
		p.emit(PointerDown)
	}

	x, y := ebiten.CursorPosition()
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
	}
	if w <= 0 || h <= 0 {
		p.setPosition(0, 0, false)
		return
	}
	inside := x >= 0 && y >= 0 && x < w && y < h
	p.setPosition(float64(x)/float64(w), float64(y)/float64(h), inside)
}

func (a *hostAxis) poll() {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		a.set(0, false)
		return
	}
	id := ids[0]
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		a.set(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), true)
		return
	}
	if ebiten.GamepadAxisCount(id) == 0 {
		a.set(0, false)
		return
	}
	a.set(ebiten.GamepadAxisValue(id, 0), true)
}
