//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

type touchState struct {
	touch    ebiten.TouchID
	touching bool
}
