// Package hal is the only contact point between the placement app and the
// host: display, input devices, clock and log output.
package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind is a primary pointer transition (mouse button or touch).
type PointerKind uint8

const (
	PointerDown PointerKind = iota + 1
	PointerUp
)

// PointerEvent is a primary pointer transition.
type PointerEvent struct {
	Kind PointerKind
}

// Pointer provides primary pointer transitions and the pointer position.
type Pointer interface {
	Events() <-chan PointerEvent
	// Position returns the pointer position normalized to 0..1 of the
	// display, or false if no pointer is over the display.
	Position() (x, y float64, ok bool)
}

// Axis is a one-axis analog input such as gamepad axis 0.
type Axis interface {
	// Axis returns the axis value in -1..1, or false if no analog device is
	// attached.
	Axis() (float64, bool)
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
	Axis() Axis
}

// Clock is a monotonic time source.
type Clock interface {
	// Now returns the time elapsed since the host started.
	Now() time.Duration
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
