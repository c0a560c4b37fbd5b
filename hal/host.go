
package hal

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// HostConfig configures the host HAL.
type HostConfig struct {
	Width, Height int
	// LogLevel is a zerolog level name; unknown names fall back to info.
	LogLevel string
	// LogOutput defaults to stdout.
	LogOutput io.Writer
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	axis   *hostAxis
	clock  *hostClock
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 360, 640
	}
	out := cfg.LogOutput
	if out == nil {
		out = os.Stdout
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		lvl = zerolog.InfoLevel
	}
	return &hostHAL{
		logger: newHostLogger(out, lvl),
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		axis:   &hostAxis{},
		clock:  newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{h: h} }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	h *hostHAL
}

func (in hostInput) Keyboard() Keyboard { return in.h.kbd }
func (in hostInput) Pointer() Pointer   { return in.h.ptr }
func (in hostInput) Axis() Axis         { return in.h.axis }

type hostLogger struct {
	zl zerolog.Logger
}

func newHostLogger(w io.Writer, lvl zerolog.Level) *hostLogger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000", NoColor: true}
	return &hostLogger{zl: zerolog.New(cw).Level(lvl).With().Timestamp().Logger()}
}

func (l *hostLogger) WriteLineString(s string) {
	l.zl.Info().Msg(s)
}
