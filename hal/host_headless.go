package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// TapEvery injects a pointer tap (down, then up on the next tick)
	// every N ticks. Zero disables scripted input.
	TapEvery int
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, host HostConfig, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(host)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			script(h, cfg, tick)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// script feeds the scripted input for one tick.
func script(h *hostHAL, cfg HeadlessConfig, tick uint64) {
	if cfg.TapEvery <= 0 {
		return
	}
	every := uint64(max(cfg.TapEvery, 2))
	switch tick % every {
	case every - 1:
		h.ptr.emit(PointerDown)
	case 0:
		if tick > 0 {
			h.ptr.emit(PointerUp)
		}
	}
}
