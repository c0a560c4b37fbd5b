package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"arplace/app"
	"arplace/asset"
	"arplace/hal"
	"arplace/internal/config"
	"arplace/quarkgl"
	"arplace/xr"
	"arplace/xr/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.StringVar(&cfg.Platform, "platform", cfg.Platform, "Platform profile: android, ios or desktop.")
	flag.StringVar(&cfg.Query, "query", cfg.Query, "Page query string, e.g. anim=reno.")
	flag.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "Directory holding the model files.")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.AutoAR, "ar", cfg.AutoAR, "Enter AR on the first frame.")
	flag.IntVar(&cfg.TapEvery, "tap-every", cfg.TapEvery, "Headless: tap every N ticks (0 = never).")
	flag.DurationVar(&cfg.HitTestLatency, "hittest-latency", cfg.HitTestLatency, "Simulated hit-test subscription latency.")
	flag.BoolVar(&cfg.FailHitTest, "hittest-fail", cfg.FailHitTest, "Simulate a failing hit-test subscription.")
	flag.Parse()

	neg := xr.Negotiate(xr.ParsePlatform(cfg.Platform))
	entry := asset.Resolve(config.SelectionFromQuery(cfg.Query), cfg.AssetDir)

	simCfg := sim.DefaultConfig()
	simCfg.HitTestLatency = cfg.HitTestLatency
	simCfg.FailHitTest = cfg.FailHitTest
	floor := quarkgl.Transformed(
		quarkgl.GridMesh(quarkgl.Scalar(simCfg.FloorRadius), 12, 0.01),
		quarkgl.Mat4Translate(quarkgl.V3(0, quarkgl.Scalar(simCfg.FloorY), 0)),
	)

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{
			Negotiation: neg,
			Asset:       entry,
			Loader:      asset.FileLoader{},
			Device:      sim.NewDevice(simCfg),
			Backdrop:    &floor,
			AutoAR:      cfg.AutoAR,
		})
	}
	host := hal.HostConfig{LogLevel: cfg.LogLevel}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		hcfg := hal.HeadlessConfig{Enabled: true, Hz: cfg.Hz, Ticks: cfg.Ticks, TapEvery: cfg.TapEvery}
		if err := hal.RunHeadless(ctx, host, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
