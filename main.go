package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ambient-dashboard/internal/ambient"
	"github.com/iburimskiy/ambient-dashboard/internal/chart"
	"github.com/iburimskiy/ambient-dashboard/internal/config"
	"github.com/iburimskiy/ambient-dashboard/internal/dashboard"
	"github.com/iburimskiy/ambient-dashboard/internal/game"
	"github.com/iburimskiy/ambient-dashboard/internal/soundtrack"
)

func main() {
	logger := log.New(os.Stderr, "ambient: ", log.LstdFlags)
	if err := run(logger); err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Soulix"), zenity.ErrorIcon)
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	field, err := ambient.NewField(float64(cfg.WindowWidth), float64(cfg.WindowHeight), cfg.Particles,
		rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return fmt.Errorf("ambient field: %w", err)
	}
	renderer := ambient.NewRenderer(field)

	charts := chart.Samples()
	if cfg.ChartsFile != "" {
		if charts, err = chart.LoadFile(cfg.ChartsFile); err != nil {
			return fmt.Errorf("charts: %w", err)
		}
		logger.Printf("loaded %d charts from %s", len(charts), cfg.ChartsFile)
	}

	var opts []dashboard.SettingsOption
	if cfg.Soundtrack != "" {
		track, err := openSoundtrack(cfg.Soundtrack, cfg.Muted)
		if err != nil {
			// the dashboard is still useful without sound
			logger.Printf("soundtrack: %v", err)
		} else {
			logger.Printf("playing soundtrack %s", track.Name())
			opts = append(opts, dashboard.WithTrack(track))
		}
	}
	settings := dashboard.NewSettingsPage(renderer, charts, logger, opts...)
	defer func() {
		if err := settings.Close(); err != nil {
			logger.Printf("close soundtrack: %v", err)
		}
	}()

	shell, err := dashboard.NewShell("Soulix",
		dashboard.NewHomePage(dashboard.DefaultStats, charts),
		dashboard.NewAnalyticsPage(charts),
		settings,
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	renderer.Start()
	defer renderer.Stop()

	logger.Printf("starting with %d particles", field.Len())
	g := game.New(ctx, renderer, shell, cfg.Background, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func openSoundtrack(path string, muted bool) (*soundtrack.Player, error) {
	track, err := soundtrack.Open(path)
	if err != nil {
		return nil, err
	}
	track.SetMuted(muted)
	if err := track.Play(); err != nil {
		_ = track.Close()
		return nil, err
	}
	return track, nil
}
