package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	WindowTitle = "Soulix - Esc/Q: Quit, 1-3: Switch page"

	// Sidebar dimensions
	SidebarWidth   = 250
	SidebarPadding = 20
	NavEntryHeight = 36
	NavTop         = 80

	// Button dimensions
	ButtonWidth   = 220
	ButtonHeight  = 40
	ButtonSpacing = 14

	// Content layout
	ContentPadding = 20
	CardHeight     = 90
	CardGap        = 20

	// Chart defaults, used when a chart is not responsive
	ChartWidth  = 480
	ChartHeight = 300

	// Ambient parameters
	DefaultParticles = 60
	WrapMargin       = 200
	SwayPeriod       = 200
	SwayAmplitude    = 0.3
	SpriteSize       = 256

	// Soundtrack
	LevelWindow    = 2048
	VisualRingSize = 8192
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	WindowWidth  int    `env:"AMBIENT_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int    `env:"AMBIENT_WINDOW_HEIGHT" envDefault:"720"`
	Particles    int    `env:"AMBIENT_PARTICLES" envDefault:"60"`
	Seed         uint64 `env:"AMBIENT_SEED" envDefault:"0"`
	Background   string `env:"AMBIENT_BACKGROUND" envDefault:"#121212"`
	ChartsFile   string `env:"AMBIENT_CHARTS_FILE"`
	Soundtrack   string `env:"AMBIENT_SOUNDTRACK"`
	Muted        bool   `env:"AMBIENT_MUTED" envDefault:"false"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.Particles <= 0 {
		return fmt.Errorf("invalid particle count %d", c.Particles)
	}
	if !IsHexColor(c.Background) {
		return fmt.Errorf("invalid background colour %q", c.Background)
	}
	return nil
}

var errBadHex = errors.New("malformed hex colour")

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (r, g, b uint8, err error) {
	s = strings.TrimPrefix(s, "#")
	digit := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	var v [6]uint8
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := digit(s[i])
			if !ok {
				return 0, 0, 0, errBadHex
			}
			v[2*i], v[2*i+1] = d, d
		}
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := digit(s[i])
			if !ok {
				return 0, 0, 0, errBadHex
			}
			v[i] = d
		}
	default:
		return 0, 0, 0, errBadHex
	}
	return v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], nil
}

func IsHexColor(s string) bool {
	_, _, _, err := ParseHex(s)
	return err == nil
}
