// Package chart renders bar, pie and doughnut charts described by a
// Chart.js style configuration.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

type Type string

const (
	Bar      Type = "bar"
	Pie      Type = "pie"
	Doughnut Type = "doughnut"
)

var ErrInvalidConfig = errors.New("invalid chart config")

type Config struct {
	Type     Type      `json:"type"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Options  Options   `json:"options"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor Colors    `json:"backgroundColor"`
}

// Colors is either a single colour for every data point or one colour per point.
type Colors []string

func (c *Colors) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*c = Colors{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("backgroundColor: want string or list of strings: %w", err)
	}
	*c = many
	return nil
}

// At returns the colour of the i-th point and whether one was configured.
func (c Colors) At(i int) (string, bool) {
	switch {
	case len(c) == 0:
		return "", false
	case len(c) == 1:
		return c[0], true
	case i < len(c):
		return c[i], true
	}
	return "", false
}

type Options struct {
	Responsive bool             `json:"responsive"`
	Scales     map[string]Scale `json:"scales,omitempty"`
	Plugins    Plugins          `json:"plugins"`
}

type Scale struct {
	Ticks ColorOption `json:"ticks"`
	Grid  ColorOption `json:"grid"`
}

type ColorOption struct {
	Color string `json:"color,omitempty"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Labels ColorOption `json:"labels"`
}

// Validate reports the first problem that would stop the chart from rendering.
func (c Config) Validate() error {
	switch c.Type {
	case Bar, Pie, Doughnut:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidConfig, c.Type)
	}
	if len(c.Labels) == 0 {
		return fmt.Errorf("%w: no labels", ErrInvalidConfig)
	}
	if len(c.Datasets) != 1 {
		return fmt.Errorf("%w: want exactly one dataset, got %d", ErrInvalidConfig, len(c.Datasets))
	}

	ds := c.Datasets[0]
	if len(ds.Data) != len(c.Labels) {
		return fmt.Errorf("%w: %d labels but %d values", ErrInvalidConfig, len(c.Labels), len(ds.Data))
	}
	if c.Type != Bar {
		var sum float64
		for _, v := range ds.Data {
			if v < 0 {
				return fmt.Errorf("%w: negative value %v in %s chart", ErrInvalidConfig, v, c.Type)
			}
			sum += v
		}
		if sum == 0 {
			return fmt.Errorf("%w: %s chart has nothing to show", ErrInvalidConfig, c.Type)
		}
	}
	for _, col := range ds.BackgroundColor {
		if !config.IsHexColor(col) {
			return fmt.Errorf("%w: bad colour %q", ErrInvalidConfig, col)
		}
	}
	for name, s := range c.Options.Scales {
		for _, col := range []string{s.Ticks.Color, s.Grid.Color} {
			if col != "" && !config.IsHexColor(col) {
				return fmt.Errorf("%w: scale %s: bad colour %q", ErrInvalidConfig, name, col)
			}
		}
	}
	if col := c.Options.Plugins.Legend.Labels.Color; col != "" && !config.IsHexColor(col) {
		return fmt.Errorf("%w: legend: bad colour %q", ErrInvalidConfig, col)
	}
	return nil
}

// Title is the label of the chart's dataset.
func (c Config) Title() string {
	if len(c.Datasets) == 0 {
		return ""
	}
	return c.Datasets[0].Label
}
