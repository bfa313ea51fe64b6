package chart

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// paletteColor spreads n colours evenly around the hue circle, starting at orange.
func paletteColor(i, n int) drawing.Color {
	if n <= 0 {
		n = 1
	}
	r, g, b := hsvToRgb(39+float64(i)*360/float64(n), 0.75, 0.96)
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

// hexColor parses a validated colour; empty strings yield the zero colour,
// which go-chart replaces with its default.
func hexColor(s string) drawing.Color {
	if s == "" {
		return drawing.Color{}
	}
	r, g, b, err := config.ParseHex(s)
	if err != nil {
		return drawing.Color{}
	}
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
