package game

import (
	"image/color"

	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

// hexToColor converts "#rrggbb" to an opaque colour, black when malformed.
func hexToColor(s string) color.RGBA {
	r, g, b, err := config.ParseHex(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
