package ambient

import (
	"image/color"
)

// Stop is one colour stop. Offset is the fraction of the radius, A is the alpha in [0,1].
type Stop struct {
	Offset  float64
	R, G, B uint8
	A       float64
}

// RadialGradient fades outwards from the centre of a disk. Stops are sorted by Offset.
type RadialGradient struct {
	Stops [3]Stop
}

// CloudGradient is the fade of a single cloud: near white in the centre,
// pale green-white at half radius, transparent at the rim.
func CloudGradient(opacity float64) RadialGradient {
	return RadialGradient{Stops: [3]Stop{
		{Offset: 0, R: 255, G: 255, B: 255, A: opacity},
		{Offset: 0.5, R: 220, G: 255, B: 230, A: opacity * 0.7},
		{Offset: 1, R: 255, G: 255, B: 255, A: 0},
	}}
}

// Peak is the largest stop alpha.
func (g RadialGradient) Peak() float64 {
	var peak float64
	for _, s := range g.Stops {
		peak = max(peak, s.A)
	}
	return peak
}

// Normalized scales the alphas so the peak becomes 1. A gradient whose
// stops are all transparent is returned unchanged.
func (g RadialGradient) Normalized() RadialGradient {
	peak := g.Peak()
	if peak == 0 {
		return g
	}
	for i := range g.Stops {
		g.Stops[i].A /= peak
	}
	return g
}

// At interpolates the gradient at t, the distance from the centre as a fraction of the radius.
func (g RadialGradient) At(t float64) color.NRGBA {
	t = min(max(t, 0), 1)

	s := g.Stops
	if t <= s[0].Offset {
		return s[0].nrgba()
	}
	for i := 1; i < len(s); i++ {
		if t > s[i].Offset {
			continue
		}
		a, b := s[i-1], s[i]
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.nrgba()
		}
		k := (t - a.Offset) / span
		return Stop{
			R: lerp8(a.R, b.R, k),
			G: lerp8(a.G, b.G, k),
			B: lerp8(a.B, b.B, k),
			A: a.A + (b.A-a.A)*k,
		}.nrgba()
	}
	return s[len(s)-1].nrgba()
}

func (s Stop) nrgba() color.NRGBA {
	return color.NRGBA{R: s.R, G: s.G, B: s.B, A: uint8(min(max(s.A, 0), 1)*255 + 0.5)}
}

func lerp8(a, b uint8, k float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*k + 0.5)
}
