// Package ambient animates the drifting cloud field painted behind the dashboard.
package ambient

import (
	"math/rand/v2"
)

// Attribute ranges for freshly created particles; lower bound inclusive, upper exclusive.
const (
	MinSize    = 100.0
	MaxSize    = 350.0
	MinSpeed   = 0.2
	MaxSpeed   = 0.6
	MinOpacity = 0.05
	MaxOpacity = 0.15
)

type Vec struct {
	X, Y float64
}

// Particle is one soft cloud. Only Position changes after creation.
type Particle struct {
	Position Vec
	Size     float64
	Speed    float64
	Opacity  float64
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// newParticle places a particle somewhere in the band just above a width x height surface.
func newParticle(rng *rand.Rand, width, height float64) Particle {
	return Particle{
		Position: Vec{
			X: uniform(rng, 0, width),
			Y: uniform(rng, -height, 0),
		},
		Size:    uniform(rng, MinSize, MaxSize),
		Speed:   uniform(rng, MinSpeed, MaxSpeed),
		Opacity: uniform(rng, MinOpacity, MaxOpacity),
	}
}
