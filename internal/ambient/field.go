package ambient

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

var (
	ErrInvalidSurface = errors.New("invalid drawing surface")
	ErrInvalidCount   = errors.New("invalid particle count")
)

// Field is a fixed-size set of particles drifting down a width x height surface.
type Field struct {
	particles []Particle
	width     float64
	height    float64
	rng       *rand.Rand
}

func NewField(width, height float64, n int, rng *rand.Rand) (*Field, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSurface, width, height)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}

	f := &Field{
		particles: make([]Particle, n),
		width:     width,
		height:    height,
		rng:       rng,
	}
	for i := range f.particles {
		f.particles[i] = newParticle(rng, width, height)
	}
	return f, nil
}

func (f *Field) Len() int { return len(f.particles) }

// Size returns the current surface dimensions.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Particle returns a copy of the i-th particle.
func (f *Field) Particle(i int) Particle { return f.particles[i] }

// Particles returns a copy of the whole set in order.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Resize changes the surface dimensions used by later wraps. Existing
// particles keep their positions. Non-positive sizes are ignored, a
// minimised window reports 0x0.
func (f *Field) Resize(width, height float64) {
	if !(width > 0) || !(height > 0) {
		return
	}
	f.width, f.height = width, height
}

// Place moves the i-th particle; used to seed scenarios.
func (f *Field) Place(i int, pos Vec) {
	f.particles[i].Position = pos
}

// advance moves one particle a single tick and wraps it back above the
// surface once it has fallen past the bottom margin.
func (f *Field) advance(p *Particle) {
	p.Position.Y += p.Speed
	p.Position.X += math.Sin(p.Position.Y/config.SwayPeriod) * config.SwayAmplitude

	if p.Position.Y > f.height+config.WrapMargin {
		p.Position.Y = -config.WrapMargin
		p.Position.X = uniform(f.rng, 0, f.width)
	}
}

// Step advances every particle by one tick without drawing.
func (f *Field) Step() {
	for i := range f.particles {
		f.advance(&f.particles[i])
	}
}
