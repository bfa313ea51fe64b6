package ambient

import (
	"sync/atomic"
)

// Surface is the 2D target a Renderer paints into.
type Surface interface {
	// Clear wipes the whole drawing area.
	Clear()
	// FillRadialDisk fills a disk of the given radius centred at center with g.
	FillRadialDisk(center Vec, radius float64, g RadialGradient)
}

// Renderer paints a Field once per frame while it is running.
//
// Frame and Resize must be called from the goroutine that drives the
// frames; Start and Stop may be called from anywhere.
type Renderer struct {
	field   *Field
	running atomic.Bool
	frames  uint64
}

func NewRenderer(field *Field) *Renderer {
	return &Renderer{field: field}
}

func (r *Renderer) Field() *Field { return r.field }

func (r *Renderer) Start() { r.running.Store(true) }

func (r *Renderer) Stop() { r.running.Store(false) }

func (r *Renderer) Running() bool { return r.running.Load() }

// Frames is the number of frames painted so far.
func (r *Renderer) Frames() uint64 { return r.frames }

// Resize forwards new viewport dimensions to the field.
func (r *Renderer) Resize(width, height float64) {
	r.field.Resize(width, height)
}

// Frame clears s, paints every particle at its current position and moves
// it one tick. It returns false without touching s when the renderer is stopped.
func (r *Renderer) Frame(s Surface) bool {
	if !r.Running() {
		return false
	}

	s.Clear()
	ps := r.field.particles
	for i := range ps {
		p := &ps[i]
		s.FillRadialDisk(p.Position, p.Size, CloudGradient(p.Opacity))
		r.field.advance(p)
	}
	r.frames++
	return true
}
