package ambient

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func newTestField(t *testing.T, w, h float64, n int) *Field {
	t.Helper()
	f, err := NewField(w, h, n, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return f
}

func TestNewFieldRanges(t *testing.T) {
	const w, h = 800.0, 600.0
	f := newTestField(t, w, h, 60)

	if f.Len() != 60 {
		t.Fatalf("len = %d, want 60", f.Len())
	}
	for i, p := range f.Particles() {
		if p.Position.X < 0 || p.Position.X >= w {
			t.Fatalf("particle %d x = %f, want [0,%v)", i, p.Position.X, w)
		}
		if p.Position.Y < -h || p.Position.Y >= 0 {
			t.Fatalf("particle %d y = %f, want [-%v,0)", i, p.Position.Y, h)
		}
		if p.Size < MinSize || p.Size >= MaxSize {
			t.Fatalf("particle %d size = %f", i, p.Size)
		}
		if p.Speed < MinSpeed || p.Speed >= MaxSpeed {
			t.Fatalf("particle %d speed = %f", i, p.Speed)
		}
		if p.Opacity < MinOpacity || p.Opacity >= MaxOpacity {
			t.Fatalf("particle %d opacity = %f", i, p.Opacity)
		}
	}
}

func TestNewFieldRejectsInvalidInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name string
		w, h float64
		n    int
		want error
	}{
		{"zero width", 0, 600, 60, ErrInvalidSurface},
		{"negative height", 800, -1, 60, ErrInvalidSurface},
		{"no particles", 800, 600, 0, ErrInvalidCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewField(tt.w, tt.h, tt.n, rng)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewField(800, 600, 60, nil); err == nil {
		t.Fatal("expected error for nil random source")
	}
}

func TestStepKeepsCountAndAttributes(t *testing.T) {
	f := newTestField(t, 800, 600, 60)
	before := f.Particles()

	for i := 0; i < 5000; i++ {
		f.Step()
	}
	if f.Len() != 60 {
		t.Fatalf("len after steps = %d, want 60", f.Len())
	}
	for i, p := range f.Particles() {
		b := before[i]
		if p.Size != b.Size || p.Speed != b.Speed || p.Opacity != b.Opacity {
			t.Fatalf("particle %d attributes changed: %+v -> %+v", i, b, p)
		}
	}
}

func TestStepMonotonicBetweenWraps(t *testing.T) {
	f := newTestField(t, 800, 600, 60)
	prev := f.Particles()

	for tick := 0; tick < 4000; tick++ {
		f.Step()
		cur := f.Particles()
		for i := range cur {
			y0, y1 := prev[i].Position.Y, cur[i].Position.Y
			if y1 == -200 {
				continue
			}
			if y1 <= y0 {
				t.Fatalf("tick %d particle %d: y went %f -> %f", tick, i, y0, y1)
			}
		}
		prev = cur
	}
}

func TestStepWrapsPastBottomMargin(t *testing.T) {
	f := newTestField(t, 800, 600, 60)
	f.Place(0, Vec{X: 400, Y: 850})

	f.Step()

	p := f.Particle(0)
	if p.Position.Y != -200 {
		t.Fatalf("y after wrap = %f, want -200", p.Position.Y)
	}
	if p.Position.X < 0 || p.Position.X >= 800 {
		t.Fatalf("x after wrap = %f, want [0,800)", p.Position.X)
	}
}

func TestStepDoesNotWrapAtMargin(t *testing.T) {
	f := newTestField(t, 800, 600, 1)
	speed := f.Particle(0).Speed
	f.Place(0, Vec{X: 400, Y: 800 - speed - 0.01})

	f.Step()

	if y := f.Particle(0).Position.Y; y == -200 || y > 800 {
		t.Fatalf("y = %f, expected particle to stay just above the margin", y)
	}
}

func TestResizeAffectsLaterWraps(t *testing.T) {
	f := newTestField(t, 800, 600, 60)
	before := f.Particles()

	f.Resize(100, 1000)

	if w, h := f.Size(); w != 100 || h != 1000 {
		t.Fatalf("size = %vx%v, want 100x1000", w, h)
	}
	for i, p := range f.Particles() {
		if p != before[i] {
			t.Fatalf("resize moved particle %d", i)
		}
	}

	// 850 no longer exceeds the new bottom margin.
	f.Place(0, Vec{X: 400, Y: 850})
	f.Step()
	if y := f.Particle(0).Position.Y; y == -200 {
		t.Fatal("particle wrapped using the old height")
	}

	for i := 0; i < 20; i++ {
		f.Place(i, Vec{X: 50, Y: 1250})
	}
	f.Step()
	for i := 0; i < 20; i++ {
		p := f.Particle(i)
		if p.Position.Y != -200 {
			t.Fatalf("particle %d y = %f, want -200", i, p.Position.Y)
		}
		if p.Position.X < 0 || p.Position.X >= 100 {
			t.Fatalf("particle %d x = %f, want [0,100)", i, p.Position.X)
		}
	}
}

func TestResizeIgnoresEmptyViewport(t *testing.T) {
	f := newTestField(t, 800, 600, 1)
	f.Resize(0, 0)
	if w, h := f.Size(); w != 800 || h != 600 {
		t.Fatalf("size = %vx%v, want 800x600", w, h)
	}
}
