// Package dashboard draws the sidebar and pages over the ambient background.
package dashboard

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the pointer and keyboard state of one update.
type Input struct {
	Cursor       image.Point
	JustPressed  bool
	JustReleased bool
	// Digit is the number key pressed this update, 0 when none.
	Digit int
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// ReadInput polls ebiten; call it from Update only.
func ReadInput() Input {
	x, y := ebiten.CursorPosition()
	in := Input{
		Cursor:       image.Pt(x, y),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Digit = i + 1
			break
		}
	}
	return in
}
