package dashboard

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Button fires OnClick when the left button is pressed and released over it.
type Button struct {
	Label   func() string
	OnClick func() error
	Rect    image.Rectangle

	hovered bool
	pressed bool
}

func (b *Button) Update(in Input) error {
	b.hovered = in.Cursor.In(b.Rect)

	if b.hovered && in.JustPressed {
		b.pressed = true
	}
	if in.JustReleased {
		clicked := b.pressed && b.hovered
		b.pressed = false
		if clicked && b.OnClick != nil {
			return b.OnClick()
		}
	}
	return nil
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	fillRect(screen, b.Rect, bgColor)
	strokeRect(screen, b.Rect, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255})

	label := b.Label()
	textWidth := len(label) * 7 // basicfont glyphs are 7px wide
	x := b.Rect.Min.X + (b.Rect.Dx()-textWidth)/2
	y := b.Rect.Min.Y + (b.Rect.Dy()-13)/2
	drawText(screen, label, x, y, textColor)
}
