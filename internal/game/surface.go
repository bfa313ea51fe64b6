package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ambient-dashboard/internal/ambient"
	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

// spriteKey identifies a gradient shape independently of its overall opacity.
type spriteKey [3]struct {
	offset uint8
	color  color.NRGBA
}

func keyOf(g ambient.RadialGradient) spriteKey {
	var k spriteKey
	for i, s := range g.Stops {
		k[i].offset = uint8(math.Round(s.Offset * 255))
		k[i].color = g.At(s.Offset)
	}
	return k
}

// bakeSprite rasterises a normalised gradient into a size x size disk.
func bakeSprite(g ambient.RadialGradient, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			if d > 1 {
				continue
			}
			img.SetNRGBA(x, y, g.At(d))
		}
	}
	return img
}

// Surface draws the ambient field onto an ebiten image.
type Surface struct {
	target     *ebiten.Image
	background color.Color
	sprites    map[spriteKey]*ebiten.Image
}

func NewSurface(background color.Color) *Surface {
	return &Surface{
		background: background,
		sprites:    make(map[spriteKey]*ebiten.Image),
	}
}

// Bind points the surface at the image of the current frame.
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) Clear() {
	s.target.Fill(s.background)
}

func (s *Surface) sprite(g ambient.RadialGradient) *ebiten.Image {
	k := keyOf(g)
	img, ok := s.sprites[k]
	if !ok {
		img = ebiten.NewImageFromImage(bakeSprite(g, config.SpriteSize))
		s.sprites[k] = img
	}
	return img
}

// FillRadialDisk draws the gradient's sprite scaled to the disk, faded by
// the gradient's peak alpha.
func (s *Surface) FillRadialDisk(center ambient.Vec, radius float64, g ambient.RadialGradient) {
	peak := g.Peak()
	if radius <= 0 || peak <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	scale := 2 * radius / float64(config.SpriteSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center.X-radius, center.Y-radius)
	op.ColorScale.ScaleAlpha(float32(peak))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(s.sprite(g.Normalized()), op)
}
