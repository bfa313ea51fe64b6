package dashboard

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/ambient-dashboard/internal/chart"
	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

// chartView keeps the rendered image of one chart and re-renders it when
// a responsive chart's card changes size.
type chartView struct {
	cfg  chart.Config
	img  *ebiten.Image
	size image.Point
	err  error
}

func newChartViews(cfgs []chart.Config) []*chartView {
	views := make([]*chartView, len(cfgs))
	for i, c := range cfgs {
		views[i] = &chartView{cfg: c}
	}
	return views
}

// targetSize is the image size for a card of the given size.
func (v *chartView) targetSize(card image.Point) image.Point {
	if v.cfg.Options.Responsive {
		return card
	}
	return image.Pt(min(config.ChartWidth, card.X), min(config.ChartHeight, card.Y))
}

func (v *chartView) Draw(screen *ebiten.Image, card image.Rectangle) {
	fillRect(screen, card, cardColor)

	want := v.targetSize(card.Size())
	if want.X <= 0 || want.Y <= 0 {
		return
	}
	if want != v.size {
		v.size = want
		v.img = nil
		img, err := chart.Render(v.cfg, want.X, want.Y)
		v.err = err
		if err == nil {
			v.img = ebiten.NewImageFromImage(img)
		}
	}

	if v.err != nil {
		ebitenutil.DebugPrintAt(screen, v.err.Error(), card.Min.X+10, card.Min.Y+10)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(card.Min.X), float64(card.Min.Y))
	screen.DrawImage(v.img, op)
}
