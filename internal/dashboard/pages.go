package dashboard

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ambient-dashboard/internal/chart"
	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

const headingHeight = 50

type Stat struct {
	Title string
	Value string
}

var DefaultStats = []Stat{
	{Title: "Users", Value: "1,025"},
	{Title: "Conversion", Value: "19.8%"},
	{Title: "Active", Value: "832"},
}

// rowRects splits the top of area into n cards of equal width.
func rowRects(area image.Rectangle, n, height int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	w := (area.Dx() - (n-1)*config.CardGap) / n
	out := make([]image.Rectangle, n)
	for i := range out {
		x := area.Min.X + i*(w+config.CardGap)
		out[i] = image.Rect(x, area.Min.Y, x+w, area.Min.Y+height)
	}
	return out
}

// gridRects lays n cards out in rows of cols, filling area.
func gridRects(area image.Rectangle, n, cols int) []image.Rectangle {
	if n <= 0 || cols <= 0 {
		return nil
	}
	cols = min(cols, n)
	rows := (n + cols - 1) / cols
	h := (area.Dy() - (rows-1)*config.CardGap) / rows
	out := make([]image.Rectangle, 0, n)
	for r := 0; r < rows; r++ {
		row := image.Rect(area.Min.X, area.Min.Y+r*(h+config.CardGap), area.Max.X, area.Min.Y+r*(h+config.CardGap)+h)
		out = append(out, rowRects(row, cols, h)...)
	}
	return out[:n]
}

func drawHeading(screen *ebiten.Image, area image.Rectangle, title string) image.Rectangle {
	drawTextScaled(screen, title, area.Min.X, area.Min.Y, 2, textColor)
	area.Min.Y += headingHeight
	return area
}

// HomePage shows the headline numbers and the first chart.
type HomePage struct {
	stats []Stat
	chart *chartView
}

func NewHomePage(stats []Stat, charts []chart.Config) *HomePage {
	p := &HomePage{stats: stats}
	if len(charts) > 0 {
		p.chart = &chartView{cfg: charts[0]}
	}
	return p
}

func (p *HomePage) Route() string { return "/" }

func (p *HomePage) Title() string { return "Dashboard" }

func (p *HomePage) Update(Input) error { return nil }

func (p *HomePage) Draw(screen *ebiten.Image, area image.Rectangle) {
	area = drawHeading(screen, area, "Welcome Back!")

	for i, r := range rowRects(area, len(p.stats), config.CardHeight) {
		fillRect(screen, r, cardColor)
		drawText(screen, p.stats[i].Title, r.Min.X+20, r.Min.Y+20, textColor)
		drawTextScaled(screen, p.stats[i].Value, r.Min.X+20, r.Min.Y+44, 2, accentColor)
	}
	if len(p.stats) > 0 {
		area.Min.Y += config.CardHeight + 2*config.CardGap
	}

	if p.chart == nil {
		fillRect(screen, area, cardColor)
		drawText(screen, "Charts will go here", area.Min.X+20, area.Min.Y+20, textColor)
		return
	}
	p.chart.Draw(screen, area)
}

// AnalyticsPage shows every chart in a two column grid.
type AnalyticsPage struct {
	charts []*chartView
}

func NewAnalyticsPage(charts []chart.Config) *AnalyticsPage {
	return &AnalyticsPage{charts: newChartViews(charts)}
}

func (p *AnalyticsPage) Route() string { return "/analytics" }

func (p *AnalyticsPage) Title() string { return "Analytics" }

func (p *AnalyticsPage) Update(Input) error { return nil }

func (p *AnalyticsPage) Draw(screen *ebiten.Image, area image.Rectangle) {
	area = drawHeading(screen, area, "Analytics")
	for i, r := range gridRects(area, len(p.charts), 2) {
		p.charts[i].Draw(screen, r)
	}
}
