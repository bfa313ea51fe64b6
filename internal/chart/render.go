package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// WritePNG validates cfg and writes it as a width x height PNG.
func WritePNG(w io.Writer, cfg Config, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, width, height)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var r renderable
	switch cfg.Type {
	case Bar:
		r = barChart(cfg, width, height)
	case Pie:
		r = pieChart(cfg, width, height)
	case Doughnut:
		r = donutChart(cfg, width, height)
	}
	if err := r.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render %s chart: %w", cfg.Type, err)
	}
	return nil
}

// Render draws cfg into an image with a transparent background.
func Render(cfg Config, width, height int) (image.Image, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, cfg, width, height); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s chart: %w", cfg.Type, err)
	}
	return img, nil
}

func values(cfg Config) []gochart.Value {
	ds := cfg.Datasets[0]
	out := make([]gochart.Value, len(ds.Data))
	for i, v := range ds.Data {
		fill := paletteColor(i, len(ds.Data))
		if col, ok := ds.BackgroundColor.At(i); ok {
			fill = hexColor(col)
		}
		out[i] = gochart.Value{
			Label: cfg.Labels[i],
			Value: v,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		}
	}
	return out
}

func backgroundStyle() gochart.Style {
	return gochart.Style{
		FillColor: drawing.ColorTransparent,
		Padding:   gochart.Box{Top: 36, Left: 12, Right: 12, Bottom: 12},
	}
}

func titleStyle(cfg Config) gochart.Style {
	return gochart.Style{FontColor: hexColor(cfg.Options.Plugins.Legend.Labels.Color), FontSize: 12}
}

func axisStyle(s Scale) gochart.Style {
	return gochart.Style{FontColor: hexColor(s.Ticks.Color), StrokeColor: hexColor(s.Grid.Color)}
}

func barChart(cfg Config, width, height int) gochart.BarChart {
	// leave room for the y axis labels on the right
	slot := max((width-80)/len(cfg.Labels), 4)
	barWidth := max(slot*3/5, 2)
	return gochart.BarChart{
		Title:      cfg.Title(),
		TitleStyle: titleStyle(cfg),
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: slot - barWidth,
		Background: backgroundStyle(),
		Canvas:     gochart.Style{FillColor: drawing.ColorTransparent},
		XAxis:      axisStyle(cfg.Options.Scales["x"]),
		YAxis:      gochart.YAxis{Style: axisStyle(cfg.Options.Scales["y"]), Range: barRange(cfg.Datasets[0].Data)},
		Bars:       values(cfg),
	}
}

// barRange starts the value axis at zero and never lets it collapse, so
// flat or single-bar series still render.
func barRange(data []float64) *gochart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range data {
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}

func pieChart(cfg Config, width, height int) gochart.PieChart {
	return gochart.PieChart{
		Title:      cfg.Title(),
		TitleStyle: titleStyle(cfg),
		Width:      width,
		Height:     height,
		Background: backgroundStyle(),
		Canvas:     gochart.Style{FillColor: drawing.ColorTransparent},
		SliceStyle: gochart.Style{FontColor: hexColor(cfg.Options.Plugins.Legend.Labels.Color)},
		Values:     values(cfg),
	}
}

func donutChart(cfg Config, width, height int) gochart.DonutChart {
	return gochart.DonutChart{
		Title:      cfg.Title(),
		TitleStyle: titleStyle(cfg),
		Width:      width,
		Height:     height,
		Background: backgroundStyle(),
		Canvas:     gochart.Style{FillColor: drawing.ColorTransparent},
		SliceStyle: gochart.Style{FontColor: hexColor(cfg.Options.Plugins.Legend.Labels.Color)},
		Values:     values(cfg),
	}
}
