package dashboard

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ambient-dashboard/internal/chart"
	"github.com/iburimskiy/ambient-dashboard/internal/config"
	"github.com/iburimskiy/ambient-dashboard/internal/soundtrack"
)

// Animation is the background animation as the settings page sees it.
type Animation interface {
	Start()
	Stop()
	Running() bool
}

// Track is a playing soundtrack.
type Track interface {
	Name() string
	Play() error
	TogglePause()
	Paused() bool
	ToggleMute()
	Muted() bool
	Position() time.Duration
	Duration() time.Duration
	Level() float64
	Close() error
}

// Dialogs asks the user for paths. An empty path means the user cancelled.
type Dialogs interface {
	OpenFile(title string, patterns []string) (string, error)
	PickDirectory(title string) (string, error)
}

// NativeDialogs shows the platform's file dialogs.
type NativeDialogs struct{}

func (NativeDialogs) OpenFile(title string, patterns []string) (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title(title),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: patterns,
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}

func (NativeDialogs) PickDirectory(title string) (string, error) {
	path, err := zenity.SelectFile(zenity.Title(title), zenity.Directory())
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}

// SettingsPage controls the animation, the soundtrack and chart export.
type SettingsPage struct {
	anim    Animation
	track   Track
	open    func(path string) (Track, error)
	charts  []chart.Config
	dialogs Dialogs
	logger  *log.Logger

	buttons []*Button
	status  string
}

type SettingsOption func(*SettingsPage)

// WithTrack installs a soundtrack that is already playing.
func WithTrack(t Track) SettingsOption {
	return func(p *SettingsPage) { p.track = t }
}

func WithDialogs(d Dialogs) SettingsOption {
	return func(p *SettingsPage) { p.dialogs = d }
}

// WithOpener replaces how a chosen audio file is opened.
func WithOpener(open func(path string) (Track, error)) SettingsOption {
	return func(p *SettingsPage) { p.open = open }
}

func NewSettingsPage(anim Animation, charts []chart.Config, logger *log.Logger, opts ...SettingsOption) *SettingsPage {
	p := &SettingsPage{
		anim:    anim,
		charts:  charts,
		dialogs: NativeDialogs{},
		logger:  logger,
		open: func(path string) (Track, error) {
			return soundtrack.Open(path)
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.buttons = []*Button{
		{Label: p.animationLabel, OnClick: p.toggleAnimation},
		{Label: func() string { return "Open soundtrack..." }, OnClick: p.openTrack},
		{Label: p.pauseLabel, OnClick: p.togglePause},
		{Label: p.muteLabel, OnClick: p.toggleMute},
		{Label: func() string { return "Export charts..." }, OnClick: p.exportCharts},
	}
	return p
}

func (p *SettingsPage) Route() string { return "/settings" }

func (p *SettingsPage) Title() string { return "Settings" }

// Track returns the current soundtrack, nil when none is loaded.
func (p *SettingsPage) Track() Track { return p.track }

func (p *SettingsPage) animationLabel() string {
	if p.anim.Running() {
		return "Stop animation"
	}
	return "Start animation"
}

func (p *SettingsPage) pauseLabel() string {
	switch {
	case p.track == nil:
		return "No soundtrack"
	case p.track.Paused():
		return "Resume soundtrack"
	}
	return "Pause soundtrack"
}

func (p *SettingsPage) muteLabel() string {
	if p.track != nil && p.track.Muted() {
		return "Unmute"
	}
	return "Mute"
}

func (p *SettingsPage) toggleAnimation() error {
	if p.anim.Running() {
		p.anim.Stop()
	} else {
		p.anim.Start()
	}
	return nil
}

func (p *SettingsPage) openTrack() error {
	path, err := p.dialogs.OpenFile("Open Soundtrack", soundtrack.Extensions)
	if err != nil || path == "" {
		return err
	}

	t, err := p.open(path)
	if err != nil {
		return err
	}
	if err := t.Play(); err != nil {
		_ = t.Close()
		return err
	}
	if p.track != nil {
		if err := p.track.Close(); err != nil {
			p.logger.Printf("close soundtrack %s: %v", p.track.Name(), err)
		}
	}
	p.track = t
	p.logger.Printf("playing soundtrack %s", t.Name())
	return nil
}

func (p *SettingsPage) togglePause() error {
	if p.track != nil {
		p.track.TogglePause()
	}
	return nil
}

func (p *SettingsPage) toggleMute() error {
	if p.track != nil {
		p.track.ToggleMute()
	}
	return nil
}

// exportName is the file name of the i-th exported chart.
func exportName(i int, c chart.Config) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}
		return '-'
	}, c.Title())
	if slug == "" {
		slug = string(c.Type)
	}
	return fmt.Sprintf("chart-%d-%s.png", i+1, slug)
}

func (p *SettingsPage) exportCharts() error {
	dir, err := p.dialogs.PickDirectory("Export charts to")
	if err != nil || dir == "" {
		return err
	}
	for i, c := range p.charts {
		if err := writeChart(filepath.Join(dir, exportName(i, c)), c); err != nil {
			return err
		}
	}
	p.status = fmt.Sprintf("Exported %d charts to %s", len(p.charts), dir)
	p.logger.Print(p.status)
	return nil
}

func writeChart(path string, c chart.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.WritePNG(f, c, config.ChartWidth, config.ChartHeight); err != nil {
		_ = f.Close()
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// Close releases the soundtrack.
func (p *SettingsPage) Close() error {
	if p.track == nil {
		return nil
	}
	return p.track.Close()
}

func (p *SettingsPage) layout(area image.Rectangle) {
	y := area.Min.Y + headingHeight
	for _, b := range p.buttons {
		b.Rect = image.Rect(area.Min.X, y, area.Min.X+config.ButtonWidth, y+config.ButtonHeight)
		y += config.ButtonHeight + config.ButtonSpacing
	}
}

func (p *SettingsPage) Update(in Input) error {
	for _, b := range p.buttons {
		if err := b.Update(in); err != nil {
			return err
		}
	}
	return nil
}

func (p *SettingsPage) Draw(screen *ebiten.Image, area image.Rectangle) {
	p.layout(area)
	drawHeading(screen, area, "Settings")
	for _, b := range p.buttons {
		b.Draw(screen)
	}

	last := p.buttons[len(p.buttons)-1].Rect
	x, y := area.Min.X, last.Max.Y+config.ButtonSpacing*2
	if p.track != nil {
		line := fmt.Sprintf("Soundtrack: %s  %s / %s", p.track.Name(),
			formatDuration(p.track.Position()), formatDuration(p.track.Duration()))
		drawText(screen, line, x, y, textColor)

		bar := image.Rect(x, y+24, x+config.ButtonWidth, y+36)
		fillRect(screen, bar, cardColor)
		fill := bar
		fill.Max.X = bar.Min.X + int(clamp01(p.track.Level())*float64(bar.Dx()))
		fillRect(screen, fill, accentColor)
		strokeRect(screen, bar, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255})
		y += 56
	}
	if p.status != "" {
		drawText(screen, p.status, x, y, mutedColor)
	}
}
