package dashboard

import (
	"errors"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iburimskiy/ambient-dashboard/internal/chart"
	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

type fakeAnimation struct{ running bool }

func (a *fakeAnimation) Start()        { a.running = true }
func (a *fakeAnimation) Stop()         { a.running = false }
func (a *fakeAnimation) Running() bool { return a.running }

type fakeTrack struct {
	name          string
	playing       bool
	paused, muted bool
	closed        bool
	playErr       error
}

func (t *fakeTrack) Name() string            { return t.name }
func (t *fakeTrack) TogglePause()            { t.paused = !t.paused }
func (t *fakeTrack) Paused() bool            { return t.paused }
func (t *fakeTrack) ToggleMute()             { t.muted = !t.muted }
func (t *fakeTrack) Muted() bool             { return t.muted }
func (t *fakeTrack) Position() time.Duration { return 0 }
func (t *fakeTrack) Duration() time.Duration { return time.Minute }
func (t *fakeTrack) Level() float64          { return 0.5 }

func (t *fakeTrack) Play() error {
	t.playing = true
	return t.playErr
}

func (t *fakeTrack) Close() error {
	t.closed = true
	return nil
}

type fakeDialogs struct {
	file string
	dir  string
	err  error
}

func (d fakeDialogs) OpenFile(string, []string) (string, error) { return d.file, d.err }
func (d fakeDialogs) PickDirectory(string) (string, error)      { return d.dir, d.err }

var discard = log.New(io.Discard, "", 0)

var testArea = image.Rect(270, 20, 1260, 700)

func click(t *testing.T, p Page, r image.Rectangle) error {
	t.Helper()
	at := r.Min.Add(image.Pt(r.Dx()/2, r.Dy()/2))
	if err := p.Update(Input{Cursor: at, JustPressed: true}); err != nil {
		return err
	}
	return p.Update(Input{Cursor: at, JustReleased: true})
}

func newShell(t *testing.T) *Shell {
	t.Helper()
	s, err := NewShell("Soulix",
		NewHomePage(DefaultStats, chart.Samples()),
		NewAnalyticsPage(chart.Samples()),
		NewSettingsPage(&fakeAnimation{}, chart.Samples(), discard),
	)
	if err != nil {
		t.Fatalf("new shell: %v", err)
	}
	return s
}

func TestShellNavigate(t *testing.T) {
	s := newShell(t)
	if s.Current().Route() != "/" {
		t.Fatalf("start route = %q, want /", s.Current().Route())
	}
	if err := s.Navigate("/analytics"); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if s.Current().Title() != "Analytics" {
		t.Fatalf("current = %q", s.Current().Title())
	}
	if err := s.Navigate("/reports"); !errors.Is(err, ErrUnknownRoute) {
		t.Fatalf("err = %v, want ErrUnknownRoute", err)
	}
	if s.Current().Route() != "/analytics" {
		t.Fatal("failed navigation changed the page")
	}
}

func TestShellRejectsBadPages(t *testing.T) {
	if _, err := NewShell("x"); err == nil {
		t.Fatal("expected error for no pages")
	}
	home := NewHomePage(nil, nil)
	if _, err := NewShell("x", home, NewHomePage(nil, nil)); err == nil {
		t.Fatal("expected error for duplicate route")
	}
}

func TestShellDigitKeys(t *testing.T) {
	s := newShell(t)
	if err := s.Update(Input{Digit: 3}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.Current().Route() != "/settings" {
		t.Fatalf("route = %q, want /settings", s.Current().Route())
	}
	s.Update(Input{Digit: 9})
	if s.Current().Route() != "/settings" {
		t.Fatal("out of range digit changed the page")
	}
}

func TestSidebarClick(t *testing.T) {
	s := newShell(t)
	entry := s.sidebar.entries[1].rect

	at := entry.Min.Add(image.Pt(5, 5))
	if err := s.Update(Input{Cursor: at, JustPressed: true}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.Current().Route() != "/analytics" {
		t.Fatalf("route = %q, want /analytics", s.Current().Route())
	}

	if route, ok := s.sidebar.HitTest(image.Pt(config.SidebarWidth+10, entry.Min.Y+5)); ok {
		t.Fatalf("hit outside the sidebar: %q", route)
	}
}

func TestReleaseOverSidebarEndsPress(t *testing.T) {
	anim := &fakeAnimation{}
	settings := NewSettingsPage(anim, nil, discard)
	s, err := NewShell("Soulix", settings)
	if err != nil {
		t.Fatalf("new shell: %v", err)
	}
	settings.layout(testArea)
	btn := settings.buttons[0].Rect
	inside := btn.Min.Add(image.Pt(5, 5))

	s.Update(Input{Cursor: inside, JustPressed: true})
	s.Update(Input{Cursor: image.Pt(10, 300), JustReleased: true})
	if settings.buttons[0].pressed {
		t.Fatal("button still pressed after release over the sidebar")
	}

	// press elsewhere, release over the button: not a click
	s.Update(Input{Cursor: image.Pt(10, 300), JustPressed: true})
	s.Update(Input{Cursor: inside, JustReleased: true})
	if anim.running {
		t.Fatal("stale press fired the button")
	}
}

func TestSidebarEntriesDoNotOverlap(t *testing.T) {
	s := newShell(t)
	for i := 1; i < len(s.sidebar.entries); i++ {
		if s.sidebar.entries[i-1].rect.Overlaps(s.sidebar.entries[i].rect) {
			t.Fatalf("entries %d and %d overlap", i-1, i)
		}
	}
}

func TestContentArea(t *testing.T) {
	got := ContentArea(image.Rect(0, 0, 1280, 720))
	want := image.Rect(config.SidebarWidth+config.ContentPadding, config.ContentPadding,
		1280-config.ContentPadding, 720-config.ContentPadding)
	if got != want {
		t.Fatalf("content area = %v, want %v", got, want)
	}
}

func TestGridRects(t *testing.T) {
	area := image.Rect(0, 0, 1000, 620)
	rs := gridRects(area, 3, 2)
	if len(rs) != 3 {
		t.Fatalf("len = %d, want 3", len(rs))
	}
	for i, r := range rs {
		if !r.In(area) {
			t.Fatalf("rect %d %v outside %v", i, r, area)
		}
		for j := 0; j < i; j++ {
			if r.Overlaps(rs[j]) {
				t.Fatalf("rects %d and %d overlap", j, i)
			}
		}
	}
	if rs[0].Min.Y != rs[1].Min.Y || rs[2].Min.Y <= rs[0].Max.Y {
		t.Fatalf("unexpected layout %v", rs)
	}
	if gridRects(area, 0, 2) != nil {
		t.Fatal("empty grid should be nil")
	}
}

func TestSettingsToggleAnimation(t *testing.T) {
	anim := &fakeAnimation{running: true}
	p := NewSettingsPage(anim, nil, discard)
	p.layout(testArea)

	if got := p.buttons[0].Label(); got != "Stop animation" {
		t.Fatalf("label = %q", got)
	}
	if err := click(t, p, p.buttons[0].Rect); err != nil {
		t.Fatalf("click: %v", err)
	}
	if anim.running {
		t.Fatal("animation still running")
	}
	if got := p.buttons[0].Label(); got != "Start animation" {
		t.Fatalf("label = %q", got)
	}
}

func TestButtonNeedsPressAndReleaseInside(t *testing.T) {
	anim := &fakeAnimation{}
	p := NewSettingsPage(anim, nil, discard)
	p.layout(testArea)
	r := p.buttons[0].Rect

	p.Update(Input{Cursor: r.Min.Add(image.Pt(2, 2)), JustPressed: true})
	p.Update(Input{Cursor: r.Max.Add(image.Pt(50, 50)), JustReleased: true})
	if anim.running {
		t.Fatal("release outside the button counted as a click")
	}
}

func TestSettingsOpenTrack(t *testing.T) {
	old := &fakeTrack{name: "old.wav"}
	next := &fakeTrack{name: "rain.mp3"}
	var opened string
	p := NewSettingsPage(&fakeAnimation{}, nil, discard,
		WithTrack(old),
		WithDialogs(fakeDialogs{file: "/music/rain.mp3"}),
		WithOpener(func(path string) (Track, error) {
			opened = path
			return next, nil
		}),
	)
	p.layout(testArea)

	if err := click(t, p, p.buttons[1].Rect); err != nil {
		t.Fatalf("click: %v", err)
	}
	if opened != "/music/rain.mp3" {
		t.Fatalf("opened %q", opened)
	}
	if !old.closed || !next.playing || p.Track() != next {
		t.Fatalf("old closed=%v next playing=%v", old.closed, next.playing)
	}

	click(t, p, p.buttons[2].Rect)
	click(t, p, p.buttons[3].Rect)
	if !next.paused || !next.muted {
		t.Fatalf("paused=%v muted=%v", next.paused, next.muted)
	}
	if p.pauseLabel() != "Resume soundtrack" || p.muteLabel() != "Unmute" {
		t.Fatalf("labels = %q, %q", p.pauseLabel(), p.muteLabel())
	}

	if err := p.Close(); err != nil || !next.closed {
		t.Fatalf("close: %v closed=%v", err, next.closed)
	}
}

func TestSettingsOpenCancelled(t *testing.T) {
	p := NewSettingsPage(&fakeAnimation{}, nil, discard,
		WithDialogs(fakeDialogs{}),
		WithOpener(func(string) (Track, error) {
			t.Fatal("opener called after cancel")
			return nil, nil
		}),
	)
	if err := p.openTrack(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if p.Track() != nil || p.pauseLabel() != "No soundtrack" {
		t.Fatal("cancelled dialog installed a track")
	}
	if err := p.togglePause(); err != nil {
		t.Fatalf("pause without track: %v", err)
	}
}

func TestSettingsOpenFailureKeepsTrack(t *testing.T) {
	old := &fakeTrack{name: "old.wav"}
	p := NewSettingsPage(&fakeAnimation{}, nil, discard,
		WithTrack(old),
		WithDialogs(fakeDialogs{file: "broken.flac"}),
		WithOpener(func(string) (Track, error) { return nil, errors.New("decode failed") }),
	)
	if err := p.openTrack(); err == nil {
		t.Fatal("expected error")
	}
	if p.Track() != old || old.closed {
		t.Fatal("failed open replaced the playing track")
	}
}

func TestSettingsPlayFailureKeepsTrack(t *testing.T) {
	old := &fakeTrack{name: "old.wav"}
	next := &fakeTrack{name: "silent.wav", playErr: errors.New("no audio device")}
	p := NewSettingsPage(&fakeAnimation{}, nil, discard,
		WithTrack(old),
		WithDialogs(fakeDialogs{file: "silent.wav"}),
		WithOpener(func(string) (Track, error) { return next, nil }),
	)
	if err := p.openTrack(); err == nil {
		t.Fatal("expected play error")
	}
	if p.Track() != old || old.closed {
		t.Fatal("failed play replaced the current track")
	}
	if !next.closed {
		t.Fatal("track that failed to play was not closed")
	}
}

func TestSettingsExportCharts(t *testing.T) {
	dir := t.TempDir()
	p := NewSettingsPage(&fakeAnimation{}, chart.Samples(), discard, WithDialogs(fakeDialogs{dir: dir}))

	if err := p.exportCharts(); err != nil {
		t.Fatalf("export: %v", err)
	}
	for i, c := range chart.Samples() {
		if _, err := os.Stat(filepath.Join(dir, exportName(i, c))); err != nil {
			t.Fatalf("chart %d not exported: %v", i, err)
		}
	}
	if p.status == "" {
		t.Fatal("no status after export")
	}
}

func TestExportName(t *testing.T) {
	if got := exportName(0, chart.UserStatusDoughnut()); got != "chart-1-user-status.png" {
		t.Fatalf("name = %q", got)
	}
	c := chart.ActivityPie()
	c.Datasets[0].Label = ""
	if got := exportName(3, c); got != "chart-4-pie.png" {
		t.Fatalf("name = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{83 * time.Second, "01:23"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Fatalf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChartViewTargetSize(t *testing.T) {
	responsive := &chartView{cfg: chart.UsersBar()}
	if got := responsive.targetSize(image.Pt(900, 400)); got != image.Pt(900, 400) {
		t.Fatalf("responsive size = %v", got)
	}
	fixed := &chartView{cfg: chart.WeeklyUsersBar()}
	if got := fixed.targetSize(image.Pt(900, 200)); got != image.Pt(config.ChartWidth, 200) {
		t.Fatalf("fixed size = %v", got)
	}
}
