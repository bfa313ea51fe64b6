// Package soundtrack loops an ambient audio file behind the dashboard.
package soundtrack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Extensions lists the file patterns Open understands.
var Extensions = []string{"*.wav", "*.mp3", "*.flac"}

// The speaker is process wide; it is initialised once per sample rate.
var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
)

func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerRate == rate {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		return nil
	}
	if speakerRate != 0 {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speakerRate = rate
	return nil
}

// Player loops one decoded file forever.
type Player struct {
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format

	tap    *levelTap
	ctrl   *beep.Ctrl
	volume *effects.Volume

	playing bool
	closed  bool
}

// Open decodes path without starting playback.
func Open(path string) (*Player, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	// streamer -> loop -> tap -> ctrl -> volume
	tap := newLevelTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}
	volume := &effects.Volume{Streamer: ctrl, Base: 2}

	return &Player{
		path:     path,
		file:     f,
		streamer: streamer,
		format:   format,
		tap:      tap,
		ctrl:     ctrl,
		volume:   volume,
	}, nil
}

// Name is the base name of the playing file.
func (p *Player) Name() string { return filepath.Base(p.path) }

// Play starts the loop on the speaker, replacing whatever was playing.
func (p *Player) Play() error {
	if p.closed {
		return errors.New("soundtrack closed")
	}
	if p.playing {
		return nil
	}
	if err := initSpeaker(p.format.SampleRate); err != nil {
		return err
	}
	speaker.Play(p.volume)
	p.playing = true
	return nil
}

func (p *Player) locked(fn func()) {
	if !p.playing {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}

func (p *Player) TogglePause() {
	p.locked(func() { p.ctrl.Paused = !p.ctrl.Paused })
}

func (p *Player) Paused() bool {
	var v bool
	p.locked(func() { v = p.ctrl.Paused })
	return v
}

func (p *Player) SetMuted(muted bool) {
	p.locked(func() { p.volume.Silent = muted })
}

func (p *Player) ToggleMute() {
	p.locked(func() { p.volume.Silent = !p.volume.Silent })
}

func (p *Player) Muted() bool {
	var v bool
	p.locked(func() { v = p.volume.Silent })
	return v
}

// Position is the offset into the current loop iteration.
func (p *Player) Position() time.Duration {
	var pos int
	p.locked(func() { pos = p.streamer.Position() })
	return p.format.SampleRate.D(pos)
}

func (p *Player) Duration() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

// Level is the loudness of the most recently played samples, in [0,1].
func (p *Player) Level() float64 {
	return p.tap.level(config.LevelWindow)
}

// Close stops playback and releases the file. It is safe to call twice.
func (p *Player) Close() error {
	if p.closed {
		return nil
	}
	if p.playing {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		p.playing = false
	}
	p.closed = true
	err := p.streamer.Close()
	// decoders usually close the file themselves
	_ = p.file.Close()
	return err
}
