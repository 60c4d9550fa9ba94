package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays the theme on the system audio device
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewPlayer creates a player; nothing is opened until Start
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Name identifies the player as a service
func (p *Player) Name() string { return "audio" }

// Enabled reports whether playback was requested
func (p *Player) Enabled() bool { return p.cfg.Enabled }

// Start opens the speaker and begins looping the theme.
// Disabled players and repeated calls do nothing.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.initialized {
		return nil
	}

	sr := beep.SampleRate(p.cfg.SampleRate)
	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.ctrl = &beep.Ctrl{Streamer: newVolume(NewTheme(sr), p.cfg.Volume), Paused: false}
	p.mixer.Add(p.ctrl)
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop silences playback and releases the device; safe to call repeatedly
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
