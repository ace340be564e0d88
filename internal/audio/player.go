// Package audio plays short synthesized sound effects for game events.
// A missing or busy audio device is not an error for the game: the player
// simply stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/duckshoot/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundPlayer mixes event sounds into the speaker.
type SoundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewSoundPlayer creates a player. A muted player never touches the audio device.
func NewSoundPlayer(muted bool) *SoundPlayer {
	return &SoundPlayer{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (p *SoundPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sounds will be heard.
func (p *SoundPlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted
}

// Muted reports whether playback is muted.
func (p *SoundPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetMuted mutes or unmutes playback.
func (p *SoundPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play queues the sound for one event.
func (p *SoundPlayer) Play(kind core.EventKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	s := Effect(kind, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvents plays each distinct event kind of a step once.
func (p *SoundPlayer) PlayEvents(events []core.Event) {
	for _, kind := range Distinct(events) {
		p.Play(kind)
	}
}

// Distinct returns the event kinds in first-occurrence order without repeats.
func Distinct(events []core.Event) []core.EventKind {
	var kinds []core.EventKind
	seen := make(map[core.EventKind]bool, len(events))
	for _, e := range events {
		if seen[e.Kind] {
			continue
		}
		seen[e.Kind] = true
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// Close silences everything still playing.
func (p *SoundPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
