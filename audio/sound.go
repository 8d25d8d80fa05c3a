// Package audio plays a short blip whenever the entity bounces off a
// wall. Sound is always optional: if no output device is available the
// manager runs silently and the animation is unaffected.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

const (
	blipDuration = 60 * time.Millisecond
	blipAttack   = 5 * time.Millisecond
	blipRelease  = 25 * time.Millisecond
	blipVolume   = 0.4

	// Horizontal and vertical bounces get different pitches.
	BlipWallX = 880.0
	BlipWallY = 660.0
)

// SoundManager owns the speaker and a persistent mixer that blips are
// added to as they happen.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. An error here means
// no audio device; the caller should continue without sound.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker Close; clearing the
// mixer is enough to stop audio artifacts.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayBlip queues one enveloped sine blip at the given frequency.
func (sm *SoundManager) PlayBlip(freq float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	osc := NewOscillator(freq, blipDuration, sampleRate)
	shaped := NewEnvelope(osc, blipDuration, blipAttack, blipRelease, sampleRate)

	speaker.Lock()
	sm.mixer.Add(newVolume(shaped, blipVolume))
	speaker.Unlock()
}
