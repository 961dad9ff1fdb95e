// Package audio plays short synthesized cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	volume     = 0.25
)

// SoundManager mixes cue streams into a single speaker output.
// Every method is safe to call before Initialize; playback is then a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. It fails on hosts without an audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play starts the named cue. Unknown names are ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := buildCue(name, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores playback. Muting drops queued cues.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports whether playback is silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Initialized reports whether the speaker is open.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all playing cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}
