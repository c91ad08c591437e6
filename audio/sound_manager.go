package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays one-shot effects through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores effects
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether effects are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a one-shot effect; a no-op when muted or not initialized
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayChime plays the arrival chime
func (sm *SoundManager) PlayChime() {
	sm.Play(SoundChime)
}

// PlayClick plays the floor call blip
func (sm *SoundManager) PlayClick() {
	sm.Play(SoundClick)
}
