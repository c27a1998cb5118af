// Package audio provides ambient audio playback for the scene.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager drives the looping campfire crackle.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	crackleCtrl    *beep.Ctrl
	crackleVolume  *effects.Volume
	cracklePlaying bool

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	crackleLevel float64
	muted        bool
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		crackleLevel: 0.6,
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopCrackleInternal()
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// PlayCrackle starts the looping fire crackle. Safe to call again; a
// second call restarts the streamer.
func (m *Manager) PlayCrackle() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	m.stopCrackleInternal()

	crackle := NewCrackleStreamer(int(m.sampleRate), time.Now().UnixNano())
	m.crackleCtrl = &beep.Ctrl{Streamer: crackle, Paused: false}
	m.crackleVolume = &effects.Volume{
		Streamer: m.crackleCtrl,
		Base:     2,
		Volume:   0,
		Silent:   false,
	}
	m.updateCrackleVolume()

	speaker.Play(m.crackleVolume)
	m.cracklePlaying = true
	return nil
}

// StopCrackle stops the fire crackle.
func (m *Manager) StopCrackle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCrackleInternal()
}

func (m *Manager) stopCrackleInternal() {
	if m.crackleCtrl != nil {
		m.crackleCtrl.Paused = true
	}
	speaker.Clear()
	m.crackleCtrl = nil
	m.crackleVolume = nil
	m.cracklePlaying = false
}

// IsPlaying returns whether the crackle is currently playing.
func (m *Manager) IsPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cracklePlaying
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateCrackleVolume()
}

// SetCrackleVolume sets the crackle volume (0.0 to 1.0).
func (m *Manager) SetCrackleVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.crackleLevel = clamp(vol, 0, 1)
	m.updateCrackleVolume()
}

// SetMuted mutes or unmutes playback without stopping the streamer.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateCrackleVolume()
}

// IsMuted returns whether playback is muted.
func (m *Manager) IsMuted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetCrackleVolume returns the crackle volume.
func (m *Manager) GetCrackleVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.crackleLevel
}

func (m *Manager) updateCrackleVolume() {
	if m.crackleVolume == nil {
		return
	}
	vol := m.masterVolume * m.crackleLevel
	if m.muted || vol <= 0 {
		m.crackleVolume.Silent = true
		return
	}
	m.crackleVolume.Silent = false
	m.crackleVolume.Volume = volumeToDb(vol)
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
