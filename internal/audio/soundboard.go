package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Config controls playback.
type Config struct {
	Volume      float64 // effects, 0..1
	MusicVolume float64 // background loop, 0..1; zero disables it
}

// DefaultConfig returns the standard mix.
func DefaultConfig() Config {
	return Config{Volume: 0.5, MusicVolume: 0.25}
}

// SoundFor maps a step event to the effect it plays.
func SoundFor(e core.Event) (Sound, bool) {
	switch e {
	case core.EventPlayerShot:
		return SoundPlayerShot, true
	case core.EventEnemyShot:
		return SoundEnemyShot, true
	case core.EventEnemyKilled, core.EventBossKilled:
		return SoundEnemyExplosion, true
	case core.EventPlayerDestroyed, core.EventPlayerHit, core.EventInvaded:
		return SoundPlayerExplosion, true
	case core.EventBossHit:
		return SoundBossHit, true
	case core.EventLevelCleared:
		return SoundLevelUp, true
	}
	return 0, false
}

// SoundBoard mixes effects onto the speaker. Until Init succeeds every call
// is a no-op, so front ends can hold one unconditionally.
type SoundBoard struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	played      [soundCount]int
}

// NewSoundBoard creates a sound board.
func NewSoundBoard(cfg Config) *SoundBoard {
	return &SoundBoard{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (sb *SoundBoard) Init() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(sb.mixer)
	sb.initialized = true
	return nil
}

// add queues a stream on the mixer while the speaker is stopped.
func (sb *SoundBoard) add(s beep.Streamer) {
	speaker.Lock()
	sb.mixer.Add(s)
	speaker.Unlock()
}

// Play starts one effect.
func (sb *SoundBoard) Play(s Sound) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if s < 0 || s >= soundCount {
		return
	}
	sb.played[s]++
	if !sb.initialized {
		return
	}
	if st := Effect(s, sb.cfg.Volume); st != nil {
		sb.add(st)
	}
}

// Played returns how many times a sound was requested.
func (sb *SoundBoard) Played(s Sound) int {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if s < 0 || s >= soundCount {
		return 0
	}
	return sb.played[s]
}

// SetMusic starts or pauses the background loop.
func (sb *SoundBoard) SetMusic(on bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized || sb.cfg.MusicVolume <= 0 {
		return
	}
	if sb.music == nil {
		if !on {
			return
		}
		vol := sb.cfg.MusicVolume
		sb.music = &beep.Ctrl{Streamer: Repeat(func() beep.Streamer { return March(vol) })}
		sb.add(sb.music)
		return
	}
	speaker.Lock()
	sb.music.Paused = !on
	speaker.Unlock()
}

// ObserveStep plays the effects for a step and keeps the march running only
// while the game is live. Several events in one step map to at most one play
// of each sound.
func (sb *SoundBoard) ObserveStep(_ string, res core.StepResult, _ time.Duration) {
	var seen [soundCount]bool
	for _, e := range res.Events {
		s, ok := SoundFor(e)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		sb.Play(s)
	}
	sb.SetMusic(!res.State.GameOver && !res.State.Paused)
}

// Close silences everything.
func (sb *SoundBoard) Close() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}
	speaker.Clear()
	sb.mixer.Clear()
	sb.music = nil
	sb.initialized = false
}
