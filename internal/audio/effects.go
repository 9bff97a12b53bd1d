// Package audio synthesizes the game's sound effects with beep and plays them
// in response to step events.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate of every generated stream.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sound names an effect.
type Sound int

const (
	SoundPlayerShot Sound = iota
	SoundEnemyShot
	SoundEnemyExplosion
	SoundPlayerExplosion
	SoundBossHit
	SoundLevelUp
	soundCount
)

// String returns the effect name.
func (s Sound) String() string {
	switch s {
	case SoundPlayerShot:
		return "player_shot"
	case SoundEnemyShot:
		return "enemy_shot"
	case SoundEnemyExplosion:
		return "enemy_explosion"
	case SoundPlayerExplosion:
		return "player_explosion"
	case SoundBossHit:
		return "boss_hit"
	case SoundLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// sweep is an oscillator whose frequency slides linearly from one pitch to
// another over its duration.
type sweep struct {
	from, to float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep creates a sliding oscillator. Equal pitches give a plain tone.
// Noise uses a fixed seed so every play sounds the same.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// NewTone creates a fixed pitch oscillator.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes a stream with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: s,
		attack:   min(rate.N(attack), total),
		release:  min(rate.N(release), total),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// shaped builds one enveloped sweep.
func shaped(from, to float64, d time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, SampleRate), d, 5*time.Millisecond, d/2, SampleRate)
}

// Effect generates a fresh stream for a sound at the given volume (0..1).
func Effect(s Sound, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundPlayerShot:
		st = shaped(1200, 400, 90*time.Millisecond, WaveSquare)
	case SoundEnemyShot:
		st = shaped(500, 180, 120*time.Millisecond, WaveSaw)
	case SoundEnemyExplosion:
		st = beep.Mix(
			shaped(0, 0, 180*time.Millisecond, WaveNoise),
			newVolume(shaped(220, 60, 180*time.Millisecond, WaveSquare), 0.4),
		)
	case SoundPlayerExplosion:
		st = beep.Mix(
			shaped(0, 0, 600*time.Millisecond, WaveNoise),
			newVolume(shaped(160, 30, 600*time.Millisecond, WaveSaw), 0.5),
		)
	case SoundBossHit:
		st = shaped(140, 90, 70*time.Millisecond, WaveSquare)
	case SoundLevelUp:
		st = beep.Seq(
			shaped(523.25, 523.25, 100*time.Millisecond, WaveSquare),
			shaped(659.25, 659.25, 100*time.Millisecond, WaveSquare),
			shaped(783.99, 783.99, 180*time.Millisecond, WaveSquare),
		)
	default:
		return nil
	}
	return newVolume(st, volume)
}

// marchNotes is the four-step bass line of the background loop.
var marchNotes = []float64{98.0, 87.31, 77.78, 73.42}

// March returns one bar of the background loop.
func March(volume float64) beep.Streamer {
	steps := make([]beep.Streamer, 0, len(marchNotes)*2)
	for _, f := range marchNotes {
		steps = append(steps,
			NewEnvelope(NewTone(f, 120*time.Millisecond, WaveSquare, SampleRate),
				120*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, SampleRate),
			beep.Silence(SampleRate.N(330*time.Millisecond)),
		)
	}
	return newVolume(beep.Seq(steps...), volume)
}

// repeat plays a freshly generated stream over and over.
type repeat struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

// Repeat loops streams produced by next until the caller stops pulling.
func Repeat(next func() beep.Streamer) beep.Streamer {
	return &repeat{next: next}
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	empty := 0
	for n < len(samples) {
		if r.cur == nil {
			r.cur = r.next()
		}
		got, more := r.cur.Stream(samples[n:])
		n += got
		if got > 0 {
			empty = 0
		}
		if !more {
			r.cur = nil
			// A generator that yields nothing would spin forever.
			if got == 0 {
				empty++
				if empty > 1 {
					return n, n > 0
				}
			}
		}
	}
	return n, true
}

func (r *repeat) Err() error { return nil }
