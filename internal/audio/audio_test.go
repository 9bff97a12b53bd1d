package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// drain pulls a stream to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, abs(buf[i][0]), abs(buf[i][1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestToneLength(t *testing.T) {
	d := 100 * time.Millisecond
	n, peak := drain(t, NewTone(440, d, WaveSine, SampleRate), SampleRate.N(time.Second))
	if n != SampleRate.N(d) {
		t.Errorf("tone produced %d samples, expected %d", n, SampleRate.N(d))
	}
	if peak > 1 {
		t.Errorf("peak = %v, expected <= 1", peak)
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewTone(220, 50*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 200)
	n, ok := osc.Stream(buf)
	if !ok || n != 200 {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %v, expected +-1", i, v)
		}
	}
}

func TestNoiseIsRepeatable(t *testing.T) {
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	NewTone(0, time.Second, WaveNoise, SampleRate).Stream(a)
	NewTone(0, time.Second, WaveNoise, SampleRate).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between plays", i)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewTone(0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at the start of the attack", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("middle sample = %v, expected full volume", mid)
	}
	if last := abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %v, expected near silence", last)
	}
}

func TestEffects(t *testing.T) {
	for s := SoundPlayerShot; s < soundCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			st := Effect(s, 0.5)
			if st == nil {
				t.Fatal("Effect returned nil")
			}
			n, peak := drain(t, st, SampleRate.N(2*time.Second))
			if n == 0 {
				t.Error("effect is empty")
			}
			if peak > 1 {
				t.Errorf("peak = %v, expected <= 1", peak)
			}
		})
	}

	if Effect(soundCount, 1) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestRepeat(t *testing.T) {
	r := Repeat(func() beep.Streamer { return beep.Silence(10) })
	buf := make([][2]float64, 25)
	n, ok := r.Stream(buf)
	if n != 25 || !ok {
		t.Errorf("Stream = %d, %v, expected 25, true", n, ok)
	}

	empty := Repeat(func() beep.Streamer { return beep.Silence(0) })
	n, ok = empty.Stream(buf)
	if n != 0 || ok {
		t.Errorf("empty repeat Stream = %d, %v, expected 0, false", n, ok)
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event core.Event
		sound Sound
		ok    bool
	}{
		{core.EventPlayerShot, SoundPlayerShot, true},
		{core.EventEnemyShot, SoundEnemyShot, true},
		{core.EventEnemyKilled, SoundEnemyExplosion, true},
		{core.EventBossKilled, SoundEnemyExplosion, true},
		{core.EventPlayerDestroyed, SoundPlayerExplosion, true},
		{core.EventBossHit, SoundBossHit, true},
		{core.EventLevelCleared, SoundLevelUp, true},
		{core.EventShieldHit, 0, false},
		{core.EventWon, 0, false},
	}
	for _, tt := range tests {
		s, ok := SoundFor(tt.event)
		if ok != tt.ok || (ok && s != tt.sound) {
			t.Errorf("SoundFor(%v) = %v, %v, expected %v, %v", tt.event, s, ok, tt.sound, tt.ok)
		}
	}
}

func TestSoundBoardWithoutSpeaker(t *testing.T) {
	sb := NewSoundBoard(DefaultConfig())

	sb.ObserveStep("invaders", core.StepResult{
		Events: []core.Event{core.EventEnemyKilled, core.EventBossKilled, core.EventPlayerShot},
	}, time.Millisecond)
	sb.Play(SoundBossHit)
	sb.Play(Sound(-1))
	sb.SetMusic(true)
	sb.Close()

	if got := sb.Played(SoundEnemyExplosion); got != 1 {
		t.Errorf("enemy explosion played %d times, expected 1", got)
	}
	if got := sb.Played(SoundPlayerShot); got != 1 {
		t.Errorf("player shot played %d times, expected 1", got)
	}
	if got := sb.Played(SoundBossHit); got != 1 {
		t.Errorf("boss hit played %d times, expected 1", got)
	}
	if sb.music != nil {
		t.Error("music should not start without a speaker")
	}
}
