package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestObserveStepCountsEvents(t *testing.T) {
	r := NewRecorder()
	shots := eventsTotal.WithLabelValues("metrics_test", core.EventPlayerShot.String())
	before := testutil.ToFloat64(shots)

	r.ObserveStep("metrics_test", core.StepResult{
		Events: []core.Event{core.EventPlayerShot, core.EventEnemyKilled},
	}, time.Millisecond)
	r.ObserveStep("metrics_test", core.StepResult{
		Events: []core.Event{core.EventPlayerShot},
	}, time.Millisecond)

	if got := testutil.ToFloat64(shots) - before; got != 2 {
		t.Errorf("player shots = %v, expected 2", got)
	}
}

func TestObserveStepFinishedGames(t *testing.T) {
	r := NewRecorder()

	tests := []struct {
		name   string
		game   string
		events []core.Event
		result string
	}{
		{"won", "metrics_won", []core.Event{core.EventBossKilled, core.EventLevelCleared, core.EventWon}, "won"},
		{"destroyed", "metrics_destroyed", []core.Event{core.EventPlayerDestroyed}, "lost"},
		{"invaded", "metrics_invaded", []core.Event{core.EventInvaded}, "lost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.ObserveStep(tt.game, core.StepResult{
				State:  core.GameState{Score: 300, GameOver: true},
				Events: tt.events,
			}, time.Millisecond)

			if got := testutil.ToFloat64(gamesFinished.WithLabelValues(tt.game, tt.result)); got != 1 {
				t.Errorf("%s games = %v, expected 1", tt.result, got)
			}
		})
	}

	r.ObserveStep("metrics_running", core.StepResult{Events: []core.Event{core.EventPlayerHit}}, 0)
	if got := testutil.ToFloat64(gamesFinished.WithLabelValues("metrics_running", "lost")); got != 0 {
		t.Errorf("a hit should not finish a game, got %v", got)
	}
}

func TestSessionGauge(t *testing.T) {
	r := NewRecorder()
	before := testutil.ToFloat64(sessionsActive)

	r.SessionStarted()
	r.SessionStarted()
	r.SessionEnded()

	if got := testutil.ToFloat64(sessionsActive) - before; got != 1 {
		t.Errorf("active sessions = %v, expected 1", got)
	}

	rejected := testutil.ToFloat64(sessionsRejected)
	r.SessionRejected()
	if got := testutil.ToFloat64(sessionsRejected) - rejected; got != 1 {
		t.Errorf("rejected sessions = %v, expected 1", got)
	}
}

func TestRouter(t *testing.T) {
	NewRecorder().ObserveStep("metrics_router", core.StepResult{
		Events: []core.Event{core.EventShieldHit},
	}, time.Millisecond)

	ts := httptest.NewServer(NewRouter())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/health status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("/health body = %q", body)
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `invaders_events_total{event="shield_hit",game="metrics_router"} 1`) {
		t.Error("/metrics is missing the shield hit counter")
	}
	if !strings.Contains(string(body), "invaders_step_duration_seconds") {
		t.Error("/metrics is missing the step histogram")
	}
}

func TestServerAddr(t *testing.T) {
	s := NewServer("127.0.0.1:0", nil)
	if s.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr = %q", s.Addr())
	}
}
