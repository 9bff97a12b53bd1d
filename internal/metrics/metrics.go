// Package metrics exports game and session counters to Prometheus and serves
// them, with a health check, over a small chi router.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Labels are game IDs and event names, both fixed sets.
var (
	stepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "invaders_step_duration_seconds",
		Help:    "Time spent in one game step",
		Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invaders_events_total",
		Help: "Game events by kind",
	}, []string{"game", "event"})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invaders_games_finished_total",
		Help: "Finished games by result",
	}, []string{"game", "result"}) // won, lost

	finalScore = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "invaders_final_score",
		Help:    "Score at the end of a game",
		Buckets: []float64{0, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"game"})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "invaders_sessions_active",
		Help: "Currently connected SSH sessions",
	})

	sessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invaders_sessions_total",
		Help: "SSH sessions opened",
	})

	sessionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invaders_sessions_rejected_total",
		Help: "SSH sessions refused by the connection rate limit",
	})
)

// Recorder feeds step results and session changes into the collectors.
// It keeps no state of its own, so one Recorder serves every session.
type Recorder struct{}

// NewRecorder creates a recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveStep records one game step.
func (r *Recorder) ObserveStep(gameID string, res core.StepResult, elapsed time.Duration) {
	stepDuration.Observe(elapsed.Seconds())
	for _, e := range res.Events {
		eventsTotal.WithLabelValues(gameID, e.String()).Inc()
	}

	// Game-ending events fire once, on the tick the game ends.
	result := ""
	switch {
	case res.Has(core.EventWon):
		result = "won"
	case res.Has(core.EventPlayerDestroyed), res.Has(core.EventInvaded):
		result = "lost"
	}
	if result != "" {
		gamesFinished.WithLabelValues(gameID, result).Inc()
		finalScore.WithLabelValues(gameID).Observe(float64(res.State.Score))
	}
}

// SessionStarted records a new SSH session.
func (r *Recorder) SessionStarted() {
	sessionsActive.Inc()
	sessionsTotal.Inc()
}

// SessionEnded records a closed SSH session.
func (r *Recorder) SessionEnded() {
	sessionsActive.Dec()
}

// SessionRejected records a session refused before it started.
func (r *Recorder) SessionRejected() {
	sessionsRejected.Inc()
}
