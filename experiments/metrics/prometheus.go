package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pacman_decisions_total",
		Help: "Decisions taken by the agent, by source",
	}, []string{"source"}) // "search" or "reflex"

	decisionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pacman_decision_duration_seconds",
		Help:    "Time spent choosing one move",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	})

	searchNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pacman_search_nodes",
		Help:    "Nodes expanded per decision",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	gamesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pacman_games_total",
		Help: "Finished sessions by outcome",
	}, []string{"outcome"}) // "cleared", "dead" or "timeout"

	gameScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pacman_game_score",
		Help:    "Final score per session",
		Buckets: prometheus.LinearBuckets(0, 250, 12),
	})
)

// ObserveMove records one decision in the process-wide Prometheus registry.
func ObserveMove(m MoveMetric) {
	source := "search"
	if m.Reflex {
		source = "reflex"
	}
	decisionsTotal.WithLabelValues(source).Inc()
	decisionDuration.Observe(m.Duration.Seconds())
	searchNodes.Observe(float64(m.Nodes))
}

// ObserveGame records one finished session.
func ObserveGame(g GameMetric) {
	outcome := "timeout"
	switch {
	case g.Cleared:
		outcome = "cleared"
	case g.Lives <= 0:
		outcome = "dead"
	}
	gamesTotal.WithLabelValues(outcome).Inc()
	gameScore.Observe(float64(g.Score))
}
