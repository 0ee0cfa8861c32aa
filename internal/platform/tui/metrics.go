package tui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for a breakdown server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	framesTotal    prometheus.Counter
	gamesFinished  *prometheus.CounterVec
	finalScore     *prometheus.HistogramVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "breakdown",
			Name:      "sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "breakdown",
			Name:      "sessions_total",
			Help:      "SSH sessions accepted since start.",
		}),
		framesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "breakdown",
			Name:      "frames_total",
			Help:      "Simulation frames advanced across all sessions.",
		}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "breakdown",
			Name:      "games_finished_total",
			Help:      "Games that reached an end screen.",
		}, []string{"preset", "outcome"}),
		finalScore: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "breakdown",
			Name:      "final_score",
			Help:      "Score at the end of a game.",
			Buckets:   prometheus.LinearBuckets(0, 100, 10),
		}, []string{"preset"}),
	}
	m.registry.MustRegister(m.sessionsActive, m.sessionsTotal, m.framesTotal, m.gamesFinished, m.finalScore)
	return m
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SessionStarted records a new connection.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsTotal.Inc()
	m.sessionsActive.Inc()
}

// SessionEnded records a closed connection.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// Frame records one simulation frame.
func (m *Metrics) Frame() {
	if m == nil {
		return
	}
	m.framesTotal.Inc()
}

// GameFinished records the outcome and score of a finished game.
func (m *Metrics) GameFinished(preset string, won bool, score int) {
	if m == nil {
		return
	}
	outcome := "lost"
	if won {
		outcome = "won"
	}
	m.gamesFinished.WithLabelValues(preset, outcome).Inc()
	m.finalScore.WithLabelValues(preset).Observe(float64(score))
}

// MetricsServer serves the registry over HTTP.
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer prepares an HTTP server exposing m at /metrics on addr.
func NewMetricsServer(addr string, m *Metrics) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *MetricsServer) ListenAndServe() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
