// Package metrics exports gameplay counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flagquiz"

// Recorder implements app.Observer on top of Prometheus collectors.
type Recorder struct {
	registry        *prometheus.Registry
	sessionsActive  prometheus.Gauge
	sessionsStarted prometheus.Counter
	rounds          *prometheus.CounterVec
	gamesCompleted  prometheus.Counter
}

// New registers the game collectors, plus the Go and process collectors, on
// a private registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Game sessions currently open",
		}),
		sessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Game sessions started",
		}),
		rounds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Rounds resolved, by outcome",
		}, []string{"outcome"}),
		gamesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_completed_total",
			Help:      "Games played through to the target round count",
		}),
	}
}

func (r *Recorder) SessionStarted() {
	r.sessionsStarted.Inc()
	r.sessionsActive.Inc()
}

func (r *Recorder) SessionEnded() { r.sessionsActive.Dec() }

func (r *Recorder) RoundResolved(outcome string) { r.rounds.WithLabelValues(outcome).Inc() }

func (r *Recorder) GameCompleted() { r.gamesCompleted.Inc() }

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests and for callers adding their own collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
