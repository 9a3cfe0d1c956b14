// Package metrics exposes detector state and probe activity to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
)

const namespace = "upgradewatch"

const shutdownTimeout = 5 * time.Second

// Probe outcomes used as the "result" label.
const (
	ResultOK      = "ok"
	ResultUnknown = "installed_unknown"
	ResultError   = "error"
)

// Metrics holds the collectors. Labels stay low-cardinality: event kind
// and probe result only.
type Metrics struct {
	Stage           prometheus.Gauge
	UpgradeDetected prometheus.Gauge
	EventsTotal     *prometheus.CounterVec
	ProbesTotal     *prometheus.CounterVec
	ProbeDuration   prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		Stage: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage",
			Help:      "Current restart recommendation stage (0 none .. 4 severe).",
		}),
		UpgradeDetected: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upgrade_detected",
			Help:      "1 once a newer installed version has been detected.",
		}),
		EventsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Detector events emitted, by kind.",
		}, []string{"kind"}),
		ProbesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Completed version probes, by result.",
		}, []string{"result"}),
		ProbeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Wall time of a single version probe.",
			Buckets:   []float64{.005, .01, .05, .1, .5, 1, 5, 10},
		}),
		gatherer: reg,
	}
}

// Notify implements port.Notifier.
func (m *Metrics) Notify(_ context.Context, event entity.Event) {
	m.EventsTotal.WithLabelValues(event.Kind.String()).Inc()
	m.UpgradeDetected.Set(1)
	if event.Kind == entity.EventUpgradeRecommended {
		m.Stage.Set(float64(event.Stage))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	log := logging.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Info().Str("addr", ln.Addr().String()).Msg("metrics endpoint listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// InstrumentProbe counts and times every probe run through p. The wrapper
// keeps p's eligibility check.
func (m *Metrics) InstrumentProbe(p port.VersionProbe) port.VersionProbe {
	ip := &instrumentedProbe{next: p, m: m}
	if checker, ok := p.(port.EligibilityChecker); ok {
		return &eligibleInstrumentedProbe{instrumentedProbe: ip, checker: checker}
	}
	return ip
}

type instrumentedProbe struct {
	next port.VersionProbe
	m    *Metrics
}

func (p *instrumentedProbe) Probe(ctx context.Context) (entity.ProbeResult, error) {
	start := time.Now()
	result, err := p.next.Probe(ctx)
	p.m.ProbeDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		p.m.ProbesTotal.WithLabelValues(ResultOK).Inc()
	case errors.Is(err, port.ErrInstalledVersionUnknown):
		p.m.ProbesTotal.WithLabelValues(ResultUnknown).Inc()
	default:
		p.m.ProbesTotal.WithLabelValues(ResultError).Inc()
	}
	return result, err
}

type eligibleInstrumentedProbe struct {
	*instrumentedProbe
	checker port.EligibilityChecker
}

func (p *eligibleInstrumentedProbe) Eligible(ctx context.Context) bool {
	return p.checker.Eligible(ctx)
}
