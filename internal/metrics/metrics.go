// Package metrics owns the prometheus registry for a grapple process.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "grapple"

// Metrics is safe for concurrent use. A nil *Metrics records nothing, so
// services can be built without it.
type Metrics struct {
	registry *prometheus.Registry

	analyses         *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
	programs         *prometheus.CounterVec
	programMinutes   prometheus.Histogram
	skippedIDs       prometheus.Counter
	sessionsSaved    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyzed requests by classified intent.",
		}, []string{"intent"}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time to analyze one request, cache hits included.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by outcome.",
		}, []string{"result"}),
		programs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "programs_total",
			Help:      "Synthesized programs by difficulty.",
		}, []string{"difficulty"}),
		programMinutes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "program_minutes",
			Help:      "Requested program duration in minutes.",
			Buckets:   []float64{30, 45, 60, 90, 120, 180},
		}),
		skippedIDs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "program_skipped_ids_total",
			Help:      "Requested technique ids missing from the catalog.",
		}),
		sessionsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_saved_total",
			Help:      "Training sessions written to the log.",
		}),
	}
	m.registry.MustRegister(
		m.analyses,
		m.analysisDuration,
		m.cacheLookups,
		m.programs,
		m.programMinutes,
		m.skippedIDs,
		m.sessionsSaved,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAnalysis(intent string, cacheHit bool, d time.Duration) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(intent).Inc()
	m.analysisDuration.Observe(d.Seconds())
	if cacheHit {
		m.cacheLookups.WithLabelValues("hit").Inc()
	} else {
		m.cacheLookups.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) ObserveProgram(difficulty string, minutes, skipped int) {
	if m == nil {
		return
	}
	m.programs.WithLabelValues(difficulty).Inc()
	m.programMinutes.Observe(float64(minutes))
	m.skippedIDs.Add(float64(skipped))
}

func (m *Metrics) ObserveSessionSaved() {
	if m == nil {
		return
	}
	m.sessionsSaved.Inc()
}

// Sample is one flattened series for display. Histograms contribute a
// _count and a _sum sample.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers every series with at least one observation, sorted by
// name then labels.
func (m *Metrics) Snapshot() ([]Sample, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			pairs := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			labels := strings.Join(pairs, ",")

			switch {
			case metric.GetCounter() != nil:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: metric.GetCounter().GetValue()})
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				out = append(out,
					Sample{Name: mf.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: mf.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}
