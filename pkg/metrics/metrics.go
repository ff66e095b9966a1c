// Package metrics defines filecore's Prometheus instrumentation: one
// struct of nil-safe recorder methods, constructed against a registerer.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics tracks the control plane's Prometheus metrics. All metrics use
// the filecore_ prefix.
type Metrics struct {
	// CommandsTotal counts dispatched commands by type.
	CommandsTotal *prometheus.CounterVec

	// ScanDuration tracks scan latency distribution by outcome
	// ("completed", "cancelled", "error").
	ScanDuration *prometheus.HistogramVec

	// ActiveSessions tracks the current number of live sessions.
	ActiveSessions prometheus.Gauge

	// RegistrySize tracks the current number of registered NodeIds.
	RegistrySize prometheus.Gauge
}

// New creates filecore's metrics and registers them against reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filecore_commands_total",
				Help: "Total commands dispatched, by command type",
			},
			[]string{"command"},
		),
		ScanDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "filecore_scan_duration_seconds",
				Help:    "Scan duration in seconds, by outcome",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "filecore_active_sessions",
				Help: "Current number of live sessions",
			},
		),
		RegistrySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "filecore_registry_size",
				Help: "Current number of registered NodeIds",
			},
		),
	}

	reg.MustRegister(
		m.CommandsTotal,
		m.ScanDuration,
		m.ActiveSessions,
		m.RegistrySize,
	)

	return m
}

// RecordCommand increments the command counter for name.
func (m *Metrics) RecordCommand(name string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(name).Inc()
}

// RecordScan observes a completed scan's duration under outcome.
func (m *Metrics) RecordScan(outcome string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.ScanDuration.WithLabelValues(outcome).Observe(durationSeconds)
}

// SetActiveSessions updates the active-session gauge.
func (m *Metrics) SetActiveSessions(count int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(count))
}

// SetRegistrySize updates the registry-size gauge.
func (m *Metrics) SetRegistrySize(count int) {
	if m == nil {
		return
	}
	m.RegistrySize.Set(float64(count))
}
