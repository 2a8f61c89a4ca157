package entitlements

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup stages that can time out.
const (
	StageIdentifier = "identifier"
	StageDOI        = "doi"
)

// Results of a DOI resolution.
const (
	ResultEntitled    = "entitled"
	ResultNotEntitled = "not_entitled"
	ResultUnprocessed = "unprocessed"
)

type Metrics struct {
	requests        *prometheus.CounterVec
	doiResults      *prometheus.CounterVec
	lookupTimeouts  *prometheus.CounterVec
	resolveDuration prometheus.Histogram
	snapshotLoads   *prometheus.CounterVec
	snapshotVersion *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlements_requests_total",
			Help: "Number of GetEntitlements requests by result.",
		},
		[]string{"result"},
	)
	if err := reg.Register(requests); err != nil {
		return nil, fmt.Errorf("register requests metric: %w", err)
	}

	doiResults := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlements_doi_results_total",
			Help: "Number of resolved DOIs by result.",
		},
		[]string{"result"},
	)
	if err := reg.Register(doiResults); err != nil {
		return nil, fmt.Errorf("register DOI results metric: %w", err)
	}

	lookupTimeouts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlements_lookup_timeouts_total",
			Help: "Rights index lookups that timed out, by stage.",
		},
		[]string{"stage"},
	)
	if err := reg.Register(lookupTimeouts); err != nil {
		return nil, fmt.Errorf("register lookup timeouts metric: %w", err)
	}

	resolveDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "entitlements_resolve_duration_seconds",
			Help:    "Time spent resolving a GetEntitlements request.",
			Buckets: prometheus.DefBuckets,
		},
	)
	if err := reg.Register(resolveDuration); err != nil {
		return nil, fmt.Errorf("register resolve duration metric: %w", err)
	}

	snapshotLoads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlements_snapshot_loads_total",
			Help: "Rights snapshot loads by source and result.",
		},
		[]string{"source", "result"},
	)
	if err := reg.Register(snapshotLoads); err != nil {
		return nil, fmt.Errorf("register snapshot loads metric: %w", err)
	}

	snapshotVersion := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "entitlements_snapshot_version",
			Help: "The currently loaded rights snapshot version, always 1.",
		},
		[]string{"source", "version"},
	)
	if err := reg.Register(snapshotVersion); err != nil {
		return nil, fmt.Errorf("register snapshot version metric: %w", err)
	}

	return &Metrics{
		requests:        requests,
		doiResults:      doiResults,
		lookupTimeouts:  lookupTimeouts,
		resolveDuration: resolveDuration,
		snapshotLoads:   snapshotLoads,
		snapshotVersion: snapshotVersion,
	}, nil
}

func (m *Metrics) Request(result string, duration time.Duration) {
	m.requests.WithLabelValues(result).Inc()
	m.resolveDuration.Observe(duration.Seconds())
}

func (m *Metrics) DOIResult(result string) {
	m.doiResults.WithLabelValues(result).Inc()
}

func (m *Metrics) LookupTimeout(stage string) {
	m.lookupTimeouts.WithLabelValues(stage).Inc()
}

// SnapshotLoaded records a snapshot load attempt. Its signature, minus the
// source name, matches rights.PostgresLoaderOptions.OnLoad.
func (m *Metrics) SnapshotLoaded(source string, version string, err error) {
	if err != nil {
		m.snapshotLoads.WithLabelValues(source, "failure").Inc()

		return
	}

	m.snapshotLoads.WithLabelValues(source, "success").Inc()

	m.snapshotVersion.DeletePartialMatch(prometheus.Labels{
		"source": source,
	})
	m.snapshotVersion.WithLabelValues(source, version).Set(1)
}
