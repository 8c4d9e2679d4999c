package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Pipeline
	recordsLoaded     prometheus.Counter
	recordsEvaluated  prometheus.Counter
	evaluationLatency prometheus.Histogram
	rosterSize        prometheus.Gauge
	playerScore       *prometheus.GaugeVec
	pipelineRuns      prometheus.Counter

	// Queries
	rankingQueries *prometheus.CounterVec
	rankingErrors  *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton used by the package-level helpers

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry served on /healthz

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mvp",
		subsystem:        "ranking",
		histogramBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// Configure replaces the global manager with one built from opts on a fresh
// registry. Call it before any handler captures GetRegistry.
func Configure(opts ...Option) {
	customRegistry = prometheus.NewRegistry()
	globalManager = NewManager(append([]Option{WithPrometheusRegistry(customRegistry)}, opts...)...)
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   m.histogramBuckets,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordsLoaded = auto.NewCounter(m.counterOpts("records_loaded_total", "Total number of player records added to the roster"))
	m.recordsEvaluated = auto.NewCounter(m.counterOpts("records_evaluated_total", "Total number of player records scored"))
	m.evaluationLatency = auto.NewHistogram(m.histogramOpts("evaluation_latency_milliseconds", "Time spent scoring a single record"))
	m.rosterSize = auto.NewGauge(m.gaugeOpts("roster_size", "Number of records currently held"))
	m.playerScore = auto.NewGaugeVec(m.gaugeOpts("player_score", "Latest MVP score per player"), []string{"player"})
	m.pipelineRuns = auto.NewCounter(m.counterOpts("pipeline_runs_total", "Total number of load+evaluate runs"))

	m.rankingQueries = auto.NewCounterVec(m.counterOpts("queries_total", "Ranking queries by kind"), []string{"kind"})
	m.rankingErrors = auto.NewCounterVec(m.counterOpts("query_errors_total", "Failed ranking queries by kind"), []string{"kind"})

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"),
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "Heap bytes allocated"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
}

// RecordRecordLoaded counts a record added to the roster.
func (m *Manager) RecordRecordLoaded() {
	if m.enabled {
		m.recordsLoaded.Inc()
	}
}

// RecordRecordEvaluated counts a scored record.
func (m *Manager) RecordRecordEvaluated() {
	if m.enabled {
		m.recordsEvaluated.Inc()
	}
}

// RecordEvaluationLatency observes the time spent scoring one record.
func (m *Manager) RecordEvaluationLatency(latencyMs float64) {
	if m.enabled {
		m.evaluationLatency.Observe(latencyMs)
	}
}

// UpdateRosterSize sets the roster size gauge.
func (m *Manager) UpdateRosterSize(n int) {
	if m.enabled {
		m.rosterSize.Set(float64(n))
	}
}

// UpdatePlayerScore publishes the score of one player.
func (m *Manager) UpdatePlayerScore(player string, score int) {
	if m.enabled {
		m.playerScore.WithLabelValues(player).Set(float64(score))
	}
}

// ResetPlayerScores clears all per-player gauges.
func (m *Manager) ResetPlayerScores() {
	if m.enabled {
		m.playerScore.Reset()
	}
}

// RecordPipelineRun counts a completed pipeline run.
func (m *Manager) RecordPipelineRun() {
	if m.enabled {
		m.pipelineRuns.Inc()
	}
}

// RecordQuery counts a ranking query of the given kind.
func (m *Manager) RecordQuery(kind string) {
	if m.enabled {
		m.rankingQueries.WithLabelValues(kind).Inc()
	}
}

// RecordQueryError counts a failed ranking query of the given kind.
func (m *Manager) RecordQueryError(kind string) {
	if m.enabled {
		m.rankingErrors.WithLabelValues(kind).Inc()
	}
}

// RecordHTTPRequest counts an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	if m.enabled {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration in milliseconds.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if m.enabled {
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// UpdateSystemMemoryUsage sets the heap usage gauge.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if m.enabled {
		m.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	if m.enabled {
		m.systemGoroutineCount.Set(float64(count))
	}
}

// RecordRecordLoaded counts a record added to the roster.
func RecordRecordLoaded() {
	globalManager.RecordRecordLoaded()
}

// RecordRecordEvaluated counts a scored record.
func RecordRecordEvaluated() {
	globalManager.RecordRecordEvaluated()
}

// RecordEvaluationLatency observes the time spent scoring one record.
func RecordEvaluationLatency(latencyMs float64) {
	globalManager.RecordEvaluationLatency(latencyMs)
}

// UpdateRosterSize sets the roster size gauge.
func UpdateRosterSize(n int) {
	globalManager.UpdateRosterSize(n)
}

// UpdatePlayerScore publishes the score of one player.
func UpdatePlayerScore(player string, score int) {
	globalManager.UpdatePlayerScore(player, score)
}

// ResetPlayerScores clears all per-player gauges.
func ResetPlayerScores() {
	globalManager.ResetPlayerScores()
}

// RecordPipelineRun counts a completed pipeline run.
func RecordPipelineRun() {
	globalManager.RecordPipelineRun()
}

// RecordQuery counts a ranking query.
func RecordQuery(kind string) {
	globalManager.RecordQuery(kind)
}

// RecordQueryError counts a failed ranking query.
func RecordQueryError(kind string) {
	globalManager.RecordQueryError(kind)
}

// UpdateSystemMemoryUsage sets the heap usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.UpdateSystemMemoryUsage(bytes)
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.UpdateSystemGoroutineCount(count)
}

// RecordHTTPRequest counts an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

// RecordHTTPRequestDuration observes an HTTP request duration on the global manager.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, durationMs)
}

// GetRegistry returns the registry the global manager reports to.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
