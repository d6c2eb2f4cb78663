package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     *prometheus.GaugeVec
	DBIdleConns     *prometheus.GaugeVec

	SweepRunsTotal         *prometheus.CounterVec
	SweepAdvertsExpired    prometheus.Counter
	SweepAssignmentsPruned prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		DBQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"service", "operation", "status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		DBOpenConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_open_connections",
				Help: "Number of open database connections",
			},
			[]string{"service"},
		),
		DBIdleConns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_idle_connections",
				Help: "Number of idle database connections",
			},
			[]string{"service"},
		),
		SweepRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifecycle_sweep_runs_total",
				Help: "Total number of lifecycle sweep runs",
			},
			[]string{"service", "trigger"},
		),
		SweepAdvertsExpired: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lifecycle_sweep_adverts_expired_total",
				Help: "Total number of adverts expired by the lifecycle sweep",
			},
		),
		SweepAssignmentsPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lifecycle_sweep_assignments_pruned_total",
				Help: "Total number of stale slot assignments pruned",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConns,
		m.DBIdleConns,
		m.SweepRunsTotal,
		m.SweepAdvertsExpired,
		m.SweepAssignmentsPruned,
	)

	return m
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(seconds)
}

// ObserveDBQuery записывает метрики одного запроса к БД
func (m *Metrics) ObserveDBQuery(operation, status string, seconds float64) {
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
}

// SetDBConns обновляет gauge'и состояния пула соединений
func (m *Metrics) SetDBConns(open, idle int) {
	m.DBOpenConns.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBIdleConns.WithLabelValues(m.serviceName).Set(float64(idle))
}

// ObserveSweepRun записывает запуск lifecycle sweep и его результаты
func (m *Metrics) ObserveSweepRun(trigger string, expired, pruned int) {
	m.SweepRunsTotal.WithLabelValues(m.serviceName, trigger).Inc()
	m.SweepAdvertsExpired.Add(float64(expired))
	m.SweepAssignmentsPruned.Add(float64(pruned))
}
