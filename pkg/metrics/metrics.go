package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	SalesCreated    prometheus.Counter
	SalesDeleted    prometheus.Counter
	SeatConflicts   prometheus.Counter
	PackagesCreated prometheus.Counter
	ActiveSessions  prometheus.Gauge
}

// New создает метрики и регистрирует их в стандартном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(0.0005, 2, 15),
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database pool connections by state.",
			ConstLabels: constLabels,
		}, []string{"state"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait",
			Help:        "Database pool wait counters.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		SalesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "sales_created_total",
			Help:        "Ticket sales persisted.",
			ConstLabels: constLabels,
		}),
		SalesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "sales_deleted_total",
			Help:        "Ticket sales deleted.",
			ConstLabels: constLabels,
		}),
		SeatConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "seat_conflicts_total",
			Help:        "Sale attempts rejected because the seat was already taken.",
			ConstLabels: constLabels,
		}),
		PackagesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "packages_created_total",
			Help:        "Parcels registered.",
			ConstLabels: constLabels,
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "active_sessions",
			Help:        "Staff sessions currently held in memory.",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal, m.HTTPRequestDuration,
		m.DBQueryDuration, m.DBOpenConnections, m.DBWaitCount,
		m.SalesCreated, m.SalesDeleted, m.SeatConflicts, m.PackagesCreated,
		m.ActiveSessions,
	)

	return m
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery реализует dbmetrics.Recorder
func (m *Metrics) ObserveDBQuery(_ string, operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats реализует dbmetrics.Recorder
func (m *Metrics) SetDBPoolStats(_ string, stats sql.DBStats) {
	m.DBOpenConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBOpenConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBOpenConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.DBWaitCount.WithLabelValues("count").Set(float64(stats.WaitCount))
	m.DBWaitCount.WithLabelValues("seconds").Set(stats.WaitDuration.Seconds())
}

func (m *Metrics) IncSaleCreated()    { m.SalesCreated.Inc() }
func (m *Metrics) IncSaleDeleted()    { m.SalesDeleted.Inc() }
func (m *Metrics) IncSeatConflict()   { m.SeatConflicts.Inc() }
func (m *Metrics) IncPackageCreated() { m.PackagesCreated.Inc() }
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}

// Nop пустая реализация бизнес-счётчиков, когда метрики выключены
type Nop struct{}

func (Nop) IncSaleCreated()       {}
func (Nop) IncSaleDeleted()       {}
func (Nop) IncSeatConflict()      {}
func (Nop) IncPackageCreated()    {}
func (Nop) SetActiveSessions(int) {}
