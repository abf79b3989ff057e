// Package metrics Prometheus-коллекторы сервиса
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы операций планирования
const (
	OutcomeOK          = "ok"
	OutcomeConflict    = "conflict"
	OutcomeInvalidDate = "invalid_date"
	OutcomeClosed      = "closed"
	OutcomeInvalidSlot = "invalid_slot"
	OutcomeError       = "error"
)

// Metrics набор коллекторов. Все методы безопасны для nil-получателя,
// поэтому при выключенных метриках можно передавать nil.
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	SchedulingOutcomes *prometheus.CounterVec
	SlotsServed        *prometheus.HistogramVec
}

// New создаёт коллекторы и регистрирует их в default registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создаёт коллекторы и регистрирует их в указанном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "route"},
		),

		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency",
				Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_query_errors_total",
				Help: "Total number of failed database queries",
			},
			[]string{"service", "operation"},
		),
		DBConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database connection pool state",
			},
			[]string{"service", "state"},
		),

		SchedulingOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduling_outcomes_total",
				Help: "Outcomes of booking and rescheduling attempts",
			},
			[]string{"service", "operation", "outcome"},
		),
		SlotsServed: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scheduling_available_slots",
				Help:    "Number of available slots returned per availability request",
				Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"service"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.SchedulingOutcomes,
		m.SlotsServed,
	)

	return m
}

// ServiceName имя сервиса, используемое в метке service
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// RecordDBQuery учитывает выполненный запрос к БД
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBStats обновляет метрики connection pool
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.serviceName, "open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues(m.serviceName, "idle").Set(float64(stats.Idle))
	m.DBConnections.WithLabelValues(m.serviceName, "max_open").Set(float64(stats.MaxOpenConnections))
}

// RecordSchedulingOutcome учитывает исход создания или переноса записи
func (m *Metrics) RecordSchedulingOutcome(operation, outcome string) {
	if m == nil {
		return
	}
	m.SchedulingOutcomes.WithLabelValues(m.serviceName, operation, outcome).Inc()
}

// RecordSlotsServed учитывает количество свободных слотов в ответе
func (m *Metrics) RecordSlotsServed(count int) {
	if m == nil {
		return
	}
	m.SlotsServed.WithLabelValues(m.serviceName).Observe(float64(count))
}
