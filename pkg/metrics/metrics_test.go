package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := NewWithRegisterer("scheduling", prometheus.NewRegistry())

	m.RecordHTTPRequest("GET", "/api/v1/companies/{companyId}/available-slots", 200, 15*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/companies/{companyId}/available-slots", 200, 5*time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("scheduling", "GET", "/api/v1/companies/{companyId}/available-slots", "200")))

	m.RecordDBQuery("select", time.Millisecond, nil)
	m.RecordDBQuery("select", time.Millisecond, sql.ErrNoRows)
	m.RecordDBQuery("insert", time.Millisecond, errors.New("duplicate"))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("scheduling", "select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("scheduling", "insert")))

	m.SetDBStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3, MaxOpenConnections: 25})
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBConnections.WithLabelValues("scheduling", "idle")))

	m.RecordSchedulingOutcome("create_appointment", OutcomeConflict)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.SchedulingOutcomes.WithLabelValues("scheduling", "create_appointment", OutcomeConflict)))

	m.RecordSlotsServed(12)
	assert.Equal(t, 1, testutil.CollectAndCount(m.SlotsServed))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", 200, time.Second)
		m.RecordDBQuery("select", time.Second, nil)
		m.SetDBStats(sql.DBStats{})
		m.RecordSchedulingOutcome("create_appointment", OutcomeOK)
		m.RecordSlotsServed(1)
	})
	assert.Equal(t, "", m.ServiceName())
}
