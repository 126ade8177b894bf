package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("wjl", prometheus.NewRegistry())

	m.IncSaleCreated()
	m.IncSaleCreated()
	m.IncSeatConflict()
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/sales", http.StatusCreated, 10*time.Millisecond)
	m.ObserveDBQuery("wjl", "insert", time.Millisecond, errors.New("boom"))
	m.ObserveDBQuery("wjl", "select", time.Millisecond, sql.ErrNoRows)
	m.SetDBPoolStats("wjl", sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SalesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SeatConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/sales", "201")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBOpenConnections.WithLabelValues("open")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.DBQueryDuration))
}
