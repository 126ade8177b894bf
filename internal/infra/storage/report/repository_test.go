package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

func TestDriverReportQuery(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	schedule := "08:00"
	driverID := int64(3)

	query, args, err := driverReportQuery(domain.DriverReportFilter{
		TravelDate:   &date,
		ScheduleTime: &schedule,
		DriverID:     &driverID,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM sales WHERE status NOT IN ($1) AND travel_date = $2 AND schedule_time = $3 AND driver_id = $4")
	assert.Contains(t, query, "GROUP BY driver_id, driver_name ORDER BY passengers DESC, driver_name ASC")
	assert.Equal(t, []interface{}{domain.SaleStatusCancelled, "2025-01-10", "08:00", int64(3)}, args)
}

func TestDriverReportQuery_NoFilters(t *testing.T) {
	_, args, err := driverReportQuery(domain.DriverReportFilter{}).ToSql()
	require.NoError(t, err)
	assert.Len(t, args, 1)
}

type failingQuerier struct{}

func (failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("connection refused")
}

func TestPassengersByDriver_QueryError(t *testing.T) {
	_, err := NewRepository(failingQuerier{}).PassengersByDriver(context.Background(), domain.DriverReportFilter{})
	assert.ErrorIs(t, err, ErrExecQuery)
}
