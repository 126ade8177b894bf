package report

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/pkg/psqlbuilder"
)

// Querier подмножество *pgxpool.Pool, нужное отчётам
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository агрегирующие запросы для отчётов, выполняемые через пул pgx
type Repository struct {
	pool Querier
}

// NewRepository создает новый экземпляр репозитория отчётов
func NewRepository(pool Querier) *Repository {
	return &Repository{pool: pool}
}

// PassengersByDriver группирует активные продажи по водителю
func (r *Repository) PassengersByDriver(ctx context.Context, filter domain.DriverReportFilter) ([]*domain.DriverReportRow, error) {
	query, args, err := driverReportQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: PassengersByDriver - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: PassengersByDriver - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.DriverReportRow, 0)
	for rows.Next() {
		var row domain.DriverReportRow
		var passengers int64
		if err := rows.Scan(&row.DriverID, &row.DriverName, &passengers, &row.Revenue, &row.Routes); err != nil {
			return nil, fmt.Errorf("%w: PassengersByDriver - scan row: %v", ErrScanRow, err)
		}
		row.PassengerCount = int(passengers)
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: PassengersByDriver - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func driverReportQuery(filter domain.DriverReportFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		"driver_id",
		"driver_name",
		"COUNT(*) AS passengers",
		"COALESCE(SUM(total), 0)::float8 AS revenue",
		"array_agg(DISTINCT from_city || ' → ' || to_city ORDER BY from_city || ' → ' || to_city) AS routes",
	).
		From("sales").
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		GroupBy("driver_id", "driver_name").
		OrderBy("passengers DESC", "driver_name ASC")

	if filter.TravelDate != nil {
		builder = builder.Where(squirrel.Eq{"travel_date": filter.TravelDate.Format(domain.DateFormat)})
	}
	if filter.ScheduleTime != nil {
		builder = builder.Where(squirrel.Eq{"schedule_time": *filter.ScheduleTime})
	}
	if filter.DriverID != nil {
		builder = builder.Where(squirrel.Eq{"driver_id": *filter.DriverID})
	}

	return builder
}
