package route

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/pkg/dbmetrics"
	"github.com/m04kA/WJL-TicketService/pkg/pgerr"
	"github.com/m04kA/WJL-TicketService/pkg/psqlbuilder"
)

const tableName = "routes"

var columns = []string{
	"id",
	"origin",
	"destination",
	"price",
	"schedule",
	"arrival_time",
	"distance_km",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий маршрутов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория маршрутов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает маршрут
func (r *Repository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("origin", "destination", "price", "schedule", "arrival_time", "distance_km", "status").
		Values(route.Origin, route.Destination, route.Price, route.Schedule, route.ArrivalTime, route.DistanceKm, route.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return nil, ErrDuplicateRoute
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return route, nil
}

// GetByID получает маршрут по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	route, err := scanRoute(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan route: %v", ErrScanRow, err)
	}

	return route, nil
}

// List возвращает маршруты по времени отправления; status опционален
func (r *Repository) List(ctx context.Context, status *domain.RouteStatus) ([]*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("schedule ASC", "origin ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return routes, nil
}

// Update перезаписывает данные маршрута
func (r *Repository) Update(ctx context.Context, route *domain.Route) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("origin", route.Origin).
		Set("destination", route.Destination).
		Set("price", route.Price).
		Set("schedule", route.Schedule).
		Set("arrival_time", route.ArrivalTime).
		Set("distance_km", route.DistanceKm).
		Set("status", route.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": route.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return ErrDuplicateRoute
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRouteNotFound
	}

	return nil
}

// Delete удаляет маршрут
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if _, ok := pgerr.ForeignKeyViolation(err); ok {
			return ErrRouteInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRouteNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRoute(row scanner) (*domain.Route, error) {
	var route domain.Route
	var arrival sql.NullString
	var distance sql.NullFloat64

	err := row.Scan(
		&route.ID,
		&route.Origin,
		&route.Destination,
		&route.Price,
		&route.Schedule,
		&arrival,
		&distance,
		&route.Status,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if arrival.Valid {
		route.ArrivalTime = &arrival.String
	}
	if distance.Valid {
		route.DistanceKm = &distance.Float64
	}

	return &route, nil
}
