package sale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/pkg/dbmetrics"
	"github.com/m04kA/WJL-TicketService/pkg/pgerr"
	"github.com/m04kA/WJL-TicketService/pkg/psqlbuilder"
)

const (
	tableName       = "sales"
	activeSeatIndex = "sales_active_seat_uidx"
)

var columns = []string{
	"id",
	"passenger_name",
	"passenger_dni",
	"passenger_phone",
	"from_city",
	"to_city",
	"driver_id",
	"driver_name",
	"route_id",
	"seat_number",
	"price",
	"total",
	"travel_date",
	"schedule_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с продажами билетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория продаж
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую продажу.
// Частичный уникальный индекс по (route_id, travel_date, schedule_time, seat_number)
// для неотменённых продаж - окончательный арбитр гонки: проигравший INSERT
// получает ErrSeatTaken.
func (r *Repository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns[:len(columns)-2]...).
		Values(
			sale.ID,
			sale.PassengerName,
			sale.PassengerDNI,
			sale.PassengerPhone,
			sale.FromCity,
			sale.ToCity,
			sale.DriverID,
			sale.DriverName,
			sale.RouteID,
			sale.SeatNumber,
			sale.Price,
			sale.Total,
			sale.TravelDate.Format(domain.DateFormat),
			sale.ScheduleTime,
			sale.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	sale.CreatedAt = createdAt.Time
	sale.UpdatedAt = updatedAt.Time

	return sale, nil
}

// GetByID получает продажу по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	sale, err := scanSale(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sale: %w", ErrScanRow, err)
	}

	return sale, nil
}

// List получает продажи по фильтру, новые сверху.
// Все поля фильтра необязательны; DriverName ищется по подстроке без учёта регистра.
func (r *Repository) List(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("created_at DESC", "id DESC")

	if filter.TravelDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"travel_date": filter.TravelDate.Format(domain.DateFormat)})
	}
	if filter.RouteID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"route_id": *filter.RouteID})
	}
	if filter.ScheduleTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"schedule_time": *filter.ScheduleTime})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DriverID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"driver_id": *filter.DriverID})
	}
	if filter.DriverName != nil && strings.TrimSpace(*filter.DriverName) != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"driver_name": "%" + strings.TrimSpace(*filter.DriverName) + "%"})
	}
	if filter.PassengerDNI != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"passenger_dni": *filter.PassengerDNI})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return sales, nil
}

// IsSeatTaken проверяет, занято ли место активной продажей на рейсе.
// excludeID исключает саму продажу при её редактировании (пустая строка - без исключения).
// Внутри транзакции найденная строка блокируется (FOR UPDATE).
func (r *Repository) IsSeatTaken(ctx context.Context, routeID int64, travelDate, scheduleTime string, seat int, excludeID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From(tableName).
		Where(squirrel.Eq{
			"route_id":      routeID,
			"travel_date":   travelDate,
			"schedule_time": scheduleTime,
			"seat_number":   seat,
		}).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		Limit(1)

	if excludeID != "" {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSeatTaken - build select query: %w", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSeatTaken - scan id: %w", ErrScanRow, err)
	}

	return true, nil
}

// Update перезаписывает изменяемые поля продажи
func (r *Repository) Update(ctx context.Context, sale *domain.Sale) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("passenger_name", sale.PassengerName).
		Set("passenger_dni", sale.PassengerDNI).
		Set("passenger_phone", sale.PassengerPhone).
		Set("from_city", sale.FromCity).
		Set("to_city", sale.ToCity).
		Set("driver_id", sale.DriverID).
		Set("driver_name", sale.DriverName).
		Set("route_id", sale.RouteID).
		Set("seat_number", sale.SeatNumber).
		Set("price", sale.Price).
		Set("total", sale.Total).
		Set("travel_date", sale.TravelDate.Format(domain.DateFormat)).
		Set("schedule_time", sale.ScheduleTime).
		Set("status", sale.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sale.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// Delete физически удаляет продажу
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// CountByDriver количество продаж, ссылающихся на водителя
func (r *Repository) CountByDriver(ctx context.Context, driverID int64) (int, error) {
	return r.count(ctx, "CountByDriver", squirrel.Eq{"driver_id": driverID})
}

// CountByRoute количество продаж, ссылающихся на маршрут
func (r *Repository) CountByRoute(ctx context.Context, routeID int64) (int, error) {
	return r.count(ctx, "CountByRoute", squirrel.Eq{"route_id": routeID})
}

func (r *Repository) count(ctx context.Context, method string, where squirrel.Sqlizer) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(where).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build count query: %w", ErrBuildQuery, method, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %w", ErrScanRow, method, err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSale(row scanner) (*domain.Sale, error) {
	var sale domain.Sale
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sale.ID,
		&sale.PassengerName,
		&sale.PassengerDNI,
		&sale.PassengerPhone,
		&sale.FromCity,
		&sale.ToCity,
		&sale.DriverID,
		&sale.DriverName,
		&sale.RouteID,
		&sale.SeatNumber,
		&sale.Price,
		&sale.Total,
		&sale.TravelDate,
		&sale.ScheduleTime,
		&sale.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.CreatedAt = createdAt.Time
	sale.UpdatedAt = updatedAt.Time

	return &sale, nil
}

// mapUniqueViolation переводит 23505 в ошибки репозитория, иначе nil
func mapUniqueViolation(err error) error {
	constraint, ok := pgerr.UniqueViolation(err)
	if !ok {
		return nil
	}
	if constraint == activeSeatIndex {
		return fmt.Errorf("%w: %w", ErrSeatTaken, err)
	}
	return fmt.Errorf("%w: %w", ErrDuplicateID, err)
}
