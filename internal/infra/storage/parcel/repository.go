package parcel

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

const (
	tableName  = "packages"
	primaryKey = "packages_pkey"
)

var columns = []string{
	"id",
	"tracking_code",
	"sender_name",
	"sender_dni",
	"sender_phone",
	"recipient_name",
	"recipient_dni",
	"recipient_phone",
	"from_city",
	"to_city",
	"route_id",
	"description",
	"weight",
	"declared_value",
	"shipping_cost",
	"total",
	"travel_date",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий посылок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория посылок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет посылку; коллизия id - ErrDuplicateID, tracking_code - ErrDuplicateTrackingCode
func (r *Repository) Create(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns[:len(columns)-2]...).
		Values(
			parcel.ID,
			parcel.TrackingCode,
			parcel.SenderName,
			parcel.SenderDNI,
			parcel.SenderPhone,
			parcel.RecipientName,
			parcel.RecipientDNI,
			parcel.RecipientPhone,
			parcel.FromCity,
			parcel.ToCity,
			parcel.RouteID,
			parcel.Description,
			parcel.Weight,
			parcel.DeclaredValue,
			parcel.ShippingCost,
			parcel.Total,
			parcel.TravelDate.Format(domain.DateFormat),
			parcel.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&parcel.CreatedAt, &parcel.UpdatedAt)
	if err != nil {
		if constraint, ok := pgerr.UniqueViolation(err); ok {
			if constraint == primaryKey {
				return nil, fmt.Errorf("%w: %w", ErrDuplicateID, err)
			}
			return nil, fmt.Errorf("%w: %w", ErrDuplicateTrackingCode, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return parcel, nil
}

// GetByID получает посылку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Parcel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	parcel, err := scanParcel(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrParcelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan parcel: %v", ErrScanRow, err)
	}

	return parcel, nil
}

// TrackingCodeExists проверяет, занят ли код отслеживания
func (r *Repository) TrackingCodeExists(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(tableName).
		Where(squirrel.Eq{"tracking_code": code}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: TrackingCodeExists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: TrackingCodeExists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// List получает посылки по фильтру, новые сверху
func (r *Repository) List(ctx context.Context, filter domain.ParcelsFilter) ([]*domain.Parcel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.TrackingCode != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"tracking_code": *filter.TrackingCode})
	}
	if filter.SenderDNI != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sender_dni": *filter.SenderDNI})
	}
	if filter.RecipientDNI != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"recipient_dni": *filter.RecipientDNI})
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

	parcels := make([]*domain.Parcel, 0)
	for rows.Next() {
		parcel, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		parcels = append(parcels, parcel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return parcels, nil
}

// Update перезаписывает изменяемые поля посылки
func (r *Repository) Update(ctx context.Context, parcel *domain.Parcel) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("tracking_code", parcel.TrackingCode).
		Set("sender_name", parcel.SenderName).
		Set("sender_dni", parcel.SenderDNI).
		Set("sender_phone", parcel.SenderPhone).
		Set("recipient_name", parcel.RecipientName).
		Set("recipient_dni", parcel.RecipientDNI).
		Set("recipient_phone", parcel.RecipientPhone).
		Set("from_city", parcel.FromCity).
		Set("to_city", parcel.ToCity).
		Set("route_id", parcel.RouteID).
		Set("description", parcel.Description).
		Set("weight", parcel.Weight).
		Set("declared_value", parcel.DeclaredValue).
		Set("shipping_cost", parcel.ShippingCost).
		Set("total", parcel.Total).
		Set("travel_date", parcel.TravelDate.Format(domain.DateFormat)).
		Set("status", parcel.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": parcel.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return ErrDuplicateTrackingCode
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrParcelNotFound
	}

	return nil
}

// Delete удаляет посылку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrParcelNotFound
	}

	return nil
}

// CountByRoute количество посылок, привязанных к маршруту
func (r *Repository) CountByRoute(ctx context.Context, routeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"route_id": routeID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByRoute - build count query: %v", ErrBuildQuery, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: CountByRoute - scan count: %v", ErrScanRow, err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanParcel(row scanner) (*domain.Parcel, error) {
	var p domain.Parcel
	var senderPhone, recipientPhone sql.NullString
	var routeID sql.NullInt64

	err := row.Scan(
		&p.ID,
		&p.TrackingCode,
		&p.SenderName,
		&p.SenderDNI,
		&senderPhone,
		&p.RecipientName,
		&p.RecipientDNI,
		&recipientPhone,
		&p.FromCity,
		&p.ToCity,
		&routeID,
		&p.Description,
		&p.Weight,
		&p.DeclaredValue,
		&p.ShippingCost,
		&p.Total,
		&p.TravelDate,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if senderPhone.Valid {
		p.SenderPhone = &senderPhone.String
	}
	if recipientPhone.Valid {
		p.RecipientPhone = &recipientPhone.String
	}
	if routeID.Valid {
		p.RouteID = &routeID.Int64
	}

	return &p, nil
}
