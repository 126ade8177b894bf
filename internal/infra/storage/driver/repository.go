package driver

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

const tableName = "drivers"

var columns = []string{
	"id",
	"name",
	"phone",
	"email",
	"license",
	"experience_years",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий водителей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория водителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает водителя; повтор лицензии - ErrDuplicateLicense
func (r *Repository) Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("name", "phone", "email", "license", "experience_years", "status").
		Values(driver.Name, driver.Phone, driver.Email, driver.License, driver.ExperienceYears, driver.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&driver.ID, &driver.CreatedAt, &driver.UpdatedAt)
	if err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return nil, ErrDuplicateLicense
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return driver, nil
}

// GetByID получает водителя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	driver, err := scanDriver(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan driver: %v", ErrScanRow, err)
	}

	return driver, nil
}

// List возвращает водителей по имени; status опционален
func (r *Repository) List(ctx context.Context, status *domain.DriverStatus) ([]*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("name ASC")

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

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		drivers = append(drivers, driver)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return drivers, nil
}

// Update перезаписывает данные водителя
func (r *Repository) Update(ctx context.Context, driver *domain.Driver) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", driver.Name).
		Set("phone", driver.Phone).
		Set("email", driver.Email).
		Set("license", driver.License).
		Set("experience_years", driver.ExperienceYears).
		Set("status", driver.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": driver.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return ErrDuplicateLicense
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDriverNotFound
	}

	return nil
}

// Delete удаляет водителя
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
			return ErrDriverInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDriverNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDriver(row scanner) (*domain.Driver, error) {
	var driver domain.Driver
	var email sql.NullString

	err := row.Scan(
		&driver.ID,
		&driver.Name,
		&driver.Phone,
		&email,
		&driver.License,
		&driver.ExperienceYears,
		&driver.Status,
		&driver.CreatedAt,
		&driver.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		driver.Email = &email.String
	}

	return &driver, nil
}
