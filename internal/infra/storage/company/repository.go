package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/pkg/dbmetrics"
	"github.com/m04kA/WJL-TicketService/pkg/psqlbuilder"
)

const (
	tableName = "company_info"

	// Реквизиты хранятся единственной строкой
	singletonID = 1
)

// Repository репозиторий реквизитов компании
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория реквизитов компании
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сохранённые реквизиты или ErrCompanyNotFound
func (r *Repository) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"name",
		"business_name",
		"ruc",
		"address",
		"phone",
		"email",
		"website",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.CompanyInfo
	var businessName, email, website sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.Name,
		&businessName,
		&info.RUC,
		&info.Address,
		&info.Phone,
		&email,
		&website,
		&info.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan company: %v", ErrScanRow, err)
	}

	info.BusinessName = nullable(businessName)
	info.Email = nullable(email)
	info.Website = nullable(website)

	return &info, nil
}

// Upsert сохраняет реквизиты, создавая строку при первом сохранении
func (r *Repository) Upsert(ctx context.Context, info *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "name", "business_name", "ruc", "address", "phone", "email", "website").
		Values(singletonID, info.Name, info.BusinessName, info.RUC, info.Address, info.Phone, info.Email, info.Website).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			business_name = EXCLUDED.business_name,
			ruc = EXCLUDED.ruc,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&info.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return info, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
