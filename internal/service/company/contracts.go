package company

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// CompanyRepository интерфейс репозитория реквизитов компании
type CompanyRepository interface {
	Get(ctx context.Context) (*domain.CompanyInfo, error)
	Upsert(ctx context.Context, info *domain.CompanyInfo) (*domain.CompanyInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
