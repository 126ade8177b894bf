package sales

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
