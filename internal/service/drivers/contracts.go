package drivers

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// DriverRepository интерфейс репозитория водителей
type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error)
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	List(ctx context.Context, status *domain.DriverStatus) ([]*domain.Driver, error)
	Update(ctx context.Context, driver *domain.Driver) error
	Delete(ctx context.Context, id int64) error
}

// SaleCounter считает продажи, ссылающиеся на водителя
type SaleCounter interface {
	CountByDriver(ctx context.Context, driverID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
