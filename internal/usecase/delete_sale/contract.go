package delete_sale

import (
	"context"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// LocalInventory инвентарь мест сессии, обновляемый после подтверждения удаления
type LocalInventory interface {
	Release(sale *domain.Sale)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	SaleDeleted(ctx context.Context, sale *domain.Sale)
}

// Metrics бизнес-метрики продаж
type Metrics interface {
	IncSaleDeleted()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени. "Сегодня" считается
// в часовом поясе компании.
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в поясе компании
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
