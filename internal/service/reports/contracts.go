package reports

import (
	"context"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// ReportRepository интерфейс репозитория отчётов
type ReportRepository interface {
	PassengersByDriver(ctx context.Context, filter domain.DriverReportFilter) ([]*domain.DriverReportRow, error)
}

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	List(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error)
}

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
}

// CompanyProvider источник реквизитов компании для шапки документов
type CompanyProvider interface {
	GetInfo(ctx context.Context) (*domain.CompanyInfo, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider текущее время в часовом поясе компании
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
