package share_whatsapp

import (
	"context"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

type SaleProvider interface {
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
}

type ParcelProvider interface {
	GetParcel(ctx context.Context, id string) (*domain.Parcel, error)
}

type DriverProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
}

type CompanyProvider interface {
	GetInfo(ctx context.Context) (*domain.CompanyInfo, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
