package print_documents

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

type CompanyProvider interface {
	GetInfo(ctx context.Context) (*domain.CompanyInfo, error)
}

// Archive хранилище напечатанных билетов, опционально
type Archive interface {
	Put(ctx context.Context, name string, pdf []byte) (string, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
