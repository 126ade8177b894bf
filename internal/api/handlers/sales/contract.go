package sales

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/service/sales/models"
)

type SaleService interface {
	GetByID(ctx context.Context, id string) (*models.SaleResponse, error)
	List(ctx context.Context, req *models.ListSalesRequest) (*models.SaleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
