package delete_sale

import (
	"context"

	deleteSale "github.com/m04kA/WJL-TicketService/internal/usecase/delete_sale"
)

type DeleteSaleUseCase interface {
	Execute(ctx context.Context, req *deleteSale.Request) (*deleteSale.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
