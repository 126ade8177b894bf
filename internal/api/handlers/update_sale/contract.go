package update_sale

import (
	"context"

	updateSale "github.com/m04kA/WJL-TicketService/internal/usecase/update_sale"
)

type UpdateSaleUseCase interface {
	Execute(ctx context.Context, req *updateSale.Request) (*updateSale.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
