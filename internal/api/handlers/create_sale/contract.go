package create_sale

import (
	"context"

	createSale "github.com/m04kA/WJL-TicketService/internal/usecase/create_sale"
)

type CreateSaleUseCase interface {
	Execute(ctx context.Context, req *createSale.Request) (*createSale.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
