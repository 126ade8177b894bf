package drivers

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/service/drivers/models"
)

type DriverService interface {
	Create(ctx context.Context, req *models.CreateDriverRequest) (*models.DriverResponse, error)
	GetByID(ctx context.Context, id int64) (*models.DriverResponse, error)
	List(ctx context.Context, status *string) (*models.DriverListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateDriverRequest) (*models.DriverResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
