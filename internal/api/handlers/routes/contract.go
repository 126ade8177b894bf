package routes

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/service/routes/models"
)

type RouteService interface {
	Create(ctx context.Context, req *models.CreateRouteRequest) (*models.RouteResponse, error)
	GetByID(ctx context.Context, id int64) (*models.RouteResponse, error)
	List(ctx context.Context, status *string) (*models.RouteListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateRouteRequest) (*models.RouteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
