package packages

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/service/packages/models"
)

type PackageService interface {
	Create(ctx context.Context, req *models.CreatePackageRequest) (*models.PackageResponse, error)
	GetByID(ctx context.Context, id string) (*models.PackageResponse, error)
	List(ctx context.Context, req *models.ListPackagesRequest) (*models.PackageListResponse, error)
	Update(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.PackageResponse, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.PackageResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
