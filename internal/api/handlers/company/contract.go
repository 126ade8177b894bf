package company

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/service/company/models"
)

type CompanyService interface {
	Get(ctx context.Context) (*models.CompanyResponse, error)
	Update(ctx context.Context, req *models.UpdateCompanyRequest) (*models.CompanyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
