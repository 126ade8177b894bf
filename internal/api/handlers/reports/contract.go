package reports

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/service/reports/models"
)

type ReportService interface {
	DriverReport(ctx context.Context, req *models.DriverReportRequest) (*models.DriverReportResponse, error)
	Manifest(ctx context.Context, req *models.ManifestRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
