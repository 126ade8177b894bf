package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/documents"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	routeRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/route"
	"github.com/m04kA/WJL-TicketService/internal/service/reports/models"
)

// Service сервис отчётов и посадочных ведомостей
type Service struct {
	reportRepo   ReportRepository
	saleRepo     SaleRepository
	routeRepo    RouteRepository
	company      CompanyProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(
	reportRepo ReportRepository,
	saleRepo SaleRepository,
	routeRepo RouteRepository,
	company CompanyProvider,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reportRepo:   reportRepo,
		saleRepo:     saleRepo,
		routeRepo:    routeRepo,
		company:      company,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// DriverReport пассажиры и выручка по водителям (только активные продажи)
func (s *Service) DriverReport(ctx context.Context, req *models.DriverReportRequest) (*models.DriverReportResponse, error) {
	s.logger.Info("DriverReport: date=%v, schedule=%v, driver=%v", req.Date, req.Schedule, req.DriverID)

	filter := domain.DriverReportFilter{DriverID: req.DriverID}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			s.logger.Warn("DriverReport: invalid date %q", *req.Date)
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		filter.TravelDate = &date
	}

	if req.Schedule != nil {
		if _, err := time.Parse(domain.TimeFormat, *req.Schedule); err != nil {
			s.logger.Warn("DriverReport: invalid schedule %q", *req.Schedule)
			return nil, fmt.Errorf("%w: schedule must be HH:MM", ErrInvalidInput)
		}
		filter.ScheduleTime = req.Schedule
	}

	rows, err := s.reportRepo.PassengersByDriver(ctx, filter)
	if err != nil {
		s.logger.Error("DriverReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: DriverReport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DriverReport: %d drivers", len(rows))
	return models.FromDomainDriverReport(rows), nil
}

// Manifest посадочная ведомость рейса в PDF
func (s *Service) Manifest(ctx context.Context, req *models.ManifestRequest) ([]byte, error) {
	// 1. Валидация параметров рейса
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeFormat, req.Schedule); err != nil {
		return nil, fmt.Errorf("%w: schedule must be HH:MM", ErrInvalidInput)
	}
	if req.RouteID <= 0 {
		return nil, fmt.Errorf("%w: routeId is required", ErrInvalidInput)
	}

	// 2. Маршрут
	route, err := s.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			s.logger.Warn("Manifest: route id=%d not found", req.RouteID)
			return nil, ErrRouteNotFound
		}
		s.logger.Error("Manifest: failed to get route id=%d: %v", req.RouteID, err)
		return nil, fmt.Errorf("%w: Manifest - get route: %v", ErrInternal, err)
	}

	// 3. Активные продажи рейса
	sales, err := s.saleRepo.List(ctx, domain.SalesFilter{
		TravelDate:   &date,
		RouteID:      &req.RouteID,
		ScheduleTime: &req.Schedule,
		ActiveOnly:   true,
	})
	if err != nil {
		s.logger.Error("Manifest: failed to list sales: %v", err)
		return nil, fmt.Errorf("%w: Manifest - list sales: %v", ErrInternal, err)
	}

	// 4. Реквизиты компании
	company, err := s.company.GetInfo(ctx)
	if err != nil {
		s.logger.Error("Manifest: failed to get company info: %v", err)
		return nil, fmt.Errorf("%w: Manifest - company info: %v", ErrInternal, err)
	}

	// 5. Рендер PDF
	pdf, err := documents.ManifestPDF(documents.Manifest{
		Company:   *company,
		Route:     route,
		Date:      date,
		Schedule:  req.Schedule,
		Sales:     sales,
		PrintedAt: s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("Manifest: failed to render pdf: %v", err)
		return nil, fmt.Errorf("%w: Manifest - render: %v", ErrInternal, err)
	}

	s.logger.Info("Manifest: route=%d date=%s schedule=%s, %d passengers", req.RouteID, req.Date, req.Schedule, len(sales))
	return pdf, nil
}
