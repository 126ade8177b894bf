package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	saleRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/sale"
	"github.com/m04kA/WJL-TicketService/internal/service/sales/models"
)

// Service сервис чтения продаж
type Service struct {
	saleRepo SaleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса продаж
func NewService(saleRepo SaleRepository, logger Logger) *Service {
	return &Service{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// GetByID получает продажу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SaleResponse, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSale(sale), nil
}

// GetSale получает domain модель продажи (для печати и сообщений)
func (s *Service) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, saleRepo.ErrSaleNotFound) {
			s.logger.Warn("GetSale: sale id=%s not found", id)
			return nil, ErrSaleNotFound
		}
		s.logger.Error("GetSale: repository error for sale id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetSale - repository error: %v", ErrInternal, err)
	}
	return sale, nil
}

// List получает продажи по фильтрам, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListSalesRequest) (*models.SaleListResponse, error) {
	s.logger.Info("List: fetching sales, date=%v, status=%v, driver=%v, dni=%v",
		req.Date, req.Status, req.DriverName, req.PassengerDNI)

	filter, err := toFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	sales, err := s.ListSales(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: found %d sales", len(sales))
	return models.FromDomainSales(sales), nil
}

// ListSales получает domain модели продаж (для манифеста)
func (s *Service) ListSales(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSales: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSales - repository error: %v", ErrInternal, err)
	}
	return sales, nil
}

func toFilter(req *models.ListSalesRequest) (domain.SalesFilter, error) {
	filter := domain.SalesFilter{
		RouteID:      req.RouteID,
		DriverID:     req.DriverID,
		PassengerDNI: req.PassengerDNI,
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return filter, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		filter.TravelDate = &date
	}

	if req.Schedule != nil {
		if _, err := time.Parse(domain.TimeFormat, *req.Schedule); err != nil {
			return filter, fmt.Errorf("%w: schedule must be HH:MM", ErrInvalidInput)
		}
		filter.ScheduleTime = req.Schedule
	}

	if req.Status != nil {
		status := domain.SaleStatus(*req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	if req.DriverName != nil {
		if name := strings.TrimSpace(*req.DriverName); name != "" {
			filter.DriverName = &name
		}
	}

	return filter, nil
}
