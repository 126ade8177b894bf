package routes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	routeRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/route"
	"github.com/m04kA/WJL-TicketService/internal/service/routes/models"
)

// Service сервис для работы с маршрутами
type Service struct {
	routeRepo RouteRepository
	sales     UsageCounter
	parcels   UsageCounter
	logger    Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(routeRepo RouteRepository, sales UsageCounter, parcels UsageCounter, logger Logger) *Service {
	return &Service{
		routeRepo: routeRepo,
		sales:     sales,
		parcels:   parcels,
		logger:    logger,
	}
}

// Create создает маршрут; текстовые поля обрезаются
func (s *Service) Create(ctx context.Context, req *models.CreateRouteRequest) (*models.RouteResponse, error) {
	s.logger.Info("Create: creating route %s -> %s at %s", req.Origin, req.Destination, req.Schedule)

	route := &domain.Route{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		Price:       req.Price,
		Schedule:    strings.TrimSpace(req.Schedule),
		ArrivalTime: trimOptional(req.ArrivalTime),
		DistanceKm:  req.DistanceKm,
		Status:      domain.RouteStatusActive,
	}
	if req.Status != nil {
		route.Status = domain.RouteStatus(*req.Status)
	}

	if err := validateRoute(route); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.routeRepo.Create(ctx, route)
	if err != nil {
		if errors.Is(err, routeRepo.ErrDuplicateRoute) {
			s.logger.Warn("Create: route %s at %s already exists", route.Name(), route.Schedule)
			return nil, ErrDuplicateRoute
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created route id=%d", created.ID)
	return models.FromDomainRoute(created), nil
}

// GetByID получает маршрут по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RouteResponse, error) {
	route, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoute(route), nil
}

// List получает маршруты, опционально фильтруя по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.RouteListResponse, error) {
	s.logger.Info("List: fetching routes, status=%v", status)

	var domainStatus *domain.RouteStatus
	if status != nil {
		st := domain.RouteStatus(*status)
		if st != domain.RouteStatusActive && st != domain.RouteStatusInactive {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	routes, err := s.routeRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoutes(routes), nil
}

// Update изменяет переданные поля маршрута
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRouteRequest) (*models.RouteResponse, error) {
	s.logger.Info("Update: updating route id=%d", id)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	route, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Origin != nil {
		route.Origin = strings.TrimSpace(*req.Origin)
	}
	if req.Destination != nil {
		route.Destination = strings.TrimSpace(*req.Destination)
	}
	if req.Price != nil {
		route.Price = *req.Price
	}
	if req.Schedule != nil {
		route.Schedule = strings.TrimSpace(*req.Schedule)
	}
	if req.ArrivalTime != nil {
		route.ArrivalTime = trimOptional(req.ArrivalTime)
	}
	if req.DistanceKm != nil {
		route.DistanceKm = req.DistanceKm
	}
	if req.Status != nil {
		route.Status = domain.RouteStatus(*req.Status)
	}

	if err := validateRoute(route); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.routeRepo.Update(ctx, route); err != nil {
		switch {
		case errors.Is(err, routeRepo.ErrRouteNotFound):
			return nil, ErrRouteNotFound
		case errors.Is(err, routeRepo.ErrDuplicateRoute):
			return nil, ErrDuplicateRoute
		}
		s.logger.Error("Update: repository error for route id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated route id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет маршрут без продаж и посылок
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting route id=%d", id)

	if _, err := s.get(ctx, "Delete", id); err != nil {
		return err
	}

	for name, counter := range map[string]UsageCounter{"sales": s.sales, "packages": s.parcels} {
		count, err := counter.CountByRoute(ctx, id)
		if err != nil {
			s.logger.Error("Delete: failed to count %s of route id=%d: %v", name, id, err)
			return fmt.Errorf("%w: Delete - count %s: %v", ErrInternal, name, err)
		}
		if count > 0 {
			s.logger.Warn("Delete: route id=%d has %d %s", id, count, name)
			return ErrRouteInUse
		}
	}

	if err := s.routeRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, routeRepo.ErrRouteNotFound):
			return ErrRouteNotFound
		case errors.Is(err, routeRepo.ErrRouteInUse):
			return ErrRouteInUse
		}
		s.logger.Error("Delete: repository error for route id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted route id=%d", id)
	return nil
}

func (s *Service) get(ctx context.Context, method string, id int64) (*domain.Route, error) {
	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			s.logger.Warn("%s: route id=%d not found", method, id)
			return nil, ErrRouteNotFound
		}
		s.logger.Error("%s: repository error for route id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return route, nil
}

func validateRoute(r *domain.Route) error {
	if r.Origin == "" || r.Destination == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidInput)
	}
	if r.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if r.Schedule == "" {
		return fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeFormat, r.Schedule); err != nil {
		return fmt.Errorf("%w: schedule must be HH:MM", ErrInvalidInput)
	}
	if r.DistanceKm != nil && *r.DistanceKm < 0 {
		return fmt.Errorf("%w: distanceKm must not be negative", ErrInvalidInput)
	}
	if r.Status != domain.RouteStatusActive && r.Status != domain.RouteStatusInactive {
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	return nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
