package get_seat_map

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	routeRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/route"
)

// UseCase use case для получения схемы мест рейса
type UseCase struct {
	saleRepo  SaleRepository
	routeRepo RouteRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(saleRepo SaleRepository, routeRepo RouteRepository, logger Logger) *UseCase {
	return &UseCase{
		saleRepo:  saleRepo,
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// Execute строит схему мест рейса по инвентарю сессии.
// Инвентарь загружается из хранилища при первом обращении, дальше
// схема строится локально и может отставать от действий других сессий.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSeatMap: route=%d, date=%s, schedule=%s",
		req.RouteID, req.Date.Format(domain.DateFormat), req.Schedule)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSeatMap: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем маршрут
	route, err := uc.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			uc.logger.Warn("GetSeatMap: route id=%d not found", req.RouteID)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("GetSeatMap: failed to get route id=%d: %v", req.RouteID, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	// 3. Первое обращение сессии - загружаем инвентарь
	if !req.Inventory.Loaded() {
		if _, err := uc.load(ctx, req.Inventory, nil); err != nil {
			return nil, err
		}
	}

	// 4. Строим схему мест
	seatMap := req.Inventory.SeatMap(
		req.Date.Format(domain.DateFormat),
		strconv.FormatInt(req.RouteID, 10),
		req.Schedule,
	)

	uc.logger.Info("GetSeatMap: trip %s has %d available seats",
		domain.TripKey(seatMap.Date, seatMap.RouteID, seatMap.Schedule), seatMap.AvailableSeats)

	return &Response{Route: route, SeatMap: seatMap}, nil
}

// Reload перестраивает инвентарь сессии из хранилища.
// С датой перечитываются только рейсы этой даты, остальные остаются как были.
func (uc *UseCase) Reload(ctx context.Context, req *ReloadRequest) (*ReloadResponse, error) {
	if req.Inventory == nil {
		return nil, fmt.Errorf("%w: session inventory is required", ErrInvalidInput)
	}
	return uc.load(ctx, req.Inventory, req.Date)
}

func (uc *UseCase) load(ctx context.Context, target SessionInventory, date *time.Time) (*ReloadResponse, error) {
	filter := domain.SalesFilter{ActiveOnly: true}
	var day time.Time
	if date != nil {
		day = domain.DateOnly(*date)
		filter.TravelDate = &day
	}

	sales, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetSeatMap: failed to load sales: %v", err)
		return nil, fmt.Errorf("%w: failed to load sales: %v", ErrInternal, err)
	}

	inv := domain.BuildInventory(sales)
	if date != nil {
		target.ReplaceDate(day.Format(domain.DateFormat), inv)
		uc.logger.Info("GetSeatMap: trips of %s rebuilt from %d sales, %d trips",
			day.Format(domain.DateFormat), len(sales), len(inv))
		return &ReloadResponse{Sales: len(sales), Trips: len(inv)}, nil
	}
	target.ReplaceInventory(inv)

	uc.logger.Info("GetSeatMap: inventory rebuilt from %d sales, %d trips", len(sales), len(inv))

	return &ReloadResponse{Sales: len(sales), Trips: len(inv)}, nil
}
