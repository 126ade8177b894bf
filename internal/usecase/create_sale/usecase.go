package create_sale

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	driverRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/driver"
	routeRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/route"
	saleRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/sale"
	"github.com/m04kA/WJL-TicketService/pkg/txmanager"
)

// UseCase use case продажи билета
type UseCase struct {
	saleRepo     SaleRepository
	routeRepo    RouteRepository
	driverRepo   DriverRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	newID        func() string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	saleRepo SaleRepository,
	routeRepo RouteRepository,
	driverRepo DriverRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	uc := &UseCase{
		saleRepo:     saleRepo,
		routeRepo:    routeRepo,
		driverRepo:   driverRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
	uc.newID = func() string { return generateSaleID(uc.timeProvider.Now()) }
	return uc
}

// Execute выполняет use case продажи билета.
// Проверка места и вставка выполняются в сериализуемой транзакции; окончательный
// арбитр гонки - частичный уникальный индекс. Инвентарь сессии обновляется
// только после фиксации транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSale: route=%d, date=%s, schedule=%s, seat=%d, dni=%s",
		req.RouteID, req.TravelDate.Format(domain.DateFormat), req.ScheduleTime, req.SeatNumber, req.PassengerDNI)

	// 1. Валидация входных данных (включая место водителя)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSale: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем маршрут (цена по умолчанию)
	route, err := uc.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			uc.logger.Warn("CreateSale: route id=%d not found", req.RouteID)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("CreateSale: failed to get route id=%d: %v", req.RouteID, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	// 3. Получаем водителя для денормализации имени
	driverName := domain.DefaultDriverName
	driver, err := uc.driverRepo.GetByID(ctx, req.DriverID)
	switch {
	case err == nil:
		driverName = driver.Name
	case errors.Is(err, driverRepo.ErrDriverNotFound):
		uc.logger.Warn("CreateSale: driver id=%d not found, storing placeholder name", req.DriverID)
	default:
		uc.logger.Error("CreateSale: failed to get driver id=%d: %v", req.DriverID, err)
		return nil, fmt.Errorf("%w: failed to get driver: %v", ErrInternal, err)
	}

	// 4. Собираем продажу
	sale := &domain.Sale{
		ID:             uc.newID(),
		PassengerName:  strings.TrimSpace(req.PassengerName),
		PassengerDNI:   req.PassengerDNI,
		PassengerPhone: strings.TrimSpace(req.PassengerPhone),
		FromCity:       strings.TrimSpace(req.FromCity),
		ToCity:         strings.TrimSpace(req.ToCity),
		DriverID:       req.DriverID,
		DriverName:     driverName,
		RouteID:        req.RouteID,
		SeatNumber:     req.SeatNumber,
		Price:          route.Price,
		Total:          route.Price,
		TravelDate:     domain.DateOnly(req.TravelDate),
		ScheduleTime:   req.ScheduleTime,
		Status:         domain.SaleStatusPaid,
	}
	if req.Total != nil {
		sale.Total = *req.Total
	}
	if req.Status != nil {
		sale.Status = *req.Status
	}

	travelDate := sale.TravelDate.Format(domain.DateFormat)
	var result *domain.Sale

	// 5. Проверка конфликта и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Ищем активную продажу на этом месте (FOR UPDATE); отменённая место не занимает
		if sale.IsActive() {
			taken, err := uc.saleRepo.IsSeatTaken(txCtx, sale.RouteID, travelDate, sale.ScheduleTime, sale.SeatNumber, "")
			if err != nil {
				uc.logger.Error("CreateSale: failed to check seat: %v", err)
				return fmt.Errorf("%w: failed to check seat: %w", ErrInternal, err)
			}
			if taken {
				return ErrSeatConflict
			}
		}

		// 5.2. Сохраняем продажу
		created, err := uc.saleRepo.Create(txCtx, sale)
		if err != nil {
			if errors.Is(err, saleRepo.ErrSeatTaken) {
				return ErrSeatConflict
			}
			uc.logger.Error("CreateSale: failed to create sale: %v", err)
			return fmt.Errorf("%w: failed to create sale: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Проигравшая конкурентная транзакция - тот же конфликт места
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			err = ErrSeatConflict
		}
		if errors.Is(err, ErrSeatConflict) {
			uc.metrics.IncSeatConflict()
			uc.logger.Warn("CreateSale: seat %s already sold for trip %s", sale.SeatLabel(), sale.TripKey())
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateSale: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Хранилище подтвердило запись - обновляем инвентарь сессии
	if req.Inventory != nil && result.IsActive() {
		req.Inventory.Book(result)
	}

	uc.metrics.IncSaleCreated()
	uc.publisher.SaleCreated(ctx, result)
	uc.logger.Info("CreateSale: successfully created sale id=%s, seat=%s", result.ID, result.SeatLabel())

	return &Response{Sale: result}, nil
}
