package update_sale

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

// UseCase use case изменения продажи
type UseCase struct {
	saleRepo   SaleRepository
	routeRepo  RouteRepository
	driverRepo DriverRepository
	txManager  TransactionManager
	publisher  EventPublisher
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	saleRepo SaleRepository,
	routeRepo RouteRepository,
	driverRepo DriverRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		saleRepo:   saleRepo,
		routeRepo:  routeRepo,
		driverRepo: driverRepo,
		txManager:  txManager,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute изменяет продажу. Если меняется рейс, место или продажа
// возвращается из отменённых, проверка конфликта повторяется без учёта
// самой продажи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSale: id=%s", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSale: validation failed: %v", err)
		return nil, err
	}

	// 2. Новый маршрут должен существовать
	if req.RouteID != nil {
		if _, err := uc.routeRepo.GetByID(ctx, *req.RouteID); err != nil {
			if errors.Is(err, routeRepo.ErrRouteNotFound) {
				uc.logger.Warn("UpdateSale: route id=%d not found", *req.RouteID)
				return nil, ErrRouteNotFound
			}
			uc.logger.Error("UpdateSale: failed to get route id=%d: %v", *req.RouteID, err)
			return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
		}
	}

	// 3. Новый водитель - пересчитываем денормализованное имя
	var driverName string
	if req.DriverID != nil {
		driverName = domain.DefaultDriverName
		driver, err := uc.driverRepo.GetByID(ctx, *req.DriverID)
		switch {
		case err == nil:
			driverName = driver.Name
		case errors.Is(err, driverRepo.ErrDriverNotFound):
			uc.logger.Warn("UpdateSale: driver id=%d not found, storing placeholder name", *req.DriverID)
		default:
			uc.logger.Error("UpdateSale: failed to get driver id=%d: %v", *req.DriverID, err)
			return nil, fmt.Errorf("%w: failed to get driver: %v", ErrInternal, err)
		}
	}

	var before, after *domain.Sale

	// 4. Чтение, проверка конфликта и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем продажу (FOR UPDATE)
		current, err := uc.saleRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, saleRepo.ErrSaleNotFound) {
				return ErrSaleNotFound
			}
			uc.logger.Error("UpdateSale: failed to get sale id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get sale: %w", ErrInternal, err)
		}

		// 4.2. Применяем изменения к копии
		updated := *current
		applyChanges(&updated, req, driverName)

		// 4.3. Место проверяется заново только если оно могло смениться
		if updated.IsActive() && seatChanged(current, &updated) {
			taken, err := uc.saleRepo.IsSeatTaken(txCtx, updated.RouteID,
				updated.TravelDate.Format(domain.DateFormat), updated.ScheduleTime, updated.SeatNumber, updated.ID)
			if err != nil {
				uc.logger.Error("UpdateSale: failed to check seat: %v", err)
				return fmt.Errorf("%w: failed to check seat: %w", ErrInternal, err)
			}
			if taken {
				return ErrSeatConflict
			}
		}

		// 4.4. Сохраняем
		if err := uc.saleRepo.Update(txCtx, &updated); err != nil {
			switch {
			case errors.Is(err, saleRepo.ErrSeatTaken):
				return ErrSeatConflict
			case errors.Is(err, saleRepo.ErrSaleNotFound):
				return ErrSaleNotFound
			}
			uc.logger.Error("UpdateSale: failed to update sale id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update sale: %w", ErrInternal, err)
		}

		before, after = current, &updated
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			err = ErrSeatConflict
		}
		switch {
		case errors.Is(err, ErrSeatConflict):
			uc.metrics.IncSeatConflict()
			uc.logger.Warn("UpdateSale: target seat of sale id=%s is already sold", req.ID)
		case errors.Is(err, ErrSaleNotFound):
			uc.logger.Warn("UpdateSale: sale id=%s not found", req.ID)
		case errors.Is(err, ErrInternal):
		default:
			uc.logger.Error("UpdateSale: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 5. Хранилище подтвердило запись - переносим место в инвентаре сессии
	if req.Inventory != nil {
		req.Inventory.Release(before)
		if after.IsActive() {
			req.Inventory.Book(after)
		}
	}

	uc.publisher.SaleUpdated(ctx, after)
	uc.logger.Info("UpdateSale: successfully updated sale id=%s, seat=%s, trip=%s",
		after.ID, after.SeatLabel(), after.TripKey())

	return &Response{Sale: after}, nil
}

func applyChanges(sale *domain.Sale, req *Request, driverName string) {
	if req.PassengerName != nil {
		sale.PassengerName = strings.TrimSpace(*req.PassengerName)
	}
	if req.PassengerDNI != nil {
		sale.PassengerDNI = *req.PassengerDNI
	}
	if req.PassengerPhone != nil {
		sale.PassengerPhone = strings.TrimSpace(*req.PassengerPhone)
	}
	if req.FromCity != nil {
		sale.FromCity = strings.TrimSpace(*req.FromCity)
	}
	if req.ToCity != nil {
		sale.ToCity = strings.TrimSpace(*req.ToCity)
	}
	if req.DriverID != nil {
		sale.DriverID = *req.DriverID
		sale.DriverName = driverName
	}
	if req.RouteID != nil {
		sale.RouteID = *req.RouteID
	}
	if req.SeatNumber != nil {
		sale.SeatNumber = *req.SeatNumber
	}
	if req.TravelDate != nil {
		sale.TravelDate = domain.DateOnly(*req.TravelDate)
	}
	if req.ScheduleTime != nil {
		sale.ScheduleTime = *req.ScheduleTime
	}
	if req.Total != nil {
		sale.Total = *req.Total
	}
	if req.Status != nil {
		sale.Status = *req.Status
	}
}

// seatChanged true, если продажа претендует на другое место, чем до изменения
func seatChanged(before, after *domain.Sale) bool {
	if !before.IsActive() {
		return true
	}
	return before.TripKey() != after.TripKey() || before.SeatNumber != after.SeatNumber
}
