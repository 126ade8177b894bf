package delete_sale

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	saleRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/sale"
)

// UseCase use case удаления продажи
type UseCase struct {
	saleRepo     SaleRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	saleRepo SaleRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		saleRepo:     saleRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute удаляет продажу. Подтверждённая продажа рейса с датой раньше
// сегодняшней не удаляется. Место освобождается в инвентаре сессии только
// после того, как хранилище подтвердило удаление.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteSale: id=%s", req.ID)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.ID) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var deleted *domain.Sale

	// 3. Читаем продажу с блокировкой и удаляем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем продажу (FOR UPDATE)
		sale, err := uc.saleRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, saleRepo.ErrSaleNotFound) {
				return ErrSaleNotFound
			}
			uc.logger.Error("DeleteSale: failed to get sale id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get sale: %w", ErrInternal, err)
		}

		// 3.2. Подтверждённые продажи прошедших рейсов заблокированы
		if sale.IsPastTripLocked(now) {
			return ErrPastTripLocked
		}

		// 3.3. Удаляем
		if err := uc.saleRepo.Delete(txCtx, sale.ID); err != nil {
			if errors.Is(err, saleRepo.ErrSaleNotFound) {
				return ErrSaleNotFound
			}
			uc.logger.Error("DeleteSale: failed to delete sale id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to delete sale: %w", ErrInternal, err)
		}

		deleted = sale
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSaleNotFound):
			uc.logger.Warn("DeleteSale: sale id=%s not found", req.ID)
		case errors.Is(err, ErrPastTripLocked):
			uc.logger.Warn("DeleteSale: sale id=%s belongs to a past confirmed trip", req.ID)
		case errors.Is(err, ErrInternal):
		default:
			uc.logger.Error("DeleteSale: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 4. Хранилище подтвердило удаление - освобождаем место в инвентаре сессии
	if req.Inventory != nil {
		req.Inventory.Release(deleted)
	}

	uc.metrics.IncSaleDeleted()
	uc.publisher.SaleDeleted(ctx, deleted)
	uc.logger.Info("DeleteSale: successfully deleted sale id=%s, seat=%s, trip=%s",
		deleted.ID, deleted.SeatLabel(), deleted.TripKey())

	return &Response{Sale: deleted}, nil
}
