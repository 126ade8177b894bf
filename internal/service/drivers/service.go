package drivers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	driverRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/driver"
	"github.com/m04kA/WJL-TicketService/internal/service/drivers/models"
)

// Service сервис для работы с водителями
type Service struct {
	driverRepo DriverRepository
	sales      SaleCounter
	logger     Logger
}

// NewService создает новый экземпляр сервиса водителей
func NewService(driverRepo DriverRepository, sales SaleCounter, logger Logger) *Service {
	return &Service{
		driverRepo: driverRepo,
		sales:      sales,
		logger:     logger,
	}
}

// Create регистрирует водителя. Статус по умолчанию - active.
func (s *Service) Create(ctx context.Context, req *models.CreateDriverRequest) (*models.DriverResponse, error) {
	s.logger.Info("Create: registering driver license=%s", req.License)

	driver := &domain.Driver{
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		Email:           trimOptional(req.Email),
		License:         strings.TrimSpace(req.License),
		ExperienceYears: req.ExperienceYears,
		Status:          domain.DriverStatusActive,
	}
	if req.Status != nil {
		driver.Status = domain.DriverStatus(*req.Status)
	}

	if err := validateDriver(driver); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.driverRepo.Create(ctx, driver)
	if err != nil {
		if errors.Is(err, driverRepo.ErrDuplicateLicense) {
			s.logger.Warn("Create: license %s already registered", driver.License)
			return nil, ErrDuplicateLicense
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created driver id=%d", created.ID)
	return models.FromDomainDriver(created), nil
}

// GetByID получает водителя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DriverResponse, error) {
	driver, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDriver(driver), nil
}

// List получает водителей, опционально фильтруя по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.DriverListResponse, error) {
	s.logger.Info("List: fetching drivers, status=%v", status)

	var domainStatus *domain.DriverStatus
	if status != nil {
		st := domain.DriverStatus(*status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	drivers, err := s.driverRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDrivers(drivers), nil
}

// Update изменяет переданные поля водителя
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateDriverRequest) (*models.DriverResponse, error) {
	s.logger.Info("Update: updating driver id=%d", id)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// 1. Получаем текущее состояние
	driver, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения
	if req.Name != nil {
		driver.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		driver.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		driver.Email = trimOptional(req.Email)
	}
	if req.License != nil {
		driver.License = strings.TrimSpace(*req.License)
	}
	if req.ExperienceYears != nil {
		driver.ExperienceYears = *req.ExperienceYears
	}
	if req.Status != nil {
		driver.Status = domain.DriverStatus(*req.Status)
	}

	if err := validateDriver(driver); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	if err := s.driverRepo.Update(ctx, driver); err != nil {
		switch {
		case errors.Is(err, driverRepo.ErrDriverNotFound):
			return nil, ErrDriverNotFound
		case errors.Is(err, driverRepo.ErrDuplicateLicense):
			s.logger.Warn("Update: license %s already registered", driver.License)
			return nil, ErrDuplicateLicense
		}
		s.logger.Error("Update: repository error for driver id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated driver id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет водителя, если на него не ссылается ни одна продажа
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting driver id=%d", id)

	if _, err := s.get(ctx, "Delete", id); err != nil {
		return err
	}

	count, err := s.sales.CountByDriver(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count sales of driver id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - count sales: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: driver id=%d has %d sales", id, count)
		return ErrDriverInUse
	}

	if err := s.driverRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, driverRepo.ErrDriverNotFound):
			return ErrDriverNotFound
		case errors.Is(err, driverRepo.ErrDriverInUse):
			return ErrDriverInUse
		}
		s.logger.Error("Delete: repository error for driver id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted driver id=%d", id)
	return nil
}

func (s *Service) get(ctx context.Context, method string, id int64) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			s.logger.Warn("%s: driver id=%d not found", method, id)
			return nil, ErrDriverNotFound
		}
		s.logger.Error("%s: repository error for driver id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return driver, nil
}

func validateDriver(d *domain.Driver) error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(d.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if d.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if d.License == "" {
		return fmt.Errorf("%w: license is required", ErrInvalidInput)
	}
	if d.ExperienceYears < 0 {
		return fmt.Errorf("%w: experienceYears must not be negative", ErrInvalidInput)
	}
	if !d.Status.IsValid() {
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
