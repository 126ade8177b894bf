package packages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	parcelRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/parcel"
	"github.com/m04kA/WJL-TicketService/internal/service/packages/models"
)

// Service сервис для работы с посылками
type Service struct {
	parcelRepo   ParcelRepository
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса посылок
func NewService(
	parcelRepo ParcelRepository,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		parcelRepo:   parcelRepo,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create регистрирует посылку с новым кодом отслеживания
func (s *Service) Create(ctx context.Context, req *models.CreatePackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("Create: registering package %s -> %s", req.FromCity, req.ToCity)

	now := s.timeProvider.Now()

	// 1. Собираем посылку со значениями по умолчанию
	parcel := &domain.Parcel{
		SenderName:     strings.TrimSpace(req.SenderName),
		SenderDNI:      strings.TrimSpace(req.SenderDNI),
		SenderPhone:    trimOptional(req.SenderPhone),
		RecipientName:  strings.TrimSpace(req.RecipientName),
		RecipientDNI:   strings.TrimSpace(req.RecipientDNI),
		RecipientPhone: trimOptional(req.RecipientPhone),
		FromCity:       strings.TrimSpace(req.FromCity),
		ToCity:         strings.TrimSpace(req.ToCity),
		RouteID:        req.RouteID,
		Description:    strings.TrimSpace(req.Description),
		Weight:         req.Weight,
		ShippingCost:   req.Total,
		Total:          req.Total,
		TravelDate:     domain.DateOnly(now),
		Status:         domain.ParcelStatusPending,
	}
	if req.DeclaredValue != nil {
		parcel.DeclaredValue = *req.DeclaredValue
	}
	if req.ShippingCost != nil {
		parcel.ShippingCost = *req.ShippingCost
	}
	if req.TravelDate != nil {
		date, err := parseDate(*req.TravelDate)
		if err != nil {
			return nil, err
		}
		parcel.TravelDate = date
	}
	if req.Status != nil {
		parcel.Status = domain.ParcelStatus(*req.Status)
	}

	// 2. Валидация
	if err := validateParcel(parcel); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Подбираем свободный код отслеживания
	code, err := s.freeTrackingCode(ctx, now)
	if err != nil {
		return nil, err
	}
	parcel.TrackingCode = code

	// 4. Сохраняем; при коллизии ID повторяем с новым
	created, err := s.insertWithFreeID(ctx, parcel, now)
	if err != nil {
		return nil, err
	}

	s.metrics.IncPackageCreated()
	s.publisher.PackageCreated(ctx, created)
	s.logger.Info("Create: successfully created package id=%s, tracking=%s", created.ID, created.TrackingCode)

	return models.FromDomainParcel(created), nil
}

// GetByID получает посылку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PackageResponse, error) {
	parcel, err := s.GetParcel(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainParcel(parcel), nil
}

// GetParcel получает domain модель посылки (для печати и сообщений)
func (s *Service) GetParcel(ctx context.Context, id string) (*domain.Parcel, error) {
	parcel, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, parcelRepo.ErrParcelNotFound) {
			s.logger.Warn("GetParcel: package id=%s not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetParcel: repository error for package id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetParcel - repository error: %v", ErrInternal, err)
	}
	return parcel, nil
}

// List получает посылки по фильтрам, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListPackagesRequest) (*models.PackageListResponse, error) {
	s.logger.Info("List: fetching packages, status=%v, tracking=%v", req.Status, req.TrackingCode)

	filter := domain.ParcelsFilter{
		TrackingCode: req.TrackingCode,
		SenderDNI:    req.SenderDNI,
		RecipientDNI: req.RecipientDNI,
	}
	if req.Status != nil {
		status := domain.ParcelStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	parcels, err := s.parcelRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainParcels(parcels), nil
}

// Update частично обновляет посылку
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("Update: updating package id=%s", id)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	parcel, err := s.GetParcel(ctx, id)
	if err != nil {
		return nil, err
	}
	previousStatus := parcel.Status

	if err := applyUpdate(parcel, req); err != nil {
		return nil, err
	}
	if err := validateParcel(parcel); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.save(ctx, "Update", parcel); err != nil {
		return nil, err
	}

	if parcel.Status != previousStatus {
		s.publisher.PackageStatusChanged(ctx, parcel)
	}
	s.logger.Info("Update: successfully updated package id=%s", id)

	return s.GetByID(ctx, id)
}

// UpdateStatus меняет статус и/или код отслеживания
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.PackageResponse, error) {
	s.logger.Info("UpdateStatus: package id=%s, status=%v, tracking=%v", id, req.Status, req.TrackingCode)

	if req.Status == nil && req.TrackingCode == nil {
		return nil, fmt.Errorf("%w: status or trackingCode is required", ErrInvalidInput)
	}

	parcel, err := s.GetParcel(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if req.Status != nil {
		status := domain.ParcelStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: status must be one of pending, paid, in_transit, delivered", ErrInvalidInput)
		}
		statusChanged = status != parcel.Status
		parcel.Status = status
	}
	if req.TrackingCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.TrackingCode))
		if code == "" {
			return nil, fmt.Errorf("%w: trackingCode must not be empty", ErrInvalidInput)
		}
		parcel.TrackingCode = code
	}

	if err := s.save(ctx, "UpdateStatus", parcel); err != nil {
		return nil, err
	}

	if statusChanged {
		s.publisher.PackageStatusChanged(ctx, parcel)
	}
	s.logger.Info("UpdateStatus: package id=%s is now %s", id, parcel.Status)

	return s.GetByID(ctx, id)
}

// Delete удаляет посылку, если она не в пути
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting package id=%s", id)

	parcel, err := s.GetParcel(ctx, id)
	if err != nil {
		return err
	}

	if !parcel.CanBeDeleted() {
		s.logger.Warn("Delete: package id=%s is in transit", id)
		return ErrPackageInTransit
	}

	if err := s.parcelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, parcelRepo.ErrParcelNotFound) {
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for package id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted package id=%s", id)
	return nil
}

// freeTrackingCode генерирует код, повторяя при коллизии до MaxTrackingRetries раз.
// Если все попытки заняты, остаётся последний код и решает уникальный индекс.
func (s *Service) freeTrackingCode(ctx context.Context, now time.Time) (string, error) {
	code := generateTrackingCode(now)
	for attempt := 0; attempt < domain.MaxTrackingRetries; attempt++ {
		exists, err := s.parcelRepo.TrackingCodeExists(ctx, code)
		if err != nil {
			s.logger.Error("Create: failed to check tracking code: %v", err)
			return "", fmt.Errorf("%w: Create - check tracking code: %v", ErrInternal, err)
		}
		if !exists {
			return code, nil
		}
		code = generateTrackingCode(now)
	}
	s.logger.Warn("Create: tracking code retries exhausted, using %s", code)
	return code, nil
}

// insertWithFreeID вставляет посылку, подбирая новый ID при коллизии первичного ключа
func (s *Service) insertWithFreeID(ctx context.Context, parcel *domain.Parcel, now time.Time) (*domain.Parcel, error) {
	for attempt := 0; attempt < domain.MaxTrackingRetries; attempt++ {
		parcel.ID = generatePackageID(now, attempt)

		created, err := s.parcelRepo.Create(ctx, parcel)
		switch {
		case err == nil:
			return created, nil
		case errors.Is(err, parcelRepo.ErrDuplicateID):
			s.logger.Warn("Create: package id %s already taken, retrying", parcel.ID)
			continue
		case errors.Is(err, parcelRepo.ErrDuplicateTrackingCode):
			s.logger.Warn("Create: tracking code %s already taken", parcel.TrackingCode)
			return nil, ErrDuplicateTrackingCode
		default:
			s.logger.Error("Create: repository error: %v", err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}
	s.logger.Warn("Create: package id retries exhausted, last id %s", parcel.ID)
	return nil, ErrDuplicatePackageID
}

func (s *Service) save(ctx context.Context, method string, parcel *domain.Parcel) error {
	if err := s.parcelRepo.Update(ctx, parcel); err != nil {
		switch {
		case errors.Is(err, parcelRepo.ErrParcelNotFound):
			return ErrPackageNotFound
		case errors.Is(err, parcelRepo.ErrDuplicateTrackingCode):
			return ErrDuplicateTrackingCode
		}
		s.logger.Error("%s: repository error for package id=%s: %v", method, parcel.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return nil
}

func applyUpdate(p *domain.Parcel, req *models.UpdatePackageRequest) error {
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	setString(&p.SenderName, req.SenderName)
	setString(&p.SenderDNI, req.SenderDNI)
	setString(&p.RecipientName, req.RecipientName)
	setString(&p.RecipientDNI, req.RecipientDNI)
	setString(&p.FromCity, req.FromCity)
	setString(&p.ToCity, req.ToCity)
	setString(&p.Description, req.Description)

	if req.SenderPhone != nil {
		p.SenderPhone = trimOptional(req.SenderPhone)
	}
	if req.RecipientPhone != nil {
		p.RecipientPhone = trimOptional(req.RecipientPhone)
	}
	if req.RouteID != nil {
		p.RouteID = req.RouteID
	}
	if req.Weight != nil {
		p.Weight = *req.Weight
	}
	if req.DeclaredValue != nil {
		p.DeclaredValue = *req.DeclaredValue
	}
	if req.ShippingCost != nil {
		p.ShippingCost = *req.ShippingCost
	}
	if req.Total != nil {
		p.Total = *req.Total
	}
	if req.TravelDate != nil {
		date, err := parseDate(*req.TravelDate)
		if err != nil {
			return err
		}
		p.TravelDate = date
	}
	if req.Status != nil {
		p.Status = domain.ParcelStatus(*req.Status)
	}
	return nil
}

func validateParcel(p *domain.Parcel) error {
	if p.SenderName == "" || p.SenderDNI == "" {
		return fmt.Errorf("%w: sender name and dni are required", ErrInvalidInput)
	}
	if p.RecipientName == "" || p.RecipientDNI == "" {
		return fmt.Errorf("%w: recipient name and dni are required", ErrInvalidInput)
	}
	if p.FromCity == "" || p.ToCity == "" {
		return fmt.Errorf("%w: fromCity and toCity are required", ErrInvalidInput)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(p.Description) > domain.MaxDescriptionLen {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}
	if p.DeclaredValue < 0 || p.ShippingCost < 0 || p.Total < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidInput)
	}
	if p.RouteID != nil && *p.RouteID <= 0 {
		return fmt.Errorf("%w: routeId must be positive", ErrInvalidInput)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: travelDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	return date, nil
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
