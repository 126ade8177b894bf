package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	companyRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/company"
	"github.com/m04kA/WJL-TicketService/internal/service/company/models"
)

// Service сервис реквизитов компании
type Service struct {
	companyRepo CompanyRepository
	defaults    domain.CompanyInfo
	logger      Logger
}

// NewService создает сервис; defaults - реквизиты из конфигурации,
// используемые пока таблица пуста
func NewService(companyRepo CompanyRepository, defaults domain.CompanyInfo, logger Logger) *Service {
	return &Service{
		companyRepo: companyRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

// Get возвращает реквизиты компании
func (s *Service) Get(ctx context.Context) (*models.CompanyResponse, error) {
	info, err := s.GetInfo(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCompany(info), nil
}

// GetInfo возвращает domain модель реквизитов (для печати и сообщений).
// Незаполненные поля берутся из конфигурации.
func (s *Service) GetInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	info, err := s.companyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Info("GetInfo: company info not stored yet, using configured defaults")
			defaults := s.defaults
			return &defaults, nil
		}
		s.logger.Error("GetInfo: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetInfo - repository error: %v", ErrInternal, err)
	}

	info.Merge(s.defaults)
	return info, nil
}

// Update изменяет переданные поля реквизитов
func (s *Service) Update(ctx context.Context, req *models.UpdateCompanyRequest) (*models.CompanyResponse, error) {
	s.logger.Info("Update: updating company info")

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// 1. Текущее состояние (или значения по умолчанию)
	info, err := s.GetInfo(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения
	for _, field := range []struct {
		dst *string
		src *string
	}{
		{&info.Name, req.Name},
		{&info.RUC, req.RUC},
		{&info.Address, req.Address},
		{&info.Phone, req.Phone},
	} {
		if field.src != nil {
			*field.dst = strings.TrimSpace(*field.src)
		}
	}
	if req.BusinessName != nil {
		info.BusinessName = trimOptional(req.BusinessName)
	}
	if req.Email != nil {
		info.Email = trimOptional(req.Email)
	}
	if req.Website != nil {
		info.Website = trimOptional(req.Website)
	}

	// 3. Обязательные для печати поля не могут стать пустыми
	if !info.IsComplete() {
		s.logger.Warn("Update: name, ruc, address and phone are required")
		return nil, fmt.Errorf("%w: name, ruc, address and phone are required", ErrInvalidInput)
	}

	// 4. Сохраняем
	saved, err := s.companyRepo.Upsert(ctx, info)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated company info")
	return models.FromDomainCompany(saved), nil
}

func trimOptional(v *string) *string {
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
