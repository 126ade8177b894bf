package models

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// UpdateCompanyRequest запрос на изменение реквизитов
// Все поля опциональны - обновляются только переданные значения
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
	RUC          *string `json:"ruc,omitempty"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Website      *string `json:"website,omitempty"`
}

// IsEmpty true, если ни одно поле не передано
func (r *UpdateCompanyRequest) IsEmpty() bool {
	return r.Name == nil && r.BusinessName == nil && r.RUC == nil && r.Address == nil &&
		r.Phone == nil && r.Email == nil && r.Website == nil
}

// CompanyResponse реквизиты компании
type CompanyResponse struct {
	Name         string     `json:"name"`
	BusinessName *string    `json:"businessName,omitempty"`
	RUC          string     `json:"ruc"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	Email        *string    `json:"email,omitempty"`
	Website      *string    `json:"website,omitempty"`
	TotalSeats   int        `json:"totalSeats"`
	OperatorSeat int        `json:"operatorSeat"`
	Complete     bool       `json:"complete"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"` // nil - используются значения из конфигурации
}

// FromDomainCompany конвертирует domain модель в DTO
func FromDomainCompany(c *domain.CompanyInfo) *CompanyResponse {
	if c == nil {
		return nil
	}

	resp := &CompanyResponse{
		Name:         c.Name,
		BusinessName: c.BusinessName,
		RUC:          c.RUC,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		Website:      c.Website,
		TotalSeats:   domain.TotalSeats,
		OperatorSeat: domain.OperatorSeat,
		Complete:     c.IsComplete(),
	}
	if !c.UpdatedAt.IsZero() {
		updated := c.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
