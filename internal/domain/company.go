package domain

import "time"

// CompanyInfo printed on tickets, labels and messages
type CompanyInfo struct {
	Name         string
	BusinessName *string
	RUC          string
	Address      string
	Phone        string
	Email        *string
	Website      *string
	UpdatedAt    time.Time
}

// IsComplete returns true if every field required on printed documents is set
func (c *CompanyInfo) IsComplete() bool {
	return c.Name != "" && c.RUC != "" && c.Address != "" && c.Phone != ""
}

// Merge fills empty fields of c from defaults
func (c *CompanyInfo) Merge(defaults CompanyInfo) {
	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.RUC == "" {
		c.RUC = defaults.RUC
	}
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.Phone == "" {
		c.Phone = defaults.Phone
	}
	if c.BusinessName == nil {
		c.BusinessName = defaults.BusinessName
	}
	if c.Email == nil {
		c.Email = defaults.Email
	}
	if c.Website == nil {
		c.Website = defaults.Website
	}
}
