package whatsapp

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoPhone у получателя нет номера телефона
var ErrNoPhone = errors.New("whatsapp: recipient has no phone number")

// Link готовая ссылка на отправку сообщения
type Link struct {
	Phone   string `json:"phone"`
	Valid   bool   `json:"valid"` // номер распознан как мобильный Перу
	Message string `json:"message"`
	URL     string `json:"url"`
}

// NewLink нормализует номер и строит ссылку https://wa.me/<digits>?text=<message>
func NewLink(phone, message string) (*Link, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, ErrNoPhone
	}

	normalized := NormalizePhone(phone)
	// encodeURIComponent-совместимое экранирование: пробел как %20
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return &Link{
		Phone:   normalized,
		Valid:   IsValidPeruvianPhone(normalized),
		Message: message,
		URL:     "https://wa.me/" + digitsOnly(normalized) + "?text=" + text,
	}, nil
}
