// Package whatsapp готовит ссылки wa.me с текстом билета или посылки
package whatsapp

import (
	"regexp"
	"strings"
)

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	peruvianMobile  = regexp.MustCompile(`^\+519\d{8}$`)
	nonDigits       = regexp.MustCompile(`\D`)
)

// NormalizePhone приводит перуанский номер к виду +51XXXXXXXXX.
// Номер, который не удалось распознать, возвращается без изменений.
func NormalizePhone(phone string) string {
	cleaned := phoneSeparators.Replace(phone)

	switch {
	case strings.HasPrefix(cleaned, "+51"):
		return cleaned
	case strings.HasPrefix(cleaned, "51") && len(cleaned) == 11:
		return "+" + cleaned
	case len(cleaned) == 9 && strings.HasPrefix(cleaned, "9"):
		return "+51" + cleaned
	default:
		return phone
	}
}

// IsValidPeruvianPhone true для мобильного номера Перу (+51 9XXXXXXXX)
func IsValidPeruvianPhone(phone string) bool {
	return peruvianMobile.MatchString(NormalizePhone(phone))
}

func digitsOnly(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}
