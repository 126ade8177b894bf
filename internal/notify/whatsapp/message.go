package whatsapp

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

const noPhone = "No registrado"

// Company реквизиты, подставляемые в сообщения
type Company struct {
	Name  string
	Phone string
}

// TicketMessage текст билета для отправки пассажиру
func TicketMessage(sale *domain.Sale, driver *domain.Driver, company Company, issuedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎫 *BOLETA DE VIAJE - %s*\n\n", company.Name)

	b.WriteString("📋 *INFORMACIÓN DEL BOLETO*\n")
	fmt.Fprintf(&b, "• N° Boleta: *%s*\n", sale.ID)
	fmt.Fprintf(&b, "• Fecha de emisión: %s\n", issuedAt.Format("02/01/2006"))
	fmt.Fprintf(&b, "• Hora de emisión: %s\n\n", issuedAt.Format("15:04"))

	b.WriteString("👤 *DATOS DEL PASAJERO*\n")
	fmt.Fprintf(&b, "• Nombre: *%s*\n", sale.PassengerName)
	fmt.Fprintf(&b, "• DNI: %s\n", sale.PassengerDNI)
	fmt.Fprintf(&b, "• Teléfono: %s\n\n", orDefault(sale.PassengerPhone, noPhone))

	b.WriteString("🚌 *DETALLES DEL VIAJE*\n")
	fmt.Fprintf(&b, "• Ruta: *%s → %s*\n", sale.FromCity, sale.ToCity)
	fmt.Fprintf(&b, "• Fecha de viaje: *%s*\n", sale.TravelDate.Format("02/01/2006"))
	fmt.Fprintf(&b, "• Horario de salida: *%s*\n", sale.ScheduleTime)
	fmt.Fprintf(&b, "• Asiento asignado: *%s*\n\n", sale.SeatLabel())

	b.WriteString("👨‍✈️ *CONDUCTOR ASIGNADO*\n")
	fmt.Fprintf(&b, "• Nombre: %s\n", sale.DriverName)
	if driver != nil {
		fmt.Fprintf(&b, "• Licencia: %s\n", driver.License)
		fmt.Fprintf(&b, "• Contacto: %s\n", driver.Phone)
	}
	b.WriteString("\n")

	b.WriteString("💰 *INFORMACIÓN DE PAGO*\n")
	fmt.Fprintf(&b, "• Total pagado: *%s*\n", Money(sale.Total))
	fmt.Fprintf(&b, "• Estado: %s\n\n", sale.Status.Label())

	b.WriteString("📍 *INSTRUCCIONES IMPORTANTES*\n")
	b.WriteString("• Llegue 15 minutos antes de la hora de salida\n")
	b.WriteString("• Presente su DNI al abordar\n")
	b.WriteString("• Conserve este mensaje como comprobante\n")
	fmt.Fprintf(&b, "• Para consultas: %s\n\n", company.Phone)

	fmt.Fprintf(&b, "¡Gracias por elegir %s! 🚐", company.Name)

	return b.String()
}

// PackageMessage текст посылки для отправителя
func PackageMessage(parcel *domain.Parcel, company Company) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📦 *ENCOMIENDA - %s*\n\n", company.Name)

	b.WriteString("📋 *INFORMACIÓN DE LA ENCOMIENDA*\n")
	fmt.Fprintf(&b, "• Código: *%s*\n", parcel.ID)
	fmt.Fprintf(&b, "• Seguimiento: *%s*\n", parcel.TrackingCode)
	fmt.Fprintf(&b, "• Fecha de envío: %s\n\n", parcel.TravelDate.Format("02/01/2006"))

	b.WriteString("📤 *REMITENTE*\n")
	fmt.Fprintf(&b, "• Nombre: *%s*\n", parcel.SenderName)
	fmt.Fprintf(&b, "• DNI: %s\n", parcel.SenderDNI)
	fmt.Fprintf(&b, "• Teléfono: %s\n\n", orDefault(deref(parcel.SenderPhone), noPhone))

	b.WriteString("📥 *DESTINATARIO*\n")
	fmt.Fprintf(&b, "• Nombre: *%s*\n", parcel.RecipientName)
	fmt.Fprintf(&b, "• DNI: %s\n", parcel.RecipientDNI)
	fmt.Fprintf(&b, "• Teléfono: %s\n\n", orDefault(deref(parcel.RecipientPhone), noPhone))

	b.WriteString("🚌 *DETALLES DEL ENVÍO*\n")
	fmt.Fprintf(&b, "• Ruta: *%s → %s*\n", parcel.FromCity, parcel.ToCity)
	fmt.Fprintf(&b, "• Descripción: %s\n", parcel.Description)
	fmt.Fprintf(&b, "• Peso: %.2f kg\n", parcel.Weight)
	fmt.Fprintf(&b, "• Valor declarado: %s\n\n", Money(parcel.DeclaredValue))

	b.WriteString("💰 *INFORMACIÓN DE PAGO*\n")
	fmt.Fprintf(&b, "• Total: *%s*\n", Money(parcel.Total))
	fmt.Fprintf(&b, "• Estado: %s %s\n\n", statusIcon(parcel.Status), parcel.Status.Label())

	b.WriteString("📍 *INSTRUCCIONES*\n")
	b.WriteString("• Conserve este código para el seguimiento\n")
	b.WriteString("• El destinatario debe presentar DNI para recoger\n")
	fmt.Fprintf(&b, "• Para consultas: %s\n\n", company.Phone)

	fmt.Fprintf(&b, "¡Gracias por confiar en %s! 📦", company.Name)

	return b.String()
}

// Money форматирует сумму в солях: S/ 40.00
func Money(amount float64) string {
	return fmt.Sprintf("S/ %.2f", amount)
}

func statusIcon(status domain.ParcelStatus) string {
	switch status {
	case domain.ParcelStatusPending:
		return "⏳"
	case domain.ParcelStatusPaid:
		return "✅"
	case domain.ParcelStatusInTransit:
		return "🚛"
	default:
		return "📦"
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
