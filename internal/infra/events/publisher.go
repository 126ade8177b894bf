package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Темы событий (относительно префикса)
const (
	SubjectSaleCreated    = "sales.created"
	SubjectSaleUpdated    = "sales.updated"
	SubjectSaleDeleted    = "sales.deleted"
	SubjectPackageCreated = "packages.created"
	SubjectPackageStatus  = "packages.status"
)

// Conn подмножество *nats.Conn, используемое публикатором
type Conn interface {
	Publish(subject string, data []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Publisher публикует доменные события в NATS. Ошибки публикации только
// логируются: событие вторично по отношению к записи в БД.
type Publisher struct {
	conn   Conn
	prefix string
	logger Logger
	now    func() time.Time
}

// NewPublisher создает публикатор поверх соединения
func NewPublisher(conn Conn, prefix string, logger Logger) *Publisher {
	return &Publisher{conn: conn, prefix: prefix, logger: logger, now: time.Now}
}

// Connect подключается к NATS с логированием переподключений
func Connect(url, name string, logger Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected to %s", c.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("nats connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return nc, nil
}

// Envelope общий формат сообщения
type Envelope struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

// SalePayload данные продажи в событии
type SalePayload struct {
	ID            string  `json:"id"`
	PassengerName string  `json:"passengerName"`
	PassengerDNI  string  `json:"passengerDni"`
	RouteID       int64   `json:"routeId"`
	TravelDate    string  `json:"travelDate"`
	ScheduleTime  string  `json:"scheduleTime"`
	SeatNumber    int     `json:"seatNumber"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
}

// PackagePayload данные посылки в событии
type PackagePayload struct {
	ID           string  `json:"id"`
	TrackingCode string  `json:"trackingCode"`
	FromCity     string  `json:"fromCity"`
	ToCity       string  `json:"toCity"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
}

// SaleCreated событие о новой продаже
func (p *Publisher) SaleCreated(ctx context.Context, sale *domain.Sale) {
	p.publish(ctx, SubjectSaleCreated, salePayload(sale))
}

// SaleUpdated событие об изменении продажи
func (p *Publisher) SaleUpdated(ctx context.Context, sale *domain.Sale) {
	p.publish(ctx, SubjectSaleUpdated, salePayload(sale))
}

// SaleDeleted событие об удалении продажи
func (p *Publisher) SaleDeleted(ctx context.Context, sale *domain.Sale) {
	p.publish(ctx, SubjectSaleDeleted, salePayload(sale))
}

// PackageCreated событие о новой посылке
func (p *Publisher) PackageCreated(ctx context.Context, parcel *domain.Parcel) {
	p.publish(ctx, SubjectPackageCreated, packagePayload(parcel))
}

// PackageStatusChanged событие о смене статуса посылки
func (p *Publisher) PackageStatusChanged(ctx context.Context, parcel *domain.Parcel) {
	p.publish(ctx, SubjectPackageStatus, packagePayload(parcel))
}

func (p *Publisher) publish(_ context.Context, subject string, data interface{}) {
	full := p.prefix + "." + subject

	body, err := json.Marshal(Envelope{Type: subject, OccurredAt: p.now().UTC(), Data: data})
	if err != nil {
		p.logger.Warn("publish: failed to marshal event, subject=%s: %v", full, err)
		return
	}

	if err := p.conn.Publish(full, body); err != nil {
		p.logger.Warn("publish: failed to publish event, subject=%s: %v", full, err)
	}
}

func salePayload(s *domain.Sale) SalePayload {
	return SalePayload{
		ID:            s.ID,
		PassengerName: s.PassengerName,
		PassengerDNI:  s.PassengerDNI,
		RouteID:       s.RouteID,
		TravelDate:    s.TravelDate.Format(domain.DateFormat),
		ScheduleTime:  s.ScheduleTime,
		SeatNumber:    s.SeatNumber,
		Total:         s.Total,
		Status:        string(s.Status),
	}
}

func packagePayload(p *domain.Parcel) PackagePayload {
	return PackagePayload{
		ID:           p.ID,
		TrackingCode: p.TrackingCode,
		FromCity:     p.FromCity,
		ToCity:       p.ToCity,
		Total:        p.Total,
		Status:       string(p.Status),
	}
}

// Nop публикатор для отключённого NATS
type Nop struct{}

func (Nop) SaleCreated(context.Context, *domain.Sale)            {}
func (Nop) SaleUpdated(context.Context, *domain.Sale)            {}
func (Nop) SaleDeleted(context.Context, *domain.Sale)            {}
func (Nop) PackageCreated(context.Context, *domain.Parcel)       {}
func (Nop) PackageStatusChanged(context.Context, *domain.Parcel) {}
