package get_seat_map

import (
	"strconv"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	getSeatMap "github.com/m04kA/WJL-TicketService/internal/usecase/get_seat_map"
)

// SeatMapResponse HTTP response model
type SeatMapResponse struct {
	Date           string         `json:"date"`
	RouteID        int64          `json:"routeId"`
	RouteName      string         `json:"routeName"`
	Price          float64        `json:"price"`
	Schedule       string         `json:"schedule"`
	TotalSeats     int            `json:"totalSeats"`
	AvailableSeats int            `json:"availableSeats"`
	OccupiedSeats  int            `json:"occupiedSeats"`
	OccupancyRate  float64        `json:"occupancyRate"`
	Seats          []SeatResponse `json:"seats"`
}

// SeatResponse модель одного места
type SeatResponse struct {
	Number        int     `json:"number"`
	Label         string  `json:"label"`
	State         string  `json:"state"`
	SaleID        *string `json:"saleId,omitempty"`
	PassengerName *string `json:"passengerName,omitempty"`
	PassengerDNI  *string `json:"passengerDni,omitempty"`
}

// ReloadResponse HTTP response model перезагрузки инвентаря
type ReloadResponse struct {
	Sales int `json:"sales"`
	Trips int `json:"trips"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, routeIDStr, schedule string, inventory getSeatMap.SessionInventory) (*getSeatMap.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	routeID, err := strconv.ParseInt(routeIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	return &getSeatMap.Request{
		Date:      date,
		RouteID:   routeID,
		Schedule:  schedule,
		Inventory: inventory,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSeatMap.Response) *SeatMapResponse {
	seats := make([]SeatResponse, len(resp.SeatMap.Seats))
	for i, seat := range resp.SeatMap.Seats {
		seats[i] = SeatResponse{
			Number: seat.Number,
			Label:  seat.Label,
			State:  string(seat.State),
		}
		if seat.Sale != nil {
			seats[i].SaleID = &seat.Sale.ID
			seats[i].PassengerName = &seat.Sale.PassengerName
			seats[i].PassengerDNI = &seat.Sale.PassengerDNI
		}
	}

	return &SeatMapResponse{
		Date:           resp.SeatMap.Date,
		RouteID:        resp.Route.ID,
		RouteName:      resp.Route.Name(),
		Price:          resp.Route.Price,
		Schedule:       resp.SeatMap.Schedule,
		TotalSeats:     domain.TotalSeats,
		AvailableSeats: resp.SeatMap.AvailableSeats,
		OccupiedSeats:  resp.SeatMap.OccupiedSeats,
		OccupancyRate:  resp.SeatMap.OccupancyRate(),
		Seats:          seats,
	}
}
