package domain

import (
	"fmt"
	"strings"
)

// TripKey identifies one trip instance: a route departing on a date at a schedule.
// The separator is not escaped, so ids that themselves contain "-" may collide.
func TripKey(date, routeID, schedule string) string {
	return date + "-" + routeID + "-" + schedule
}

// SeatLabel returns the seat number left-padded with zeros to width 2
func SeatLabel(seat int) string {
	return fmt.Sprintf("%02d", seat)
}

// SeatInventory maps a trip key to the sales holding its seats.
// Each (trip, seat) pair holds at most one sale.
type SeatInventory map[string]map[int]*Sale

// BuildInventory folds sales into a new inventory. When two sales share a
// trip and seat the later one wins; the input is expected to be conflict free.
func BuildInventory(sales []*Sale) SeatInventory {
	inv := make(SeatInventory)
	for _, sale := range sales {
		if sale == nil {
			continue
		}
		inv.Book(sale)
	}
	return inv
}

// Book places sale on its seat, replacing any previous occupant
func (inv SeatInventory) Book(sale *Sale) {
	key := sale.TripKey()
	seats, ok := inv[key]
	if !ok {
		seats = make(map[int]*Sale)
		inv[key] = seats
	}
	seats[sale.SeatNumber] = sale
}

// Release frees the seat held by sale. A seat held by a different sale is left untouched.
func (inv SeatInventory) Release(sale *Sale) {
	key := sale.TripKey()
	seats, ok := inv[key]
	if !ok {
		return
	}
	if current, ok := seats[sale.SeatNumber]; ok && current.ID == sale.ID {
		delete(seats, sale.SeatNumber)
	}
	if len(seats) == 0 {
		delete(inv, key)
	}
}

// IsSeatAvailable reports whether seat is free on the trip. The operator seat is never available.
func (inv SeatInventory) IsSeatAvailable(seat int, date, routeID, schedule string) bool {
	if seat == OperatorSeat {
		return false
	}
	_, taken := inv[TripKey(date, routeID, schedule)][seat]
	return !taken
}

// OccupiedSeats returns a copy of the seats taken on the trip, empty when the trip has no sales
func (inv SeatInventory) OccupiedSeats(date, routeID, schedule string) map[int]*Sale {
	seats := inv[TripKey(date, routeID, schedule)]
	out := make(map[int]*Sale, len(seats))
	for n, sale := range seats {
		out[n] = sale
	}
	return out
}

// AvailableSeatCount counts free passenger seats (2..TotalSeats) on the trip
func (inv SeatInventory) AvailableSeatCount(date, routeID, schedule string) int {
	available := 0
	for seat := OperatorSeat + 1; seat <= TotalSeats; seat++ {
		if inv.IsSeatAvailable(seat, date, routeID, schedule) {
			available++
		}
	}
	return available
}

// ReplaceDate drops every trip departing on date and merges the trips of fresh.
// Trips on other dates are kept as they are.
func (inv SeatInventory) ReplaceDate(date string, fresh SeatInventory) {
	prefix := date + "-"
	for key := range inv {
		if strings.HasPrefix(key, prefix) {
			delete(inv, key)
		}
	}
	for key, seats := range fresh {
		inv[key] = seats
	}
}

// Clone returns a deep copy of the inventory maps (sales are shared)
func (inv SeatInventory) Clone() SeatInventory {
	out := make(SeatInventory, len(inv))
	for key, seats := range inv {
		copied := make(map[int]*Sale, len(seats))
		for n, sale := range seats {
			copied[n] = sale
		}
		out[key] = copied
	}
	return out
}

// SeatState state of a single seat on a trip
type SeatState string

const (
	SeatStateOperator  SeatState = "operator"
	SeatStateOccupied  SeatState = "occupied"
	SeatStateAvailable SeatState = "available"
)

// SeatView one seat of a trip seat map
type SeatView struct {
	Number int
	Label  string
	State  SeatState
	Sale   *Sale // nil unless occupied
}

// TripSeatMap full seat layout of a trip
type TripSeatMap struct {
	Date           string
	RouteID        string
	Schedule       string
	Seats          []SeatView
	AvailableSeats int
	OccupiedSeats  int // passenger seats only
}

// SeatMap renders every seat of the trip in order
func (inv SeatInventory) SeatMap(date, routeID, schedule string) TripSeatMap {
	occupied := inv[TripKey(date, routeID, schedule)]

	m := TripSeatMap{
		Date:     date,
		RouteID:  routeID,
		Schedule: schedule,
		Seats:    make([]SeatView, 0, TotalSeats),
	}

	for seat := 1; seat <= TotalSeats; seat++ {
		view := SeatView{Number: seat, Label: SeatLabel(seat)}
		switch {
		case seat == OperatorSeat:
			view.State = SeatStateOperator
		case occupied[seat] != nil:
			view.State = SeatStateOccupied
			view.Sale = occupied[seat]
			m.OccupiedSeats++
		default:
			view.State = SeatStateAvailable
		}
		m.Seats = append(m.Seats, view)
	}
	m.AvailableSeats = inv.AvailableSeatCount(date, routeID, schedule)

	return m
}

// IsFull returns true if no passenger seat is left
func (m *TripSeatMap) IsFull() bool {
	return m.AvailableSeats <= 0
}

// OccupancyRate returns the occupancy of passenger seats as a percentage (0-100)
func (m *TripSeatMap) OccupancyRate() float64 {
	return float64(m.OccupiedSeats) / float64(PassengerSeats) * 100
}
