package create_sale

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	driverRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/driver"
	routeRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/route"
	saleRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/sale"
	"github.com/m04kA/WJL-TicketService/pkg/txmanager"
)

// fakeSales хранит продажи в памяти и ведёт себя как частичный уникальный индекс
type fakeSales struct {
	sales        []*domain.Sale
	createErr    error
	checkCalls   int
	createCalls  int
	hideConflict bool // имитирует конкурента, вставившего строку после проверки
}

func (f *fakeSales) IsSeatTaken(_ context.Context, routeID int64, travelDate, schedule string, seat int, excludeID string) (bool, error) {
	f.checkCalls++
	if f.hideConflict {
		return false, nil
	}
	return f.find(routeID, travelDate, schedule, seat, excludeID) != nil, nil
}

func (f *fakeSales) Create(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if sale.IsActive() && f.find(sale.RouteID, sale.TravelDate.Format(domain.DateFormat), sale.ScheduleTime, sale.SeatNumber, "") != nil {
		return nil, fmt.Errorf("%w: duplicate key", saleRepo.ErrSeatTaken)
	}
	f.sales = append(f.sales, sale)
	return sale, nil
}

func (f *fakeSales) find(routeID int64, travelDate, schedule string, seat int, excludeID string) *domain.Sale {
	for _, s := range f.sales {
		if s.IsActive() && s.ID != excludeID && s.RouteID == routeID && s.SeatNumber == seat &&
			s.ScheduleTime == schedule && s.TravelDate.Format(domain.DateFormat) == travelDate {
			return s
		}
	}
	return nil
}

type fakeRoutes struct{ err error }

func (f fakeRoutes) GetByID(_ context.Context, id int64) (*domain.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Route{ID: id, Origin: "Lima", Destination: "Huancayo", Price: 40, Schedule: "07:00"}, nil
}

type fakeDrivers struct{ err error }

func (f fakeDrivers) GetByID(_ context.Context, id int64) (*domain.Driver, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Driver{ID: id, Name: "Juan Pérez"}, nil
}

type fakeTx struct{ err error }

func (f fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type inventorySpy struct{ inv domain.SeatInventory }

func (s *inventorySpy) Book(sale *domain.Sale) { s.inv.Book(sale) }

type publisherSpy struct{ created []*domain.Sale }

func (p *publisherSpy) SaleCreated(_ context.Context, sale *domain.Sale) {
	p.created = append(p.created, sale)
}

type metricsSpy struct{ created, conflicts int }

func (m *metricsSpy) IncSaleCreated()  { m.created++ }
func (m *metricsSpy) IncSeatConflict() { m.conflicts++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type env struct {
	uc        *UseCase
	sales     *fakeSales
	inventory *inventorySpy
	publisher *publisherSpy
	metrics   *metricsSpy
}

func newEnv(sales *fakeSales, routes fakeRoutes, drivers fakeDrivers, tx fakeTx) *env {
	e := &env{
		sales:     sales,
		inventory: &inventorySpy{inv: domain.SeatInventory{}},
		publisher: &publisherSpy{},
		metrics:   &metricsSpy{},
	}
	e.uc = NewUseCase(sales, routes, drivers, tx, e.publisher, e.metrics,
		fixedTime{now: time.Date(2024, 5, 30, 10, 0, 0, 0, time.UTC)}, nopLogger{})
	return e
}

func validRequest(inv LocalInventory) *Request {
	return &Request{
		PassengerName:  "Ana Quispe",
		PassengerDNI:   "12345678",
		PassengerPhone: "987654321",
		FromCity:       "Lima",
		ToCity:         "Huancayo",
		DriverID:       3,
		RouteID:        3,
		SeatNumber:     5,
		TravelDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ScheduleTime:   "07:00",
		Inventory:      inv,
	}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv(&fakeSales{}, fakeRoutes{}, fakeDrivers{}, fakeTx{})

	resp, err := e.uc.Execute(context.Background(), validRequest(e.inventory))
	require.NoError(t, err)

	sale := resp.Sale
	assert.Regexp(t, `^WJL-\d+-[A-Z0-9]{5}$`, sale.ID)
	assert.Equal(t, "Juan Pérez", sale.DriverName)
	assert.Equal(t, 40.0, sale.Total)
	assert.Equal(t, domain.SaleStatusPaid, sale.Status)

	assert.False(t, e.inventory.inv.IsSeatAvailable(5, "2024-06-01", "3", "07:00"))
	assert.Len(t, e.publisher.created, 1)
	assert.Equal(t, 1, e.metrics.created)
}

func TestExecute_ExplicitTotalAndStatus(t *testing.T) {
	e := newEnv(&fakeSales{}, fakeRoutes{}, fakeDrivers{}, fakeTx{})
	req := validRequest(nil)
	total := 35.5
	status := domain.SaleStatusConfirmed
	req.Total = &total
	req.Status = &status

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 35.5, resp.Sale.Total)
	assert.Equal(t, 40.0, resp.Sale.Price)
	assert.Equal(t, domain.SaleStatusConfirmed, resp.Sale.Status)
}

func TestExecute_SecondActiveSaleOnSameSeatConflicts(t *testing.T) {
	e := newEnv(&fakeSales{}, fakeRoutes{}, fakeDrivers{}, fakeTx{})

	_, err := e.uc.Execute(context.Background(), validRequest(e.inventory))
	require.NoError(t, err)

	before := e.inventory.inv.Clone()
	_, err = e.uc.Execute(context.Background(), validRequest(e.inventory))

	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.ErrorIs(t, err, domain.ErrSeatConflict)
	assert.Len(t, e.sales.sales, 1)
	assert.Equal(t, before, e.inventory.inv)
	assert.Equal(t, 1, e.metrics.conflicts)
}

func TestExecute_CancelledSaleDoesNotBlockSeat(t *testing.T) {
	sales := &fakeSales{sales: []*domain.Sale{{
		ID: "WJL-old", RouteID: 3, SeatNumber: 5, ScheduleTime: "07:00",
		TravelDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.SaleStatusCancelled,
	}}}
	e := newEnv(sales, fakeRoutes{}, fakeDrivers{}, fakeTx{})

	_, err := e.uc.Execute(context.Background(), validRequest(nil))
	assert.NoError(t, err)
}

func TestExecute_CancelledSaleSkipsSeatCheckAndInventory(t *testing.T) {
	sales := &fakeSales{sales: []*domain.Sale{{
		ID: "WJL-paid", RouteID: 3, SeatNumber: 5, ScheduleTime: "07:00",
		TravelDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.SaleStatusPaid,
	}}}
	e := newEnv(sales, fakeRoutes{}, fakeDrivers{}, fakeTx{})
	req := validRequest(e.inventory)
	status := domain.SaleStatusCancelled
	req.Status = &status

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.SaleStatusCancelled, resp.Sale.Status)
	assert.Zero(t, sales.checkCalls)
	assert.Len(t, sales.sales, 2)
	assert.True(t, e.inventory.inv.IsSeatAvailable(5, "2024-06-01", "3", "07:00"))
	assert.Zero(t, e.metrics.conflicts)
}

func TestExecute_UniqueIndexIsFinalArbiter(t *testing.T) {
	sales := &fakeSales{
		sales: []*domain.Sale{{
			ID: "WJL-rival", RouteID: 3, SeatNumber: 5, ScheduleTime: "07:00",
			TravelDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Status:     domain.SaleStatusPaid,
		}},
		hideConflict: true,
	}
	e := newEnv(sales, fakeRoutes{}, fakeDrivers{}, fakeTx{})

	_, err := e.uc.Execute(context.Background(), validRequest(e.inventory))
	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.Empty(t, e.inventory.inv)
}

func TestExecute_SerializationFailureIsSeatConflict(t *testing.T) {
	tx := fakeTx{err: fmt.Errorf("%w: could not serialize access", txmanager.ErrSerializationFailure)}
	e := newEnv(&fakeSales{}, fakeRoutes{}, fakeDrivers{}, tx)

	_, err := e.uc.Execute(context.Background(), validRequest(e.inventory))
	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.Empty(t, e.inventory.inv)
}

func TestExecute_OperatorSeatRejectedBeforeConflictCheck(t *testing.T) {
	sales := &fakeSales{}
	e := newEnv(sales, fakeRoutes{}, fakeDrivers{}, fakeTx{})
	req := validRequest(e.inventory)
	req.SeatNumber = domain.OperatorSeat

	_, err := e.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrSeatConflict)
	assert.Zero(t, sales.checkCalls)
	assert.Zero(t, sales.createCalls)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing name", func(r *Request) { r.PassengerName = " " }},
		{"missing dni", func(r *Request) { r.PassengerDNI = "" }},
		{"short dni", func(r *Request) { r.PassengerDNI = "1234567" }},
		{"missing phone", func(r *Request) { r.PassengerPhone = "" }},
		{"missing route", func(r *Request) { r.RouteID = 0 }},
		{"missing driver", func(r *Request) { r.DriverID = 0 }},
		{"missing date", func(r *Request) { r.TravelDate = time.Time{} }},
		{"missing schedule", func(r *Request) { r.ScheduleTime = "" }},
		{"bad schedule", func(r *Request) { r.ScheduleTime = "7am" }},
		{"seat out of range", func(r *Request) { r.SeatNumber = domain.TotalSeats + 1 }},
		{"negative total", func(r *Request) { v := -1.0; r.Total = &v }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := &fakeSales{}
			e := newEnv(sales, fakeRoutes{}, fakeDrivers{}, fakeTx{})
			req := validRequest(nil)
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, sales.createCalls)
		})
	}
}

func TestExecute_MissingDriverStoresPlaceholder(t *testing.T) {
	e := newEnv(&fakeSales{}, fakeRoutes{}, fakeDrivers{err: driverRepo.ErrDriverNotFound}, fakeTx{})

	resp, err := e.uc.Execute(context.Background(), validRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDriverName, resp.Sale.DriverName)
}

func TestExecute_UnknownRoute(t *testing.T) {
	e := newEnv(&fakeSales{}, fakeRoutes{err: routeRepo.ErrRouteNotFound}, fakeDrivers{}, fakeTx{})

	_, err := e.uc.Execute(context.Background(), validRequest(nil))
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestExecute_StoreFailureIsTransport(t *testing.T) {
	sales := &fakeSales{createErr: errors.New("connection reset")}
	e := newEnv(sales, fakeRoutes{}, fakeDrivers{}, fakeTx{})

	_, err := e.uc.Execute(context.Background(), validRequest(e.inventory))
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Empty(t, e.inventory.inv)
	assert.Empty(t, e.publisher.created)
}
