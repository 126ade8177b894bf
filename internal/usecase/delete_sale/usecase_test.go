package delete_sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	saleRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/sale"
)

type fakeSales struct {
	sales     map[string]*domain.Sale
	deleteErr error
	deleted   []string
}

func (f *fakeSales) GetByID(_ context.Context, id string) (*domain.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, saleRepo.ErrSaleNotFound
	}
	return s, nil
}

func (f *fakeSales) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.sales, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type publisherSpy struct{ deleted int }

func (p *publisherSpy) SaleDeleted(context.Context, *domain.Sale) { p.deleted++ }

type metricsSpy struct{ deleted int }

func (m *metricsSpy) IncSaleDeleted() { m.deleted++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// "Сегодня" - 1 июня 2024 по Лиме
var lima = time.FixedZone("America/Lima", -5*60*60)
var today = time.Date(2024, 6, 1, 21, 30, 0, 0, lima)

func day(offset int) time.Time {
	return time.Date(2024, 6, 1+offset, 0, 0, 0, 0, time.UTC)
}

func newSale(id string, travelDate time.Time, status domain.SaleStatus) *domain.Sale {
	return &domain.Sale{
		ID: id, RouteID: 3, SeatNumber: 5, ScheduleTime: "07:00",
		TravelDate: travelDate, Status: status,
	}
}

func newUseCase(sales *fakeSales) (*UseCase, *publisherSpy, *metricsSpy) {
	pub := &publisherSpy{}
	m := &metricsSpy{}
	return NewUseCase(sales, fakeTx{}, pub, m, fixedTime{now: today}, nopLogger{}), pub, m
}

func TestExecute_PastTripLock(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		status  domain.SaleStatus
		wantErr error
	}{
		{"confirmed yesterday is locked", day(-1), domain.SaleStatusConfirmed, ErrPastTripLocked},
		{"confirmed tomorrow is deleted", day(1), domain.SaleStatusConfirmed, nil},
		{"confirmed today is deleted", day(0), domain.SaleStatusConfirmed, nil},
		{"paid yesterday is deleted", day(-1), domain.SaleStatusPaid, nil},
		{"pending last month is deleted", day(-30), domain.SaleStatusPending, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := newSale("WJL-1", tt.date, tt.status)
			sales := &fakeSales{sales: map[string]*domain.Sale{sale.ID: sale}}
			uc, _, _ := newUseCase(sales)
			inv := domain.BuildInventory([]*domain.Sale{sale})

			_, err := uc.Execute(context.Background(), &Request{ID: sale.ID, Inventory: inv})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrPastTripLocked)
				assert.Empty(t, sales.deleted)
				assert.Len(t, inv, 1)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"WJL-1"}, sales.deleted)
		})
	}
}

func TestExecute_ReleasesSeatAfterDelete(t *testing.T) {
	sale := newSale("WJL-1", day(1), domain.SaleStatusPaid)
	sales := &fakeSales{sales: map[string]*domain.Sale{sale.ID: sale}}
	uc, pub, m := newUseCase(sales)
	inv := domain.BuildInventory([]*domain.Sale{sale})
	require.False(t, inv.IsSeatAvailable(5, "2024-06-02", "3", "07:00"))

	resp, err := uc.Execute(context.Background(), &Request{ID: sale.ID, Inventory: inv})
	require.NoError(t, err)

	assert.Equal(t, "WJL-1", resp.Sale.ID)
	assert.True(t, inv.IsSeatAvailable(5, "2024-06-02", "3", "07:00"))
	assert.Equal(t, 1, pub.deleted)
	assert.Equal(t, 1, m.deleted)
}

func TestExecute_NotFound(t *testing.T) {
	uc, pub, _ := newUseCase(&fakeSales{sales: map[string]*domain.Sale{}})

	_, err := uc.Execute(context.Background(), &Request{ID: "WJL-missing"})

	assert.ErrorIs(t, err, ErrSaleNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, pub.deleted)
}

func TestExecute_EmptyID(t *testing.T) {
	uc, _, _ := newUseCase(&fakeSales{})

	_, err := uc.Execute(context.Background(), &Request{ID: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecute_StoreFailureKeepsInventory(t *testing.T) {
	sale := newSale("WJL-1", day(1), domain.SaleStatusPaid)
	sales := &fakeSales{sales: map[string]*domain.Sale{sale.ID: sale}, deleteErr: errors.New("connection reset")}
	uc, _, _ := newUseCase(sales)
	inv := domain.BuildInventory([]*domain.Sale{sale})

	_, err := uc.Execute(context.Background(), &Request{ID: sale.ID, Inventory: inv})

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.False(t, inv.IsSeatAvailable(5, "2024-06-02", "3", "07:00"))
}
