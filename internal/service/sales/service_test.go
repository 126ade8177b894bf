package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	saleRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/sale"
	"github.com/m04kA/WJL-TicketService/internal/service/sales/models"
)

type fakeRepo struct {
	sales  map[string]*domain.Sale
	filter domain.SalesFilter
	err    error
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Sale, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.sales[id]
	if !ok {
		return nil, saleRepo.ErrSaleNotFound
	}
	return s, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
	r.filter = filter
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ptr[T any](v T) *T { return &v }

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{sales: map[string]*domain.Sale{
		"WJL-1": {ID: "WJL-1", SeatNumber: 4, Status: domain.SaleStatusConfirmed,
			TravelDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "WJL-1")
	require.NoError(t, err)
	assert.Equal(t, "04", resp.SeatLabel)
	assert.Equal(t, "Confirmado", resp.StatusLabel)
	assert.Equal(t, "2024-06-01", resp.TravelDate)

	_, err = svc.GetByID(context.Background(), "WJL-2")
	assert.ErrorIs(t, err, ErrSaleNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_BuildsFilter(t *testing.T) {
	repo := &fakeRepo{sales: map[string]*domain.Sale{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSalesRequest{
		Date:         ptr("2024-06-01"),
		Status:       ptr("paid"),
		DriverName:   ptr("  juan "),
		PassengerDNI: ptr("12345678"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.filter.TravelDate)
	assert.Equal(t, "2024-06-01", repo.filter.TravelDate.Format(domain.DateFormat))
	assert.Equal(t, domain.SaleStatusPaid, *repo.filter.Status)
	assert.Equal(t, "juan", *repo.filter.DriverName)
	assert.Equal(t, "12345678", *repo.filter.PassengerDNI)
	assert.False(t, repo.filter.ActiveOnly)
}

func TestList_InvalidFilters(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	for name, req := range map[string]*models.ListSalesRequest{
		"date":     {Date: ptr("01-06-2024")},
		"status":   {Status: ptr("Pagado")},
		"schedule": {Schedule: ptr("7")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.List(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestList_StoreFailure(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("timeout")}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSalesRequest{})
	assert.ErrorIs(t, err, domain.ErrTransport)
}
