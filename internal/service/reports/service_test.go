package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	routeRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/route"
	"github.com/m04kA/WJL-TicketService/internal/service/reports/models"
)

type fakeReports struct {
	rows   []*domain.DriverReportRow
	err    error
	filter domain.DriverReportFilter
}

func (f *fakeReports) PassengersByDriver(_ context.Context, filter domain.DriverReportFilter) ([]*domain.DriverReportRow, error) {
	f.filter = filter
	return f.rows, f.err
}

type fakeSales struct {
	sales  []*domain.Sale
	filter domain.SalesFilter
}

func (f *fakeSales) List(_ context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
	f.filter = filter
	return f.sales, nil
}

type fakeRoutes struct {
	route *domain.Route
}

func (f *fakeRoutes) GetByID(_ context.Context, id int64) (*domain.Route, error) {
	if f.route == nil || f.route.ID != id {
		return nil, routeRepo.ErrRouteNotFound
	}
	return f.route, nil
}

type fakeCompany struct{}

func (fakeCompany) GetInfo(context.Context) (*domain.CompanyInfo, error) {
	return &domain.CompanyInfo{Name: "WJL Turismo", RUC: "20123456789", Address: "Huancayo", Phone: "064-123456"}, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func strPtr(s string) *string { return &s }

func newService(reports *fakeReports, sales *fakeSales, routes *fakeRoutes) *Service {
	return NewService(reports, sales, routes, fakeCompany{}, fixedTime{time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)}, nopLogger{})
}

func TestDriverReport(t *testing.T) {
	reports := &fakeReports{rows: []*domain.DriverReportRow{
		{DriverID: 1, DriverName: "Juan", PassengerCount: 3, Revenue: 120, Routes: []string{"Lima → Huancayo"}},
		{DriverID: 2, DriverName: "Pedro", PassengerCount: 1, Revenue: 35},
	}}
	svc := newService(reports, &fakeSales{}, &fakeRoutes{})

	resp, err := svc.DriverReport(context.Background(), &models.DriverReportRequest{
		Date: strPtr("2024-06-01"), Schedule: strPtr("07:00"),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Drivers, 2)
	assert.Equal(t, 4, resp.TotalPassengers)
	assert.InDelta(t, 155.0, resp.TotalRevenue, 0.001)
	assert.Equal(t, []string{}, resp.Drivers[1].Routes)

	require.NotNil(t, reports.filter.TravelDate)
	assert.Equal(t, "2024-06-01", reports.filter.TravelDate.Format(domain.DateFormat))
	assert.Equal(t, "07:00", *reports.filter.ScheduleTime)
}

func TestDriverReport_InvalidDate(t *testing.T) {
	svc := newService(&fakeReports{}, &fakeSales{}, &fakeRoutes{})

	_, err := svc.DriverReport(context.Background(), &models.DriverReportRequest{Date: strPtr("01/06/2024")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDriverReport_RepositoryError(t *testing.T) {
	svc := newService(&fakeReports{err: errors.New("boom")}, &fakeSales{}, &fakeRoutes{})

	_, err := svc.DriverReport(context.Background(), &models.DriverReportRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestManifest(t *testing.T) {
	sales := &fakeSales{sales: []*domain.Sale{{
		ID: "WJL-1", PassengerName: "Ana", PassengerDNI: "12345678", RouteID: 1, SeatNumber: 3,
		Total: 40, ScheduleTime: "07:00", Status: domain.SaleStatusPaid,
	}}}
	routes := &fakeRoutes{route: &domain.Route{ID: 1, Origin: "Lima", Destination: "Huancayo", Price: 40, Schedule: "07:00"}}
	svc := newService(&fakeReports{}, sales, routes)

	pdf, err := svc.Manifest(context.Background(), &models.ManifestRequest{Date: "2024-06-01", RouteID: 1, Schedule: "07:00"})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.True(t, sales.filter.ActiveOnly)
	assert.Equal(t, int64(1), *sales.filter.RouteID)
}

func TestManifest_Errors(t *testing.T) {
	svc := newService(&fakeReports{}, &fakeSales{}, &fakeRoutes{})

	_, err := svc.Manifest(context.Background(), &models.ManifestRequest{Date: "2024-06-01", RouteID: 9, Schedule: "07:00"})
	assert.ErrorIs(t, err, ErrRouteNotFound)

	_, err = svc.Manifest(context.Background(), &models.ManifestRequest{Date: "2024-06-01", RouteID: 1, Schedule: "7am"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Manifest(context.Background(), &models.ManifestRequest{Date: "2024-06-01", Schedule: "07:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
