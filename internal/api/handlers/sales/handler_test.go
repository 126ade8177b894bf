package sales

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	salesService "github.com/m04kA/WJL-TicketService/internal/service/sales"
	"github.com/m04kA/WJL-TicketService/internal/service/sales/models"
)

type fakeService struct {
	listReq *models.ListSalesRequest
	err     error
}

func (f *fakeService) GetByID(_ context.Context, id string) (*models.SaleResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SaleResponse{ID: id}, nil
}

func (f *fakeService) List(_ context.Context, req *models.ListSalesRequest) (*models.SaleListResponse, error) {
	f.listReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SaleListResponse{Sales: []models.SaleResponse{}, Total: 0}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func router(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/sales", h.List).Methods(http.MethodGet)
	r.HandleFunc("/sales/{id}", h.Get).Methods(http.MethodGet)
	return r
}

func TestList_Filters(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	router(NewHandler(svc, nopLogger{})).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/sales?date=2024-06-01&status=paid&driverName=juan&passengerDni=12345678&routeId=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-06-01", *svc.listReq.Date)
	assert.Equal(t, "paid", *svc.listReq.Status)
	assert.Equal(t, "juan", *svc.listReq.DriverName)
	assert.Equal(t, "12345678", *svc.listReq.PassengerDNI)
	assert.Equal(t, int64(2), *svc.listReq.RouteID)
	assert.Nil(t, svc.listReq.DriverID)
}

func TestList_BadFilters(t *testing.T) {
	rec := httptest.NewRecorder()
	router(NewHandler(&fakeService{}, nopLogger{})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sales?routeId=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router(NewHandler(&fakeService{err: salesService.ErrInvalidInput}, nopLogger{})).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/sales?status=unknown", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet(t *testing.T) {
	rec := httptest.NewRecorder()
	router(NewHandler(&fakeService{}, nopLogger{})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sales/WJL-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"WJL-1"`)

	rec = httptest.NewRecorder()
	router(NewHandler(&fakeService{err: salesService.ErrSaleNotFound}, nopLogger{})).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/sales/WJL-2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
