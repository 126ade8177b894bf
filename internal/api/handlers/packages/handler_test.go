package packages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packageService "github.com/m04kA/WJL-TicketService/internal/service/packages"
	"github.com/m04kA/WJL-TicketService/internal/service/packages/models"
)

type fakeService struct {
	err       error
	listReq   *models.ListPackagesRequest
	statusReq *models.UpdateStatusRequest
}

func (f *fakeService) Create(_ context.Context, req *models.CreatePackageRequest) (*models.PackageResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PackageResponse{ID: "ENC-400123", TrackingCode: "WJL400123ABC", SenderName: req.SenderName}, nil
}

func (f *fakeService) GetByID(_ context.Context, id string) (*models.PackageResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PackageResponse{ID: id}, nil
}

func (f *fakeService) List(_ context.Context, req *models.ListPackagesRequest) (*models.PackageListResponse, error) {
	f.listReq = req
	return &models.PackageListResponse{Packages: []models.PackageResponse{}}, f.err
}

func (f *fakeService) Update(_ context.Context, id string, _ *models.UpdatePackageRequest) (*models.PackageResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PackageResponse{ID: id}, nil
}

func (f *fakeService) UpdateStatus(_ context.Context, id string, req *models.UpdateStatusRequest) (*models.PackageResponse, error) {
	f.statusReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.PackageResponse{ID: id, Status: *req.Status}, nil
}

func (f *fakeService) Delete(context.Context, string) error {
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, method, target, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/packages", h.List).Methods(http.MethodGet)
	r.HandleFunc("/packages", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/packages/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/packages/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/packages/{id}/status", h.UpdateStatus).Methods(http.MethodPatch)
	r.HandleFunc("/packages/{id}", h.Delete).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestCreate(t *testing.T) {
	rec := serve(&fakeService{}, http.MethodPost, "/packages", `{"senderName":"Ana","senderDni":"12345678","weight":2.5,"total":20}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trackingCode":"WJL400123ABC"`)
}

func TestList_Filters(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, http.MethodGet, "/packages?status=paid&senderDni=12345678", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paid", *svc.listReq.Status)
	assert.Equal(t, "12345678", *svc.listReq.SenderDNI)
	assert.Nil(t, svc.listReq.TrackingCode)
}

func TestUpdateStatus(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, http.MethodPatch, "/packages/ENC-1/status", `{"status":"in_transit"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "in_transit", *svc.statusReq.Status)

	rec = serve(&fakeService{err: packageService.ErrInvalidInput}, http.MethodPatch, "/packages/ENC-1/status", `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, serve(&fakeService{}, http.MethodDelete, "/packages/ENC-1", "").Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: packageService.ErrPackageInTransit}, http.MethodDelete, "/packages/ENC-1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: packageService.ErrPackageNotFound}, http.MethodDelete, "/packages/ENC-9", "").Code)
}
