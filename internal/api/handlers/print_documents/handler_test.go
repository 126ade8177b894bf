package print_documents

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	packageService "github.com/m04kA/WJL-TicketService/internal/service/packages"
	salesService "github.com/m04kA/WJL-TicketService/internal/service/sales"
)

var printedAt = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

type fakeStore struct {
	sale   *domain.Sale
	parcel *domain.Parcel
	err    error
}

func (f *fakeStore) GetSale(_ context.Context, _ string) (*domain.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sale, nil
}

func (f *fakeStore) GetParcel(_ context.Context, _ string) (*domain.Parcel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.parcel, nil
}

func (f *fakeStore) GetInfo(_ context.Context) (*domain.CompanyInfo, error) {
	return &domain.CompanyInfo{Name: "WJL Turismo", RUC: "20123456789", Address: "Av. Grau 123", Phone: "+51987654321"}, nil
}

type fakeArchive struct {
	names chan string
	err   error
}

func (f *fakeArchive) Put(_ context.Context, name string, _ []byte) (string, error) {
	f.names <- name
	return "s3://tickets/" + name, f.err
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return printedAt }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(store *fakeStore, archive Archive) *mux.Router {
	h := NewHandler(store, store, store, archive, fixedTime{}, nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/sales/{id}/ticket", h.Ticket)
	router.HandleFunc("/packages/{id}/label", h.Label)
	return router
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func testSale() *domain.Sale {
	return &domain.Sale{
		ID:            "BOL-000123",
		PassengerName: "Ana Quispe",
		PassengerDNI:  "12345678",
		FromCity:      "Lima",
		ToCity:        "Huaraz",
		RouteID:       1,
		SeatNumber:    5,
		Price:         40,
		Total:         40,
		TravelDate:    time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		ScheduleTime:  "07:00",
		Status:        domain.SaleStatusConfirmed,
	}
}

func TestTicket_ArchivesInBackground(t *testing.T) {
	archive := &fakeArchive{names: make(chan string, 1)}
	rec := get(newRouter(&fakeStore{sale: testSale()}, archive), "/sales/BOL-000123/ticket")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	select {
	case name := <-archive.names:
		assert.Equal(t, "2024/06/02/BOL-000123.pdf", name)
	case <-time.After(time.Second):
		t.Fatal("ticket was not archived")
	}
}

func TestTicket_ArchiveFailureDoesNotAffectResponse(t *testing.T) {
	archive := &fakeArchive{names: make(chan string, 1), err: errors.New("access denied")}
	rec := get(newRouter(&fakeStore{sale: testSale()}, archive), "/sales/BOL-000123/ticket")

	assert.Equal(t, http.StatusOK, rec.Code)
	<-archive.names
}

func TestTicket_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound,
		get(newRouter(&fakeStore{err: salesService.ErrSaleNotFound}, nil), "/sales/X/ticket").Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		get(newRouter(&fakeStore{err: salesService.ErrInternal}, nil), "/sales/X/ticket").Code)
}

func TestLabel(t *testing.T) {
	parcel := &domain.Parcel{
		ID:            "ENC-123456",
		TrackingCode:  "TRK-20240601-AB12",
		SenderName:    "Luis Rojas",
		SenderDNI:     "87654321",
		RecipientName: "Rosa Diaz",
		RecipientDNI:  "11223344",
		FromCity:      "Lima",
		ToCity:        "Huaraz",
		Description:   "Caja de ropa",
		Weight:        3.5,
		ShippingCost:  15,
		Total:         15,
		TravelDate:    time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		Status:        domain.ParcelStatusPending,
	}

	rec := get(newRouter(&fakeStore{parcel: parcel}, nil), "/packages/ENC-123456/label")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNotFound,
		get(newRouter(&fakeStore{err: packageService.ErrPackageNotFound}, nil), "/packages/X/label").Code)
}
