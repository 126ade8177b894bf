package packages

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	parcelRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/parcel"
	"github.com/m04kA/WJL-TicketService/internal/service/packages/models"
)

type fakeRepo struct {
	parcels    map[string]*domain.Parcel
	takenCodes int // сколько первых проверок кода вернут "занят"
	codeChecks  int
	createCalls int
	createErr   error
	created     *domain.Parcel
}

func newFakeRepo(existing ...*domain.Parcel) *fakeRepo {
	r := &fakeRepo{parcels: map[string]*domain.Parcel{}}
	for _, p := range existing {
		r.parcels[p.ID] = p
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, p *domain.Parcel) (*domain.Parcel, error) {
	r.createCalls++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.parcels[p.ID]; ok {
		return nil, parcelRepo.ErrDuplicateID
	}
	copied := *p
	r.parcels[p.ID] = &copied
	r.created = p
	return p, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Parcel, error) {
	p, ok := r.parcels[id]
	if !ok {
		return nil, parcelRepo.ErrParcelNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) TrackingCodeExists(context.Context, string) (bool, error) {
	r.codeChecks++
	return r.codeChecks <= r.takenCodes, nil
}

func (r *fakeRepo) List(context.Context, domain.ParcelsFilter) ([]*domain.Parcel, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, p *domain.Parcel) error {
	r.parcels[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.parcels, id)
	return nil
}

type publisherSpy struct{ created, statusChanges int }

func (p *publisherSpy) PackageCreated(context.Context, *domain.Parcel)       { p.created++ }
func (p *publisherSpy) PackageStatusChanged(context.Context, *domain.Parcel) { p.statusChanges++ }

type metricsSpy struct{ created int }

func (m *metricsSpy) IncPackageCreated() { m.created++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 1717250400123 ms
var now = time.UnixMilli(1717250400123).UTC()

func newService(repo *fakeRepo) (*Service, *publisherSpy, *metricsSpy) {
	pub := &publisherSpy{}
	m := &metricsSpy{}
	return NewService(repo, pub, m, fixedTime{now: now}, nopLogger{}), pub, m
}

func validCreate() *models.CreatePackageRequest {
	return &models.CreatePackageRequest{
		SenderName: "Ana Quispe", SenderDNI: "12345678",
		RecipientName: "Luis Rojas", RecipientDNI: "87654321",
		FromCity: "Lima", ToCity: "Huancayo",
		Description: "Caja de ropa", Weight: 2.5, Total: 25,
	}
}

func TestCreate_Defaults(t *testing.T) {
	repo := newFakeRepo()
	svc, pub, m := newService(repo)

	resp, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, "ENC-400123", resp.ID)
	assert.Regexp(t, regexp.MustCompile(`^WJL400123[A-Z]{3}$`), resp.TrackingCode)
	assert.Equal(t, 0.0, resp.DeclaredValue)
	assert.Equal(t, 25.0, resp.ShippingCost)
	assert.Equal(t, "2024-06-01", resp.TravelDate)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Pendiente", resp.StatusLabel)
	assert.Equal(t, 1, pub.created)
	assert.Equal(t, 1, m.created)
}

func TestCreate_RetriesTakenTrackingCode(t *testing.T) {
	repo := newFakeRepo()
	repo.takenCodes = 2
	svc, _, _ := newService(repo)

	_, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.codeChecks)
}

func TestCreate_RetriesAreBounded(t *testing.T) {
	repo := newFakeRepo()
	repo.takenCodes = 100
	svc, _, _ := newService(repo)

	_, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, domain.MaxTrackingRetries, repo.codeChecks)
}

func TestCreate_RetriesTakenPackageID(t *testing.T) {
	// тот же остаток миллисекунд, что и 16,7 минуты назад
	repo := newFakeRepo(&domain.Parcel{ID: "ENC-400123"})
	svc, pub, _ := newService(repo)

	resp, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ENC-400123-[A-Z]{3}$`), resp.ID)
	assert.Equal(t, 2, repo.createCalls)
	assert.Len(t, repo.parcels, 2)
	assert.Equal(t, 1, pub.created)
}

func TestCreate_PackageIDRetriesAreBounded(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = parcelRepo.ErrDuplicateID
	svc, pub, _ := newService(repo)

	_, err := svc.Create(context.Background(), validCreate())

	assert.ErrorIs(t, err, ErrDuplicatePackageID)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, domain.MaxTrackingRetries, repo.createCalls)
	assert.Zero(t, pub.created)
}

func TestCreate_TakenTrackingCodeIsNotRetried(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = parcelRepo.ErrDuplicateTrackingCode
	svc, _, _ := newService(repo)

	_, err := svc.Create(context.Background(), validCreate())

	assert.ErrorIs(t, err, ErrDuplicateTrackingCode)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newService(newFakeRepo())

	mutations := map[string]func(r *models.CreatePackageRequest){
		"missing sender":      func(r *models.CreatePackageRequest) { r.SenderName = "" },
		"missing recipient":   func(r *models.CreatePackageRequest) { r.RecipientDNI = " " },
		"missing description": func(r *models.CreatePackageRequest) { r.Description = "" },
		"zero weight":         func(r *models.CreatePackageRequest) { r.Weight = 0 },
		"bad date":            func(r *models.CreatePackageRequest) { d := "01/06/2024"; r.TravelDate = &d },
		"bad status":          func(r *models.CreatePackageRequest) { st := "Pendiente"; r.Status = &st },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validCreate()
			mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func existing(status domain.ParcelStatus) *domain.Parcel {
	return &domain.Parcel{
		ID: "ENC-000001", TrackingCode: "WJL000001ABC", SenderName: "A", SenderDNI: "1",
		RecipientName: "B", RecipientDNI: "2", FromCity: "Lima", ToCity: "Jauja",
		Description: "Sobre", Weight: 1, Status: status,
	}
}

func TestUpdate_Partial(t *testing.T) {
	repo := newFakeRepo(existing(domain.ParcelStatusPending))
	svc, pub, _ := newService(repo)
	weight := 3.0

	resp, err := svc.Update(context.Background(), "ENC-000001", &models.UpdatePackageRequest{Weight: &weight})
	require.NoError(t, err)
	assert.Equal(t, 3.0, resp.Weight)
	assert.Equal(t, "Sobre", resp.Description)
	assert.Zero(t, pub.statusChanges)

	_, err = svc.Update(context.Background(), "ENC-000001", &models.UpdatePackageRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo(existing(domain.ParcelStatusPending))
	svc, pub, _ := newService(repo)
	status := "in_transit"

	resp, err := svc.UpdateStatus(context.Background(), "ENC-000001", &models.UpdateStatusRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "En Tránsito", resp.StatusLabel)
	assert.Equal(t, 1, pub.statusChanges)

	bad := "lost"
	_, err = svc.UpdateStatus(context.Background(), "ENC-000001", &models.UpdateStatusRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateStatus(context.Background(), "ENC-000001", &models.UpdateStatusRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(existing(domain.ParcelStatusInTransit))
	svc, _, _ := newService(repo)

	err := svc.Delete(context.Background(), "ENC-000001")
	assert.ErrorIs(t, err, ErrPackageInTransit)
	assert.ErrorIs(t, err, domain.ErrInUse)

	repo.parcels["ENC-000001"].Status = domain.ParcelStatusDelivered
	require.NoError(t, svc.Delete(context.Background(), "ENC-000001"))

	assert.ErrorIs(t, svc.Delete(context.Background(), "ENC-000001"), ErrPackageNotFound)
}
