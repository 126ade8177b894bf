package company

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	companyRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/company"
	"github.com/m04kA/WJL-TicketService/internal/service/company/models"
)

type fakeRepo struct {
	info    *domain.CompanyInfo
	err     error
	upserts int
}

func (r *fakeRepo) Get(context.Context) (*domain.CompanyInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.info == nil {
		return nil, companyRepo.ErrCompanyNotFound
	}
	copied := *r.info
	return &copied, nil
}

func (r *fakeRepo) Upsert(_ context.Context, info *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	r.upserts++
	saved := *info
	saved.UpdatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	r.info = &saved
	return &saved, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var defaults = domain.CompanyInfo{
	Name: "WJL Turismo", RUC: "20123456789", Address: "Av. Ferrocarril 123, Huancayo", Phone: "064-123456",
}

func ptr(s string) *string { return &s }

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{}, defaults, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "WJL Turismo", resp.Name)
	assert.True(t, resp.Complete)
	assert.Nil(t, resp.UpdatedAt)
	assert.Equal(t, domain.TotalSeats, resp.TotalSeats)
}

func TestGet_StoredWins(t *testing.T) {
	repo := &fakeRepo{info: &domain.CompanyInfo{Name: "WJL SAC", Phone: "999", UpdatedAt: time.Now()}}
	svc := NewService(repo, defaults, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "WJL SAC", resp.Name)
	assert.Equal(t, "999", resp.Phone)
	assert.Equal(t, defaults.RUC, resp.RUC)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestUpdate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, defaults, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateCompanyRequest{
		Phone: ptr(" 964 111 222 "), Email: ptr("ventas@wjl.pe"), Website: ptr(" "),
	})
	require.NoError(t, err)

	assert.Equal(t, "964 111 222", resp.Phone)
	assert.Equal(t, "ventas@wjl.pe", *resp.Email)
	assert.Nil(t, resp.Website)
	assert.Equal(t, 1, repo.upserts)
}

func TestUpdate_Errors(t *testing.T) {
	svc := NewService(&fakeRepo{}, defaults, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateCompanyRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Update(context.Background(), &models.UpdateCompanyRequest{RUC: ptr("  ")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	svc = NewService(&fakeRepo{err: errors.New("down")}, defaults, nopLogger{})
	_, err = svc.Update(context.Background(), &models.UpdateCompanyRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrTransport)
}
