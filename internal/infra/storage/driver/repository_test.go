package driver

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO drivers")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	driver, err := repo.Create(context.Background(), &domain.Driver{
		Name: "Juan Pérez", Phone: "987654321", License: "Q12345678", Status: domain.DriverStatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), driver.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateLicense(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO drivers")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "drivers_license_key"})

	_, err := repo.Create(context.Background(), &domain.Driver{License: "Q12345678"})
	assert.ErrorIs(t, err, ErrDuplicateLicense)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM drivers WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(7, "Juan Pérez", "987654321", nil, "Q12345678", 4, "active", now, now))

	driver, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, driver.Email)
	assert.True(t, driver.IsActive())

	mock.ExpectQuery(regexp.QuoteMeta("FROM drivers WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestList_FilterByStatus(t *testing.T) {
	repo, mock := newMock(t)
	status := domain.DriverStatusActive

	mock.ExpectQuery(regexp.QuoteMeta("FROM drivers WHERE status = $1 ORDER BY name ASC")).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows(columns))

	drivers, err := repo.List(context.Background(), &status)
	require.NoError(t, err)
	assert.Empty(t, drivers)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM drivers WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrDriverNotFound)
}

func TestDelete_Referenced(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM drivers WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "sales_driver_id_fkey"})

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrDriverInUse)
}
