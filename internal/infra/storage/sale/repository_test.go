package sale

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
	"github.com/m04kA/WJL-TicketService/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock, db
}

func sampleSale() *domain.Sale {
	return &domain.Sale{
		ID:             "WJL-1700000000000-ABCDE",
		PassengerName:  "Ana Quispe",
		PassengerDNI:   "12345678",
		PassengerPhone: "987654321",
		FromCity:       "Lima",
		ToCity:         "Huancayo",
		DriverID:       3,
		DriverName:     "Juan Pérez",
		RouteID:        1,
		SeatNumber:     5,
		Price:          40,
		Total:          40,
		TravelDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		ScheduleTime:   "08:00",
		Status:         domain.SaleStatusPaid,
	}
}

func saleRows(sales ...*domain.Sale) *sqlmock.Rows {
	rows := sqlmock.NewRows(columns)
	now := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)
	for _, s := range sales {
		rows.AddRow(s.ID, s.PassengerName, s.PassengerDNI, s.PassengerPhone, s.FromCity, s.ToCity,
			s.DriverID, s.DriverName, s.RouteID, s.SeatNumber, s.Price, s.Total,
			s.TravelDate, s.ScheduleTime, string(s.Status), now, now)
	}
	return rows
}

func TestCreate_Success(t *testing.T) {
	repo, mock, _ := newMock(t)
	sale := sampleSale()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sales")).
		WithArgs(sale.ID, sale.PassengerName, sale.PassengerDNI, sale.PassengerPhone, sale.FromCity, sale.ToCity,
			sale.DriverID, sale.DriverName, sale.RouteID, sale.SeatNumber, sale.Price, sale.Total,
			"2025-01-10", sale.ScheduleTime, sale.Status).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), sale)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ActiveSeatIndexViolation(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sales")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "sales_active_seat_uidx"})

	_, err := repo.Create(context.Background(), sampleSale())
	assert.ErrorIs(t, err, ErrSeatTaken)
}

func TestCreate_PrimaryKeyViolation(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sales")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "sales_pkey"})

	_, err := repo.Create(context.Background(), sampleSale())
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.NotErrorIs(t, err, ErrSeatTaken)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sales WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestGetByID_LocksRowInsideTransaction(t *testing.T) {
	repo, mock, db := newMock(t)
	sale := sampleSale()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
		WithArgs(sale.ID).
		WillReturnRows(saleRows(sale))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	got, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.SeatNumber, got.SeatNumber)
	assert.Equal(t, domain.SaleStatusPaid, got.Status)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_AppliesFilters(t *testing.T) {
	repo, mock, _ := newMock(t)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	driver := "  juan "
	dni := "12345678"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE travel_date = $1 AND driver_name ILIKE $2 AND passenger_dni = $3 AND status NOT IN ($4) ORDER BY created_at DESC, id DESC")).
		WithArgs("2025-01-10", "%juan%", dni, domain.SaleStatusCancelled).
		WillReturnRows(saleRows(sampleSale()))

	sales, err := repo.List(context.Background(), domain.SalesFilter{
		TravelDate:   &date,
		DriverName:   &driver,
		PassengerDNI: &dni,
		ActiveOnly:   true,
	})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "WJL-1700000000000-ABCDE", sales[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsSeatTaken(t *testing.T) {
	t.Run("free seat", func(t *testing.T) {
		repo, mock, _ := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM sales")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		taken, err := repo.IsSeatTaken(context.Background(), 1, "2025-01-10", "08:00", 5, "")
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("taken excluding self", func(t *testing.T) {
		repo, mock, _ := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("AND id <> $6 LIMIT 1")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("WJL-other"))

		taken, err := repo.IsSeatTaken(context.Background(), 1, "2025-01-10", "08:00", 5, "WJL-self")
		require.NoError(t, err)
		assert.True(t, taken)
	})
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sales SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), sampleSale())
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestUpdate_SeatConflict(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sales SET")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "sales_active_seat_uidx"})

	err := repo.Update(context.Background(), sampleSale())
	assert.ErrorIs(t, err, ErrSeatTaken)
}

func TestDelete(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales WHERE id = $1")).
		WithArgs("WJL-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales WHERE id = $1")).
		WithArgs("WJL-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "WJL-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "WJL-2"), ErrSaleNotFound)
}

func TestCountByDriver(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sales WHERE driver_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountByDriver(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
