package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

func TestGetByEmail(t *testing.T) {
	tests := []struct {
		name        string
		role        string
		permissions string
		want        domain.Permissions
	}{
		{
			name:        "stored permissions",
			role:        "operator",
			permissions: `{"read":true,"write":false,"delete":false,"config":false,"reports":true}`,
			want:        domain.Permissions{Read: true, Reports: true},
		},
		{
			name:        "empty permissions fall back to role defaults",
			role:        "admin",
			permissions: `{}`,
			want:        domain.DefaultPermissions(domain.RoleAdmin),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			now := time.Now()

			mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
				WithArgs("ana@wjl.pe").
				WillReturnRows(sqlmock.NewRows(columns).
					AddRow(1, "Ana", "ana@wjl.pe", "hash", tt.role, []byte(tt.permissions), true, now, now))

			user, err := NewRepository(db).GetByEmail(context.Background(), "  Ana@WJL.pe ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, user.Permissions)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = NewRepository(db).GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreate_StoresPermissionsAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Admin", "admin@wjl.pe", "hash", "admin",
			`{"read":true,"write":true,"delete":true,"config":true,"reports":true}`, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	user, err := NewRepository(db).Create(context.Background(), &domain.User{
		Name:         "Admin",
		Email:        "Admin@WJL.pe",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
		Permissions:  domain.DefaultPermissions(domain.RoleAdmin),
		Active:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
