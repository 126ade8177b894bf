package auth

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	userRepo "github.com/m04kA/WJL-TicketService/internal/infra/storage/user"
	"github.com/m04kA/WJL-TicketService/internal/service/auth/models"
	"github.com/m04kA/WJL-TicketService/internal/session"
)

type fakeUsers struct {
	users   map[string]*domain.User
	created []*domain.User
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	u.ID = int64(len(f.users) + 1)
	f.users[u.Email] = u
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) Count(context.Context) (int, error) { return len(f.users), nil }

// manualClock часы, которые двигает тест
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopGauge struct{}

func (nopGauge) SetActiveSessions(int) {}

const secret = "test-secret-with-enough-length"

func newEnv(t *testing.T) (*Service, *manualClock, *fakeUsers) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUsers{users: map[string]*domain.User{
		"operador@wjl.pe": {
			ID: 7, Name: "Operador", Email: "operador@wjl.pe", PasswordHash: string(hash),
			Role: domain.RoleOperator, Permissions: domain.DefaultPermissions(domain.RoleOperator), Active: true,
		},
	}}
	clock := &manualClock{now: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)}
	manager := session.NewManager(10*time.Minute, clock, nil, nopLogger{}, nopGauge{})

	return NewService(users, manager, secret, clock, nopLogger{}), clock, users
}

func TestLogin_AndAuthenticate(t *testing.T) {
	svc, _, _ := newEnv(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: " Operador@WJL.pe ", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, 600, resp.IdleLimit)
	assert.True(t, resp.User.Permissions.Write)

	sess, err := svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.SessionID, sess.ID())
	assert.True(t, sess.Can(domain.PermissionWrite))
	assert.False(t, sess.Can(domain.PermissionDelete))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newEnv(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "operador@wjl.pe", Password: "otra"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "nadie@wjl.pe", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthenticate_IdleTimeout(t *testing.T) {
	svc, clock, _ := newEnv(t)
	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "operador@wjl.pe", Password: "clave-segura"})
	require.NoError(t, err)

	clock.Advance(9 * time.Minute)
	_, err = svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err, "activity within the idle timeout keeps the session alive")

	clock.Advance(10*time.Minute + time.Second)
	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expired session is removed")
}

func TestAuthenticate_RejectsForgedToken(t *testing.T) {
	svc, _, _ := newEnv(t)
	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "operador@wjl.pe", Password: "clave-segura"})
	require.NoError(t, err)

	other := NewService(&fakeUsers{}, nil, "another-secret-of-enough-length", &manualClock{now: time.Now()}, nopLogger{})
	forged, _, err := other.issueToken(7, resp.User.SessionID, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Authenticate(context.Background(), strings.Repeat("x", 20))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	svc, _, _ := newEnv(t)
	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "operador@wjl.pe", Password: "clave-segura"})
	require.NoError(t, err)

	svc.Logout(context.Background(), resp.User.SessionID)

	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnsureAdmin(t *testing.T) {
	users := &fakeUsers{users: map[string]*domain.User{}}
	svc := NewService(users, nil, secret, &RealTimeProvider{}, nopLogger{})

	require.NoError(t, svc.EnsureAdmin(context.Background(), "Admin", "admin@wjl.pe", "cambiar"))
	require.Len(t, users.created, 1)
	assert.Equal(t, domain.RoleAdmin, users.created[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.created[0].PasswordHash), []byte("cambiar")))

	require.NoError(t, svc.EnsureAdmin(context.Background(), "Admin", "otro@wjl.pe", "x"))
	assert.Len(t, users.created, 1)
}
