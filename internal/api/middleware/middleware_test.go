package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/auth"
	"github.com/m04kA/WJL-TicketService/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopGauge struct{}

func (nopGauge) SetActiveSessions(int) {}

type fakeAuth struct {
	sess *session.Session
	err  error
	got  string
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*session.Session, error) {
	f.got = token
	return f.sess, f.err
}

type fakeMetrics struct {
	route  string
	status int
}

func (f *fakeMetrics) ObserveHTTPRequest(_ string, route string, status int, _ time.Duration) {
	f.route = route
	f.status = status
}

func newSession(t *testing.T, role domain.Role) *session.Session {
	t.Helper()
	mgr := session.NewManager(10*time.Minute, session.RealClock{}, nil, nopLogger{}, nopGauge{})
	return mgr.Create(context.Background(), &domain.User{
		ID: 1, Name: "Ana", Email: "ana@wjl.pe", Role: role, Permissions: domain.DefaultPermissions(role), Active: true,
	})
}

func okHandler(t *testing.T, want *session.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if want != nil {
			assert.Same(t, want, session.FromContext(r.Context()))
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth(t *testing.T) {
	sess := newSession(t, domain.RoleOperator)
	authenticator := &fakeAuth{sess: sess}
	h := Auth(authenticator, nopLogger{})(okHandler(t, sess))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	req.Header.Set("Authorization", "Bearer abc.def")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc.def", authenticator.got)
}

func TestAuth_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
		want   int
	}{
		{"no header", "", nil, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", nil, http.StatusUnauthorized},
		{"expired", "Bearer abc", auth.ErrSessionExpired, http.StatusUnauthorized},
		{"invalid", "Bearer abc", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"internal", "Bearer abc", errors.New("redis down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Auth(&fakeAuth{err: tt.err}, nopLogger{})(okHandler(t, nil))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMethodPermissions(t *testing.T) {
	viewer := newSession(t, domain.RoleViewer)
	operator := newSession(t, domain.RoleOperator)

	tests := []struct {
		name   string
		sess   *session.Session
		method string
		want   int
	}{
		{"viewer reads", viewer, http.MethodGet, http.StatusNoContent},
		{"viewer cannot write", viewer, http.MethodPost, http.StatusForbidden},
		{"operator writes", operator, http.MethodPut, http.StatusNoContent},
		{"operator cannot delete", operator, http.MethodDelete, http.StatusForbidden},
		{"no session", nil, http.MethodGet, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.sess != nil {
				req = req.WithContext(session.WithContext(req.Context(), tt.sess))
			}
			rec := httptest.NewRecorder()
			MethodPermissions()(okHandler(t, nil)).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequirePermission_Config(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	req = req.WithContext(session.WithContext(req.Context(), newSession(t, domain.RoleOperator)))
	rec := httptest.NewRecorder()

	RequirePermission(domain.PermissionConfig)(okHandler(t, nil)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/sales/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sales/WJL-1", nil))

	assert.Equal(t, "/sales/{id}", m.route)
	assert.Equal(t, http.StatusNotFound, m.status)
}

func TestRequestID(t *testing.T) {
	h := RequestID(nopLogger{})(okHandler(t, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}
