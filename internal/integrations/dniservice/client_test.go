package dniservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestLookup(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantName      string
		wantErr       error
		wantTransport bool
	}{
		{
			name:     "found",
			status:   http.StatusOK,
			body:     `{"nombre_completo":"ANA QUISPE MAMANI"}`,
			wantName: "ANA QUISPE MAMANI",
		},
		{
			name:    "missing name",
			status:  http.StatusOK,
			body:    `{"nombre_completo":""}`,
			wantErr: ErrPersonNotFound,
		},
		{
			name:    "upstream 404",
			status:  http.StatusNotFound,
			wantErr: ErrPersonNotFound,
		},
		{
			name:          "upstream failure",
			status:        http.StatusBadGateway,
			wantErr:       ErrUnavailable,
			wantTransport: true,
		},
		{
			name:          "malformed body",
			status:        http.StatusOK,
			body:          `not json`,
			wantErr:       ErrInvalidResponse,
			wantTransport: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/dni", r.URL.Path)
				assert.Equal(t, "12345678", r.URL.Query().Get("dni"))
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL+"/", "secret", time.Second, nopLogger{})
			person, err := client.Lookup(context.Background(), "12345678")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantTransport, IsTransport(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, person.FullName)
			assert.Equal(t, "12345678", person.DNI)
		})
	}
}

func TestLookup_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, "", time.Second, nopLogger{}).Lookup(context.Background(), "12345678")
	assert.ErrorIs(t, err, ErrUnavailable)
}
