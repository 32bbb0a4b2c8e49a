package server

import (
	"net/http"
	"testing"
	"time"

	"ptgym/internal/auth"
	"ptgym/internal/config"
	"ptgym/internal/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	database := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { database.Close() })

	cfg := &config.Config{
		Env:              "test",
		Port:             "0",
		JWTSecret:        testSecret,
		SlotStepMinutes:  30,
		TicketUniqueness: config.TicketUniquenessAny,
		RateLimitRPS:     100,
		RateLimitBurst:   100,
		Location:         time.UTC,
	}

	srv := New(database, cfg, notification.Nop{})
	t.Cleanup(srv.limiter.Stop)
	return srv, mock
}

func bearer(t *testing.T, id int64, role string) map[string]string {
	t.Helper()
	token, err := auth.GenerateAccessToken(id, role, testSecret)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestHealth(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectPing()
	w := serve(srv.Router(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	mock.ExpectPing().WillReturnError(assert.AnError)
	w = serve(srv.Router(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv.Router(), http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestProtectedRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		header func(t *testing.T) map[string]string
		want   int
	}{
		{
			name:   "missing token",
			method: http.MethodGet,
			path:   "/schedules/3",
			header: func(t *testing.T) map[string]string { return nil },
			want:   http.StatusUnauthorized,
		},
		{
			name:   "garbage token",
			method: http.MethodGet,
			path:   "/schedules/3",
			header: func(t *testing.T) map[string]string { return map[string]string{"Authorization": "Bearer nope"} },
			want:   http.StatusUnauthorized,
		},
		{
			name:   "trainer edits another trainer's availability",
			method: http.MethodPut,
			path:   "/trainers/2/availability",
			header: func(t *testing.T) map[string]string { return bearer(t, 1, auth.RoleTrainer) },
			want:   http.StatusForbidden,
		},
		{
			name:   "member edits trainer availability",
			method: http.MethodPut,
			path:   "/trainers/1/availability",
			header: func(t *testing.T) map[string]string { return bearer(t, 1, auth.RoleUser) },
			want:   http.StatusForbidden,
		},
		{
			name:   "member reads another member's tickets",
			method: http.MethodGet,
			path:   "/users/3/change-tickets",
			header: func(t *testing.T) map[string]string { return bearer(t, 2, auth.RoleUser) },
			want:   http.StatusForbidden,
		},
		{
			name:   "trainer reads a member's ticket history",
			method: http.MethodGet,
			path:   "/users/2/change-tickets/history",
			header: func(t *testing.T) map[string]string { return bearer(t, 1, auth.RoleTrainer) },
			want:   http.StatusForbidden,
		},
		{
			name:   "member searches members",
			method: http.MethodGet,
			path:   "/members/search?name=Lee&phone_number=010",
			header: func(t *testing.T) map[string]string { return bearer(t, 2, auth.RoleUser) },
			want:   http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mock := newTestServer(t)

			w := serve(srv.Router(), tt.method, tt.path, tt.header(t))

			assert.Equal(t, tt.want, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv.Router(), http.MethodGet, "/bookings", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
