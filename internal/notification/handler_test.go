package notification

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ptgym/internal/api"
)

func TestService_RegisterToken(t *testing.T) {
	tokens := new(MockTokenRepository)
	svc := NewService(tokens)

	tokens.On("SaveToken", mock.Anything, User(2), "device").Return(nil)

	require.NoError(t, svc.RegisterToken(context.Background(), User(2), "  device "))
	assert.ErrorIs(t, svc.RegisterToken(context.Background(), User(2), "   "), api.ErrBadRequest)
	tokens.AssertExpectations(t)
}

func TestHandler_RegisterTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := new(MockTokenRepository)
	h := NewHandler(NewService(tokens))

	router := gin.New()
	router.PUT("/trainers/:trainerID/fcm-token", h.RegisterTrainerToken)
	router.PUT("/users/:userID/fcm-token", h.RegisterUserToken)

	tokens.On("SaveToken", mock.Anything, Trainer(1), "trainer-device").Return(nil)
	tokens.On("SaveToken", mock.Anything, User(7), "user-device").Return(nil)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"trainer", "/trainers/1/fcm-token", `{"fcm_token":"trainer-device"}`, http.StatusOK},
		{"user", "/users/7/fcm-token", `{"fcm_token":"user-device"}`, http.StatusOK},
		{"missing token", "/users/7/fcm-token", `{}`, http.StatusBadRequest},
		{"bad id", "/users/abc/fcm-token", `{"fcm_token":"x"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	tokens.AssertExpectations(t)
}
