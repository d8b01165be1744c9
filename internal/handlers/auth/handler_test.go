package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "resort/infras/otel/mocks"
	"resort/internal/domains/auth/model/dto"
	authMocks "resort/internal/domains/auth/service/mocks"
	"resort/internal/handlers/auth"
	"resort/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *authMocks.MockAuth) {
	t.Helper()

	svc := authMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	return rec
}

func TestLogin(t *testing.T) {
	t.Run("returns token pair", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Email: "desk@resort.test", Password: "secret"}).
			Return(dto.TokenResponse{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", ExpiresIn: 900}, nil)

		rec := post(router, "/auth/login", `{"email":"desk@resort.test","password":"secret"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.TokenResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "a", body.Data.AccessToken)
		assert.Equal(t, int64(900), body.Data.ExpiresIn)
	})

	t.Run("rejects malformed email before the service", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := post(router, "/auth/login", `{"email":"nope","password":"secret"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "email")
	})

	t.Run("passes through service status", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.TokenResponse{}, failure.Unauthorized("invalid email or password"))

		rec := post(router, "/auth/login", `{"email":"desk@resort.test","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"invalid email or password"}`, rec.Body.String())
	})
}

func TestRegister(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(failure.Conflict("email already registered"))

	rec := post(router, "/auth/register", `{"email":"new@resort.test","password":"password123","full_name":"New"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestChangePassword_SameAsCurrent(t *testing.T) {
	router, _ := newRouter(t)

	rec := post(router, "/auth/change-password", `{"current_password":"password123","new_password":"password123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
