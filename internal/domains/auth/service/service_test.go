package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	userMocks "resort/internal/domains/user/mocks"
	userModel "resort/internal/domains/user/model"
	"resort/shared/constant"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/password"
	"resort/shared/timezone"
)

type fixture struct {
	repo *userMocks.MockUser
	jwt  *jwtMocks.MockJWT
	svc  service.Auth
	user userModel.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	hashed, err := password.Hash("password")
	require.NoError(t, err)

	f := fixture{
		repo: userMocks.NewMockUser(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
		user: userModel.User{
			ID:       "user-id-123",
			Email:    "staff@resort.example",
			Password: hashed,
			FullName: "Front Desk",
			Role:     constant.RoleStaff,
			Active:   true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  constant.SystemUser,
				ModifiedBy: constant.SystemUser,
			},
		},
	}
	f.svc = service.New(f.repo, &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func withUser(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "New.Staff@Resort.Example",
		Password: "password123",
		FullName: "New Staff",
	}

	tests := []struct {
		name     string
		setup    func(f fixture)
		wantCode int
		wantErr  bool
	}{
		{
			name: "creates staff account",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u userModel.User) error {
						assert.Equal(t, "new.staff@resort.example", u.Email)
						assert.Equal(t, constant.RoleStaff, u.Role)
						assert.Equal(t, "admin-1", u.CreatedBy)
						assert.NoError(t, password.Verify("password123", u.Password))

						return nil
					})
			},
		},
		{
			name: "email already registered",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert loses race on unique email",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: userModel.ConstraintEmailUnique})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "exist check fails",
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Register(withUser("admin-1"), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tokenPair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer"}

	tests := []struct {
		name     string
		req      dto.LoginRequest
		setup    func(f fixture)
		wantCode int
		wantErr  bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "staff@resort.example", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)
				f.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), jwt.Subject{UserID: f.user.ID, Email: f.user.Email, Role: f.user.Role}).
					Return(tokenPair, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "user not found",
			req:  dto.LoginRequest{Email: "ghost@resort.example", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "staff@resort.example", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "staff@resort.example", Password: "wrongpassword"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "staff@resort.example", Password: "password"},
			setup: func(f fixture) {
				inactive := f.user
				inactive.Active = false
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "staff@resort.example", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(nil, errors.New("signing failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "last login update failure still logs in",
			req:  dto.LoginRequest{Email: "staff@resort.example", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(tokenPair, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", result.AccessToken)
				assert.Equal(t, "refresh-token", result.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful token refresh", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().
			RefreshTokens(gomock.Any(), "valid-refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access-token", RefreshToken: "new-refresh-token"}, nil)

		result, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", result.AccessToken)
		assert.Equal(t, "new-refresh-token", result.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().
			RefreshTokens(gomock.Any(), "invalid-refresh-token").
			Return(nil, errors.New("invalid token"))

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		req      dto.ChangePasswordRequest
		setup    func(f fixture)
		wantCode int
		wantErr  bool
	}{
		{
			name: "successful password change",
			ctx:  withUser("user-id-123"),
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						hashed, ok := fields[userModel.FieldPassword].(string)
						assert.True(t, ok)
						assert.NoError(t, password.Verify("newpassword123", hashed))
						assert.Equal(t, "user-id-123", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name:     "missing user in context",
			ctx:      context.Background(),
			req:      dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setup:    func(fixture) {},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "user not found",
			ctx:  withUser("nonexistent-id"),
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "wrong current password",
			ctx:  withUser("user-id-123"),
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword123"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update password error",
			ctx:  withUser("user-id-123"),
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.ChangePassword(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	t.Run("returns profile", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(f.user, nil)

		res, err := f.svc.Me(withUser(f.user.ID))

		assert.NoError(t, err)
		assert.Equal(t, f.user.Email, res.Email)
		assert.Equal(t, constant.RoleStaff, res.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := f.svc.Me(withUser("ghost"))

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
