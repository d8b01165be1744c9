package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/infras/otel/mocks"
	userMocks "resort/internal/domains/user/mocks"
	"resort/internal/domains/user/model"
	"resort/internal/domains/user/model/dto"
	"resort/internal/domains/user/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

func asAdmin(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func newService(t *testing.T) (service.User, *userMocks.MockUser) {
	t.Helper()

	repo := userMocks.NewMockUser(gomock.NewController(t))

	return service.New(repo, mocks.NewOtel()), repo
}

func TestUserService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, columns ...string) ([]model.User, error) {
			assert.NotContains(t, columns, model.FieldPassword)

			return []model.User{{ID: "u-1", Email: "a@resort.test", Role: constant.RoleAdmin, Active: true}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.All())

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "a@resort.test", res.Users[0].Email)
}

func TestUserService_Get(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "ghost")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("db down"))

		_, err := svc.Get(context.Background(), "u-1")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	staff := constant.RoleStaff
	inactive := false
	name := "Night Desk"

	tests := []struct {
		name     string
		id       string
		req      dto.UpdateUserRequest
		setup    func(repo *userMocks.MockUser)
		wantCode int
	}{
		{
			name: "deactivates another account",
			id:   "u-2",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, false, fields[model.FieldActive])
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])
						assert.NotContains(t, fields, model.FieldRole)

						return nil
					})
			},
		},
		{
			name:     "empty request",
			id:       "u-2",
			setup:    func(*userMocks.MockUser) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "admin demoting self",
			id:       "admin-1",
			req:      dto.UpdateUserRequest{Role: &staff},
			setup:    func(*userMocks.MockUser) {},
			wantCode: http.StatusForbidden,
		},
		{
			name: "admin renaming self",
			id:   "admin-1",
			req:  dto.UpdateUserRequest{FullName: &name},
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown account",
			id:   "ghost",
			req:  dto.UpdateUserRequest{FullName: &name},
			setup: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setup(repo)

			err := svc.Update(asAdmin("admin-1"), tt.req, tt.id)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
