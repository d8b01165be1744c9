package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	amenityMocks "resort/internal/domains/amenity/mocks"
	"resort/internal/domains/amenity/model"
	"resort/internal/domains/amenity/model/dto"
	"resort/internal/domains/amenity/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

func TestAmenityService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateAmenityRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateAmenityRequest{Name: "Infinity Pool", Icon: "pool"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Amenity) error {
						assert.Equal(t, "Infinity Pool", m.Name)
						assert.True(t, m.IsActive)
						assert.Equal(t, "admin-id", m.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "duplicate name",
			req:  dto.CreateAmenityRequest{Name: "Infinity Pool"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: model.ConstraintNameUnique})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  dto.CreateAmenityRequest{Name: "Spa"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	params := gDto.QueryParams{Page: 1, Limit: 2}

	t.Run("returns paginated list", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Amenity{
			{ID: "a1", Name: "Pool"},
			{ID: "a2", Name: "Spa"},
		}, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Amenities, 2)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})

	t.Run("list error", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestAmenityService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Amenity{ID: "a1", Name: "Pool", IsActive: true}, nil)

		res, err := svc.Get(context.Background(), "a1")

		assert.NoError(t, err)
		assert.Equal(t, "Pool", res.Name)
		assert.True(t, res.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Amenity{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAmenityService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.UpdateAmenityRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name:      "empty request",
			req:       dto.UpdateAmenityRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateAmenityRequest{Name: "Sauna"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "successful update",
			req:  dto.UpdateAmenityRequest{Icon: "sauna"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "sauna", fields[model.FieldIcon])
						assert.NotContains(t, fields, model.FieldName)

						return nil
					})
			},
		},
		{
			name: "update error",
			req:  dto.UpdateAmenityRequest{Name: "Sauna"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "a1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	t.Run("deletes existing amenity", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "a1"))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
