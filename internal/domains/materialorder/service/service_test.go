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
	orderMocks "resort/internal/domains/materialorder/mocks"
	"resort/internal/domains/materialorder/model"
	"resort/internal/domains/materialorder/model/dto"
	"resort/internal/domains/materialorder/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
}

func TestMaterialOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := orderMocks.NewMockMaterialOrder(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.CreateOrderRequest{
		Supplier:  "Bali Timber",
		OrderDate: "2026-10-01",
		Items: []dto.CreateItemRequest{
			{ItemName: "Teak plank", Quantity: 4, UnitPrice: 25},
			{ItemName: "Varnish", Quantity: 2, UnitPrice: 15},
		},
	}

	t.Run("order and lines are stored together", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order model.Order, items []model.Item) error {
				assert.Equal(t, "admin-id", order.CreatedBy)
				assert.Equal(t, model.StatusPending, order.Status)
				assert.InDelta(t, 130.0, order.TotalAmount, 0.001)
				require.Len(t, items, 2)
				assert.Equal(t, order.ID, items[1].OrderID)

				return nil
			})

		res, err := svc.Create(adminContext(), req)

		require.NoError(t, err)
		assert.Equal(t, "2026-10-01", res.OrderDate)
		assert.Len(t, res.Items, 2)
		assert.InDelta(t, 130.0, res.TotalAmount, 0.001)
	})

	t.Run("malformed order date", func(t *testing.T) {
		bad := req
		bad.OrderDate = "01/10/2026"

		_, err := svc.Create(adminContext(), bad)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := svc.Create(adminContext(), req)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestMaterialOrderService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := orderMocks.NewMockMaterialOrder(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("orders carry their own lines", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Order{{ID: "o-1"}, {ID: "o-2"}}, nil)
		mockRepo.EXPECT().Items(gomock.Any(), "o-1", "o-2").Return([]model.Item{
			{ID: "i-1", OrderID: "o-2", ItemName: "Rope"},
			{ID: "i-2", OrderID: "o-1", ItemName: "Paint"},
		}, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		require.NoError(t, err)
		require.Len(t, res.Orders, 2)
		assert.Equal(t, "Paint", res.Orders[0].Items[0].ItemName)
		assert.Equal(t, "Rope", res.Orders[1].Items[0].ItemName)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("item lookup error", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Order{{ID: "o-1"}}, nil)
		mockRepo.EXPECT().Items(gomock.Any(), "o-1").Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestMaterialOrderService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := orderMocks.NewMockMaterialOrder(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{ID: "o-1", Supplier: "Bali Timber"}, nil)
		mockRepo.EXPECT().Items(gomock.Any(), "o-1").Return([]model.Item{{ID: "i-1", OrderID: "o-1"}}, nil)

		res, err := svc.Get(context.Background(), "o-1")

		require.NoError(t, err)
		assert.Equal(t, "Bali Timber", res.Supplier)
		assert.Len(t, res.Items, 1)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestMaterialOrderService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := orderMocks.NewMockMaterialOrder(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	current := func(status string) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldStatus).
			Return(model.Order{ID: "o-1", Status: status}, nil)
	}

	tests := []struct {
		name      string
		req       dto.UpdateOrderRequest
		setupMock func()
		wantCode  int
	}{
		{
			name:      "empty request",
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateOrderRequest{Status: model.StatusOrdered},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldStatus).Return(model.Order{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "pending order is placed",
			req:  dto.UpdateOrderRequest{Status: model.StatusOrdered},
			setupMock: func() {
				current(model.StatusPending)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusOrdered, fields[model.FieldStatus])
						assert.Equal(t, "admin-id", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "received order cannot be cancelled",
			req:  dto.UpdateOrderRequest{Status: model.StatusCancelled},
			setupMock: func() {
				current(model.StatusReceived)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "notes on a closed order",
			req:  dto.UpdateOrderRequest{Notes: "two planks were cracked"},
			setupMock: func() {
				current(model.StatusReceived)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(adminContext(), tt.req, "o-1")

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestMaterialOrderService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := orderMocks.NewMockMaterialOrder(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("deleted", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.Order{ID: "o-1"}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "o-1"))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.Order{}, nil)

		err := svc.Delete(context.Background(), "o-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
