package materialorder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "resort/infras/otel/mocks"
	"resort/internal/domains/materialorder/model/dto"
	orderMocks "resort/internal/domains/materialorder/service/mocks"
	"resort/internal/handlers/materialorder"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

const validOrder = `{
	"supplier": "Bali Timber",
	"order_date": "2026-10-01",
	"expected_delivery": "2026-10-15",
	"items": [
		{"item_name": "Teak plank", "quantity": 4, "unit_price": 25},
		{"item_name": "Varnish", "quantity": 2, "unit_price": 15}
	]
}`

func newRouter(t *testing.T) (*chi.Mux, *orderMocks.MockMaterialOrder) {
	t.Helper()

	svc := orderMocks.NewMockMaterialOrder(gomock.NewController(t))
	handler := materialorder.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateOrder(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *orderMocks.MockMaterialOrder)
		wantCode int
		wantBody string
	}{
		{
			name: "order with lines",
			body: validOrder,
			setup: func(svc *orderMocks.MockMaterialOrder) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.CreateOrderRequest) (dto.OrderResponse, error) {
						assert.Len(t, req.Items, 2)

						return dto.OrderResponse{ID: "o-1", Supplier: req.Supplier, TotalAmount: 130}, nil
					})
			},
			wantCode: http.StatusCreated,
			wantBody: "Bali Timber",
		},
		{
			name:     "order without lines",
			body:     `{"supplier": "Bali Timber", "order_date": "2026-10-01", "items": []}`,
			setup:    func(*orderMocks.MockMaterialOrder) {},
			wantCode: http.StatusBadRequest,
			wantBody: "items",
		},
		{
			name:     "line without quantity",
			body:     strings.Replace(validOrder, `"quantity": 4`, `"quantity": 0`, 1),
			setup:    func(*orderMocks.MockMaterialOrder) {},
			wantCode: http.StatusBadRequest,
			wantBody: "quantity",
		},
		{
			name:     "malformed delivery date",
			body:     strings.Replace(validOrder, "2026-10-15", "15/10/2026", 1),
			setup:    func(*orderMocks.MockMaterialOrder) {},
			wantCode: http.StatusBadRequest,
			wantBody: "expected_delivery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodPost, "/material-orders", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestGetOrders_SortWhitelist(t *testing.T) {
	tests := []struct {
		query   string
		sortBy  string
		sortDir string
	}{
		{query: "", sortBy: "material_orders.created_at", sortDir: gDto.SortDirDesc},
		{query: "?sort_by=order_date&sort_dir=ASC", sortBy: "material_orders.order_date", sortDir: gDto.SortDirAsc},
		{query: "?sort_by=notes", sortBy: "material_orders.created_at", sortDir: gDto.SortDirDesc},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			router, svc := newRouter(t)
			svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, params gDto.QueryParams, _ gDto.FilterGroup) (dto.GetOrdersResponse, error) {
					assert.Equal(t, tt.sortBy, params.SortBy)
					assert.Equal(t, tt.sortDir, params.SortDir)

					return dto.GetOrdersResponse{}, nil
				})

			rec := serve(router, http.MethodGet, "/material-orders"+tt.query, "")

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPatch, "/material-orders/o-1", `{"status": "lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "status")
	})

	t.Run("closed order", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Update(gomock.Any(), dto.UpdateOrderRequest{Status: "cancelled"}, "o-1").
			Return(failure.Conflict("material order cannot move from received to cancelled"))

		rec := serve(router, http.MethodPatch, "/material-orders/o-1", `{"status": "cancelled"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
