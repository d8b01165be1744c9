package materialorder

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/materialorder/model"
	"resort/internal/domains/materialorder/model/dto"
	"resort/internal/domains/materialorder/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// sortable maps the accepted sort_by values to qualified columns.
var sortable = map[string]string{
	model.FieldCreatedAt:        model.TableName + "." + model.FieldCreatedAt,
	model.FieldOrderDate:        model.TableName + "." + model.FieldOrderDate,
	model.FieldExpectedDelivery: model.TableName + "." + model.FieldExpectedDelivery,
	model.FieldTotalAmount:      model.TableName + "." + model.FieldTotalAmount,
	model.FieldSupplier:         model.TableName + "." + model.FieldSupplier,
}

type Handler struct {
	service service.MaterialOrder
	otel    otel.Otel
}

func New(service service.MaterialOrder, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) trace(r *http.Request, endpoint string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+endpoint)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/material-orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/{id}", handler.GetOrderByID)
		routerGroup.Patch("/{id}", handler.UpdateOrder)
		routerGroup.Delete("/{id}", handler.DeleteOrder)
	})
}

// CreateOrder records a supplier order with its lines.
// @Summary Create a material order
// @Tags MaterialOrder
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order with at least one line"
// @Success 201 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/material-orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	order, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to create material order")

		return
	}

	scope.AddEvent("Material order created by user " + shared.UserID(ctx))

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders lists supplier orders, newest first unless sort_by says otherwise.
// @Summary List material orders
// @Tags MaterialOrder
// @Produce json
// @Param pagination query gDto.QueryParams false "Paging and sort_by (created_at, order_date, expected_delivery, total_amount, supplier)"
// @Param status query string false "Exact status"
// @Param supplier query string false "Supplier substring"
// @Success 200 {object} response.Data[dto.GetOrdersResponse]
// @Failure 500 {object} response.Error
// @Router /v1/material-orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetOrders")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	column, ok := sortable[params.SortBy]
	if !ok {
		column = sortable[model.FieldCreatedAt]
	}

	params.SortBy = column

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	query := r.URL.Query()
	filter := gDto.All()
	filter.FromQuery(query, model.TableName, gDto.FilterOperatorEq, model.FieldStatus)
	filter.FromQuery(query, model.TableName, gDto.FilterOperatorLike, model.FieldSupplier)

	orders, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		response.Fail(w, scope, err, "failed to list material orders")

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// GetOrderByID shows one order with its lines.
// @Summary Show a material order
// @Tags MaterialOrder
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 404 {object} response.Error
// @Router /v1/material-orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetOrderByID")
	defer scope.End()

	order, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to load material order")

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// UpdateOrder edits an order or moves it along pending, ordered, received.
// @Summary Update a material order
// @Tags MaterialOrder
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/material-orders/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "UpdateOrder")
	defer scope.End()

	req := dto.UpdateOrderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to update material order")

		return
	}

	scope.AddEvent("Material order updated by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Material order updated successfully")
}

// DeleteOrder removes an order and its lines.
// @Summary Delete a material order
// @Tags MaterialOrder
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/material-orders/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "DeleteOrder")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete material order")

		return
	}

	scope.AddEvent("Material order deleted by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Material order deleted successfully")
}
