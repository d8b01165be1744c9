package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/infras/otel"
	"resort/internal/domains/materialorder/model"
	"resort/internal/domains/materialorder/model/dto"
	"resort/internal/domains/materialorder/repository"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

type MaterialOrder interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
	Update(ctx context.Context, req dto.UpdateOrderRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.MaterialOrder
	otel otel.Otel
}

func New(repo repository.MaterialOrder, otel otel.Otel) MaterialOrder {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, items, err := req.ToModel(shared.UserID(ctx))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Create(ctx, order, items); err != nil {
		log.Error().Err(err).Str("supplier", order.Supplier).Msg("failed to create material order")

		return res, fmt.Errorf("failed to create material order: %w", err)
	}

	log.Info().Str("order", order.ID).Int("items", len(items)).Float64("total", order.TotalAmount).Msg("material order created")

	res.FromModel(order, items)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count material orders")

		return res, fmt.Errorf("failed to count material orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get material orders")

		return res, fmt.Errorf("failed to get material orders: %w", err)
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := s.repo.Items(ctx, ids...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get material order items")

		return res, fmt.Errorf("failed to get material order items: %w", err)
	}

	res.FromModels(orders, items, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get material order")

		return res, fmt.Errorf("failed to get material order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound("material order not found") // nolint:wrapcheck
	}

	items, err := s.repo.Items(ctx, order.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get material order items")

		return res, fmt.Errorf("failed to get material order items: %w", err)
	}

	res.FromModel(order, items)

	return res, nil
}

// Update edits an order. Received and cancelled orders only accept notes.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOrderRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get material order")

		return fmt.Errorf("failed to get material order: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("material order not found") // nolint:wrapcheck
	}

	if req.Status != constant.Empty && !model.CanTransition(current.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("material order cannot move from %s to %s", current.Status, req.Status)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.UserID(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update material order")

		return fmt.Errorf("failed to update material order: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get material order")

		return fmt.Errorf("failed to get material order: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("material order not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete material order")

		return fmt.Errorf("failed to delete material order: %w", err)
	}

	return nil
}
