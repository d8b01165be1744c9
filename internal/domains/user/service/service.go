package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/infras/otel"
	"resort/internal/domains/user/model"
	"resort/internal/domains/user/model/dto"
	"resort/internal/domains/user/repository"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

// listColumns never include the password hash.
var listColumns = []string{
	model.FieldID, model.FieldEmail, model.FieldFullName, model.FieldRole, model.FieldActive, model.FieldLastLogin,
	"created_at", "modified_at", "created_by", "modified_by",
}

// User manages back-office accounts on behalf of an admin.
type User interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{repo: repo, otel: otel}
}

func (s *serviceImpl) trace(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User."+operation)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.trace(ctx, "GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.repo.GetAll(ctx, req, filter, listColumns...)
	if err != nil {
		return res, fmt.Errorf("failed to list users: %w", err)
	}

	res.FromModels(users, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.trace(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), listColumns...)
	if err != nil {
		return res, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

// Update applies role, name and active changes. Admins cannot demote or deactivate
// themselves, so at least one admin always keeps access.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.trace(ctx, "Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor := shared.Actor(ctx)
	if actor == id && req.Demotes() {
		return failure.Forbidden("admins cannot demote or deactivate themselves") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check user %s: %w", id, err)
	}

	if !exists {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}

	log.Info().Str("user_id", id).Str("by", actor).Msg("account updated")

	return nil
}
