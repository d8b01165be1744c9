package user

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/user/model"
	"resort/internal/domains/user/model/dto"
	"resort/internal/domains/user/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Handler serves admin account management. Accounts are created through /auth/register.
type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{service: service, otel: otel}
}

func (handler *Handler) trace(r *http.Request, endpoint string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".User."+endpoint)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(users chi.Router) {
		users.Get("/", handler.GetUsers)
		users.Get("/{id}", handler.GetUserByID)
		users.Patch("/{id}", handler.UpdateUser)
	})
}

// GetUsers lists back-office accounts.
// @Summary List accounts
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Paging and sort_by (email, full_name, role, last_login)"
// @Param role query string false "Exact role"
// @Param active query boolean false "Active accounts only or inactive only"
// @Param email query string false "Email substring"
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 403 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetUsers")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	switch params.SortBy {
	case model.FieldEmail, model.FieldFullName, model.FieldRole, model.FieldLastLogin:
		params.SortBy = model.TableName + "." + params.SortBy
	default:
		params.SortBy = model.TableName + "." + model.FieldEmail
	}

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirAsc
	}

	query := r.URL.Query()
	filter := gDto.All()
	filter.FromQuery(query, model.TableName, gDto.FilterOperatorEq, model.FieldRole)
	filter.FromQuery(query, model.TableName, gDto.FilterOperatorLike, model.FieldEmail)
	filter.FlagsFromQuery(query, model.TableName, model.FieldActive)

	users, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		response.Fail(w, scope, err, "failed to list users")

		return
	}

	response.WithJSON(w, http.StatusOK, users)
}

// GetUserByID shows one account.
// @Summary Show an account
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetUserByID")
	defer scope.End()

	user, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to load user")

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateUser changes role, name or active state. Deactivated accounts can no longer log in.
// @Summary Update an account
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "UpdateUser")
	defer scope.End()

	var req dto.UpdateUserRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "rejected user update body")

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to update user")

		return
	}

	response.WithMessage(w, http.StatusOK, "User updated successfully")
}
