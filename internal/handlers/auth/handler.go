package auth

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	"resort/shared/constant"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) trace(r *http.Request, endpoint string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Auth."+endpoint)
}

// decode validates the JSON body into req and answers 400 itself when it is rejected.
func decode[T any](w http.ResponseWriter, r *http.Request, scope otel.Scope, req *T) bool {
	if err := validator.Validate(r.Body, req); err != nil {
		response.Fail(w, scope, err, "rejected auth request body")

		return false
	}

	return true
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
		r.Get("/me", handler.Me)
		r.Post("/change-password", handler.ChangePassword)
	})
}

// Register creates a staff or admin account.
// @Summary Register a back-office account
// @Description Create a staff or admin account. Restricted to admins.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
// @Security BearerAuth
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "Register")
	defer scope.End()

	var req dto.RegisterRequest
	if !decode(w, r, scope, &req) {
		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		response.Fail(w, scope, err, "failed to register user")

		return
	}

	scope.AddEvent("account registered for " + req.Email)

	response.WithMessage(w, http.StatusCreated, "User registered successfully")
}

// Login exchanges email and password for a token pair.
// @Summary Login
// @Description Returns an access and refresh token for an active account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.TokenResponse] "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "Login")
	defer scope.End()

	var req dto.LoginRequest
	if !decode(w, r, scope, &req) {
		return
	}

	tokens, err := handler.service.Login(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "login failed")

		return
	}

	response.WithJSON(w, http.StatusOK, tokens)
}

// RefreshToken rotates a token pair.
// @Summary Refresh tokens
// @Description Trade a refresh token for a new access and refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.TokenResponse] "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "RefreshToken")
	defer scope.End()

	var req dto.RefreshTokenRequest
	if !decode(w, r, scope, &req) {
		return
	}

	tokens, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "token refresh failed")

		return
	}

	response.WithJSON(w, http.StatusOK, tokens)
}

// Me returns the caller profile.
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "Me")
	defer scope.End()

	profile, err := handler.service.Me(ctx)
	if err != nil {
		response.Fail(w, scope, err, "failed to load profile")

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "ChangePassword")
	defer scope.End()

	var req dto.ChangePasswordRequest
	if !decode(w, r, scope, &req) {
		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		response.Fail(w, scope, err, "failed to change password")

		return
	}

	scope.AddEvent("Password changed")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
