package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/otel"
	"resort/permissions"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type authContextKey int

// internalCallKey marks requests authenticated by the service API key.
const internalCallKey authContextKey = iota

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	table      *permissions.Table
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, table *permissions.Table, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		table:      table,
		cfg:        cfg,
	}
}

func internalCall(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallKey).(bool)

	return internal
}

func (m *authRoleImpl) rule(r *http.Request) (permissions.Rule, bool) {
	if m.table == nil {
		return permissions.Rule{}, false
	}

	return m.table.Find(r.Method, routePattern(r))
}

// APIKey lets other services call in with X-API-Key instead of a staff token. A wrong
// key is rejected outright.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "middleware.APIKey")
		defer scope.End()

		expected := m.cfg.App.APIKey
		if expected == constant.Empty || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(w, failure.ForbiddenError)

			return
		}

		scope.SetAttribute("http.source", "internal")

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, internalCallKey, true)))
	})
}

// Auth resolves the bearer token into caller claims. Public routes also accept
// anonymous callers, and keep the claims of a valid token so staff bookings record who
// made them.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if internalCall(r.Context()) {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "middleware.Auth")
		defer scope.End()

		rule, _ := m.rule(r)
		header := r.Header.Get(constant.RequestHeaderAuthorization)

		claimsCtx, err := m.withClaims(ctx, header)

		switch {
		case err == nil:
			next.ServeHTTP(w, r.WithContext(claimsCtx))
		case rule.Public:
			next.ServeHTTP(w, r)
		default:
			scope.TraceError(err)
			response.WithError(w, err)
		}
	})
}

func (m *authRoleImpl) withClaims(ctx context.Context, header string) (context.Context, error) {
	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return ctx, failure.Unauthorized(err.Error())
	}

	claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
	if err != nil {
		return ctx, failure.Unauthorized(tokenMessage(err))
	}

	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

	return ctx, nil
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	default:
		return "Token validation failed"
	}
}

// RBAC checks the caller role against the route rule. It runs after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if internalCall(r.Context()) {
			next.ServeHTTP(w, r)

			return
		}

		if m.table == nil {
			response.WithError(w, failure.ForbiddenError)

			return
		}

		rule, found := m.rule(r)
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

		if !m.table.Enforce || !found || rule.Allows(role) {
			next.ServeHTTP(w, r)

			return
		}

		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "middleware.RBAC")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"user.role":     role,
			"allowed.roles": rule.Roles,
		})
		scope.TraceError(failure.ForbiddenError)

		response.WithError(w, failure.ForbiddenError)
	})
}

// routePattern resolves the chi pattern that will serve r, before routing has happened.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path); pattern != constant.Empty {
		return pattern
	}

	return r.URL.Path
}
