package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/otel"
	"resort/internal/domains/auth/model/dto"
	userModel "resort/internal/domains/user/model"
	userRepo "resort/internal/domains/user/repository"
	"resort/shared"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/password"
	gRepo "resort/shared/repository"
	"resort/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

// errBadCredentials is shared by unknown email and wrong password so logins cannot probe accounts.
var errBadCredentials = failure.Unauthorized("invalid email or password")

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	Me(ctx context.Context) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	users userRepo.User
	cfg   *config.Config
	otel  otel.Otel
	jwt   jwt.JWT
}

func New(users userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		users: users,
		cfg:   cfg,
		otel:  otel,
		jwt:   jwt,
	}
}

func (s *serviceImpl) trace(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth."+operation)
}

// Register creates a back-office account. Only admins reach this through the router.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.trace(ctx, "Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := strings.ToLower(req.Email)

	taken, err := s.users.Exist(ctx, userRepo.ByEmail(email))
	if err != nil {
		return fmt.Errorf("failed to check email %s: %w", email, err)
	}

	if taken {
		return failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.users.Insert(ctx, req.ToUserModel(shared.Actor(ctx), hashed))

	switch {
	case err == nil:
		log.Info().Str("email", email).Msg("account registered")

		return nil
	case gRepo.IsUniqueViolation(err, userModel.ConstraintEmailUnique):
		return failure.Conflict("email already registered") // nolint:wrapcheck
	default:
		return fmt.Errorf("failed to insert user: %w", err)
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.trace(ctx, "Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.users.Get(ctx, userRepo.ByEmail(strings.ToLower(req.Email)))
	if err != nil {
		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" || password.Verify(req.Password, user.Password) != nil {
		log.Warn().Str("email", req.Email).Msg("rejected login")

		return res, errBadCredentials
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	if res, err = s.issue(ctx, user); err != nil {
		return res, err
	}

	// A stale last_login must not lock anyone out.
	stamp := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, user.ID)
	if err := s.users.Update(ctx, stamp, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.trace(ctx, "RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.jwt.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.trace(ctx, "ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	if password.Verify(req.CurrentPassword, user.Password) != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashed}, user.ID)
	if err = s.users.Update(ctx, fields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		return fmt.Errorf("failed to update password for %s: %w", user.ID, err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.trace(ctx, "Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.currentUser(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

// currentUser loads the account behind the access token.
func (s *serviceImpl) currentUser(ctx context.Context) (userModel.User, error) {
	id := shared.UserID(ctx)
	if id == "" {
		return userModel.User{}, failure.Unauthorized("missing user context") // nolint:wrapcheck
	}

	user, err := s.users.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		return user, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	if user.ID == "" {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) issue(ctx context.Context, user userModel.User) (res dto.TokenResponse, err error) {
	pair, err := s.jwt.GenerateTokenPair(ctx, jwt.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(pair)

	return res, nil
}
