package helper

import (
	"context"
	"errors"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/infras/postgres"
	authDto "resort/internal/domains/auth/model/dto"
	userModel "resort/internal/domains/user/model"
	userRepo "resort/internal/domains/user/repository"
	"resort/shared/constant"
	"resort/shared/password"
	gRepo "resort/shared/repository"
	"resort/shared/validator"

	"github.com/rs/zerolog/log"
)

var ErrAdminExists = errors.New("admin account already exists")

// SeedAdmin creates the first back-office account, since registering users requires an admin.
func SeedAdmin(cfg *config.Config, email, plain, fullName string) error {
	req := authDto.RegisterRequest{
		Email:    email,
		Password: plain,
		FullName: fullName,
		Role:     constant.RoleAdmin,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}

	db := postgres.New(cfg)
	defer db.Close()

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	repo := userRepo.New(db, otel.New(cfg))

	err = repo.Insert(context.Background(), req.ToUserModel(constant.SystemUser, hashed))
	if gRepo.IsUniqueViolation(err, userModel.ConstraintEmailUnique) {
		return ErrAdminExists
	}

	if err != nil {
		return fmt.Errorf("error seeding admin account: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("Admin account seeded successfully")

	return nil
}
