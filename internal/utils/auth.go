package utils

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/docforge/docforge-backend/internal/normalization"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/types"

	errs "github.com/docforge/docforge-backend/internal/pkg/errors"
)

func ValidateRegistration(ctx context.Context, userRepo repos.UserRepo, user *types.User) error {
	if user == nil {
		return fmt.Errorf("%w: no user given", errs.ErrInvalidArgument)
	}
	if user.Email == "" {
		return fmt.Errorf("%w: an email is required to register", errs.ErrInvalidArgument)
	}
	if user.Password == "" {
		return fmt.Errorf("%w: a password is required to register", errs.ErrInvalidArgument)
	}
	if user.Name == "" {
		return fmt.Errorf("%w: a name is required to register", errs.ErrInvalidArgument)
	}
	emailExists, err := userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check user email: %w", err)
	}
	if emailExists {
		return fmt.Errorf("%w: email is already registered", errs.ErrInvalidArgument)
	}
	return nil
}

func ValidateLogin(email, password string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required to login", errs.ErrInvalidArgument)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required to login", errs.ErrInvalidArgument)
	}
	return nil
}

func HashPassword(user *types.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	return nil
}

func NormalizeUserFields(user *types.User) {
	user.Email = normalization.ParseInputString(user.Email)
	user.Name = normalization.TrimInputString(user.Name)
}
