package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/piresc/fleetdispatch/internal/pkg/jwt"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
)

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords get the same error.
func (u *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fleet.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, fleet.ErrUserNotFound) {
			return nil, fleet.ErrInvalidCredentials
		}
		return nil, classify(err)
	}
	if !user.IsActive {
		return nil, fleet.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Info("Rejected login", logger.String("email", email))
		return nil, fleet.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		logger.UUID("user_id", user.ID),
		logger.String("role", string(user.Role)))

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Me returns the caller's own account
func (u *UserUC) Me(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if !user.IsActive {
		return nil, fleet.ErrAccountInactive
	}
	return user, nil
}
