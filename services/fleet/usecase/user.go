package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/internal/utils"
	"github.com/piresc/fleetdispatch/services/fleet"
)

// ListUsers returns one page of active users
func (u *UserUC) ListUsers(ctx context.Context, filter models.UserFilter) (*models.UserList, error) {
	filter.Page, filter.Limit = pageBounds(filter.Page, filter.Limit)

	users, total, err := u.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	return &models.UserList{
		Users:      users,
		Total:      total,
		Page:       filter.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetUser retrieves a user by ID
func (u *UserUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

// CreateUser validates and stores a new account
func (u *UserUC) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	switch {
	case name == "":
		return nil, fleet.ErrInvalidName
	case !utils.IsValidEmail(email):
		return nil, fleet.ErrInvalidEmail
	case !utils.IsValidLocalPhone(phone):
		return nil, fleet.ErrInvalidPhone
	case len(req.Password) < minPasswordLen:
		return nil, fleet.ErrInvalidPassword
	case !req.Role.Valid():
		return nil, fleet.ErrInvalidRole
	}

	if err := u.ensureUnique(ctx, email, phone, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password, u.cfg.JWT.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.IsDriver() {
		status := models.DriverStatusAvailable
		user.Status = &status
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, classify(err)
	}

	logger.Info("User created",
		logger.UUID("user_id", user.ID),
		logger.String("role", string(user.Role)))
	return user, nil
}

// UpdateUser changes the profile of a non-system account
func (u *UserUC) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	user, err := u.modifiableUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fleet.ErrInvalidName
		}
		user.Name = name
	}

	email, phone := "", ""
	if req.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*req.Email))
		if !utils.IsValidEmail(e) {
			return nil, fleet.ErrInvalidEmail
		}
		if e != user.Email {
			email = e
		}
		user.Email = e
	}
	if req.Phone != nil {
		p := strings.TrimSpace(*req.Phone)
		if !utils.IsValidLocalPhone(p) {
			return nil, fleet.ErrInvalidPhone
		}
		if p != user.Phone {
			phone = p
		}
		user.Phone = p
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := u.ensureUnique(ctx, email, phone, user.ID); err != nil {
		return nil, err
	}

	user.UpdatedAt = u.now().UTC()
	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, classify(err)
	}
	return user, nil
}

// DeleteUser deactivates an account that holds no live or in-progress rides
func (u *UserUC) DeleteUser(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if actor.UserID == id {
		return fleet.ErrSelfDelete
	}
	if _, err := u.modifiableUser(ctx, id); err != nil {
		return err
	}

	open, err := u.userRepo.CountOpenRides(ctx, id)
	if err != nil {
		return classify(err)
	}
	if open > 0 {
		return fleet.ErrUserHasRides.WithMessage("Cannot delete user with %d live or in-progress rides", open)
	}

	if err := u.userRepo.DeactivateUser(ctx, id); err != nil {
		return classify(err)
	}
	logger.Info("User deactivated",
		logger.UUID("user_id", id),
		logger.UUID("by", actor.UserID))
	return nil
}

// ResetPassword sets a new password for a non-system account
func (u *UserUC) ResetPassword(ctx context.Context, id uuid.UUID, req models.ResetPasswordRequest) error {
	if len(req.Password) < minPasswordLen {
		return fleet.ErrInvalidPassword
	}
	if _, err := u.modifiableUser(ctx, id); err != nil {
		return err
	}

	hash, err := hashPassword(req.Password, u.cfg.JWT.BcryptCost)
	if err != nil {
		return err
	}
	if err := u.userRepo.UpdatePassword(ctx, id, hash); err != nil {
		return classify(err)
	}
	return nil
}

// ListDrivers returns every active driver
func (u *UserUC) ListDrivers(ctx context.Context) ([]*models.User, error) {
	drivers, err := u.userRepo.ListDrivers(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return drivers, nil
}

// CountUsers groups active accounts by role
func (u *UserUC) CountUsers(ctx context.Context) (*models.UserCounts, error) {
	counts, err := u.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return counts, nil
}

func (u *UserUC) modifiableUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if user.IsHardcoded {
		return nil, fleet.ErrSystemUser
	}
	return user, nil
}

// ensureUnique checks the non-empty email and phone against other accounts
func (u *UserUC) ensureUnique(ctx context.Context, email, phone string, self uuid.UUID) error {
	if email != "" {
		taken, err := u.userRepo.EmailExists(ctx, email, self)
		if err != nil {
			return classify(err)
		}
		if taken {
			return fleet.ErrEmailTaken
		}
	}
	if phone != "" {
		taken, err := u.userRepo.PhoneExists(ctx, phone, self)
		if err != nil {
			return classify(err)
		}
		if taken {
			return fleet.ErrPhoneTaken
		}
	}
	return nil
}
