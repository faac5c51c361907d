package usecase

import (
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	minPasswordLen   = 8
)

// UserUC implements fleet.UserUC
type UserUC struct {
	userRepo fleet.UserRepo
	cfg      *models.Config
	now      func() time.Time
}

// NewUserUC creates a new user usecase instance
func NewUserUC(cfg *models.Config, userRepo fleet.UserRepo) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// VehicleUC implements fleet.VehicleUC
type VehicleUC struct {
	vehicleRepo fleet.VehicleRepo
	now         func() time.Time
}

// NewVehicleUC creates a new vehicle usecase instance
func NewVehicleUC(vehicleRepo fleet.VehicleRepo) *VehicleUC {
	return &VehicleUC{
		vehicleRepo: vehicleRepo,
		now:         time.Now,
	}
}

func hashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func classify(err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Downstream("Fleet storage failure", err)
}
