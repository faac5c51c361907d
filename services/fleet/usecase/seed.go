package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
)

// Seeder creates the bootstrap accounts and vehicles of a fresh deployment.
// Existing rows are left untouched, so running it on every start is safe.
type Seeder struct {
	userRepo    fleet.UserRepo
	vehicleRepo fleet.VehicleRepo
	bcryptCost  int
	now         func() time.Time
}

// NewSeeder creates a new seeder
func NewSeeder(cfg *models.Config, userRepo fleet.UserRepo, vehicleRepo fleet.VehicleRepo) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		bcryptCost:  cfg.JWT.BcryptCost,
		now:         time.Now,
	}
}

// Run inserts whatever part of data does not exist yet
func (s *Seeder) Run(ctx context.Context, data *models.SeedData) error {
	var created, skipped int

	accounts := append(append([]models.SeedAccount{}, data.Accounts...), data.Drivers...)
	for _, acc := range accounts {
		user, err := s.seedUser(acc)
		if err != nil {
			return err
		}
		ok, err := s.userRepo.SeedUser(ctx, user)
		if err != nil {
			return err
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	for _, sv := range data.Vehicles {
		now := s.now().UTC()
		vehicle := &models.Vehicle{
			ID:               uuid.New(),
			VehicleNumber:    strings.ToUpper(strings.TrimSpace(sv.VehicleNumber)),
			Type:             sv.Type,
			Status:           models.VehicleStatusAvailable,
			LastMileageReset: now,
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		ok, err := s.vehicleRepo.SeedVehicle(ctx, vehicle)
		if err != nil {
			return err
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	logger.Info("Seed applied",
		logger.Int("created", created),
		logger.Int("skipped", skipped))
	return nil
}

func (s *Seeder) seedUser(acc models.SeedAccount) (*models.User, error) {
	hash, err := hashPassword(acc.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password for %s: %w", acc.Email, err)
	}

	now := s.now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Name:         acc.Name,
		Email:        strings.ToLower(strings.TrimSpace(acc.Email)),
		Phone:        acc.Phone,
		PasswordHash: hash,
		Role:         acc.Role,
		IsHardcoded:  acc.System,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.IsDriver() {
		status := models.DriverStatusAvailable
		user.Status = &status
	}
	return user, nil
}
