package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
)

// ListVehicles returns active vehicles matching filter
func (v *VehicleUC) ListVehicles(ctx context.Context, filter models.VehicleFilter) ([]*models.Vehicle, error) {
	vehicles, err := v.vehicleRepo.ListVehicles(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}
	return vehicles, nil
}

// GetVehicle retrieves an active vehicle
func (v *VehicleUC) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := v.vehicleRepo.GetVehicle(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return vehicle, nil
}

// CreateVehicle registers a new available vehicle
func (v *VehicleUC) CreateVehicle(ctx context.Context, req models.VehicleRequest) (*models.Vehicle, error) {
	number, err := validVehicle(req)
	if err != nil {
		return nil, err
	}
	if err := v.ensureNumberFree(ctx, number, uuid.Nil); err != nil {
		return nil, err
	}

	now := v.now().UTC()
	vehicle := &models.Vehicle{
		ID:               uuid.New(),
		VehicleNumber:    number,
		Type:             req.Type,
		Status:           models.VehicleStatusAvailable,
		LastMileageReset: now,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := v.vehicleRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, classify(err)
	}

	logger.Info("Vehicle created",
		logger.UUID("vehicle_id", vehicle.ID),
		logger.String("vehicle_number", number))
	return vehicle, nil
}

// UpdateVehicle changes the number and type of a vehicle
func (v *VehicleUC) UpdateVehicle(ctx context.Context, id uuid.UUID, req models.VehicleRequest) (*models.Vehicle, error) {
	number, err := validVehicle(req)
	if err != nil {
		return nil, err
	}
	vehicle, err := v.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if number != vehicle.VehicleNumber {
		if err := v.ensureNumberFree(ctx, number, id); err != nil {
			return nil, err
		}
	}

	vehicle.VehicleNumber = number
	vehicle.Type = req.Type
	vehicle.UpdatedAt = v.now().UTC()
	if err := v.vehicleRepo.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, classify(err)
	}
	return vehicle, nil
}

// DeleteVehicle retires a vehicle that holds no active ride
func (v *VehicleUC) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	if _, err := v.idleVehicle(ctx, id); err != nil {
		return err
	}
	if err := v.vehicleRepo.DeactivateVehicle(ctx, id); err != nil {
		return classify(err)
	}
	logger.Info("Vehicle retired", logger.UUID("vehicle_id", id))
	return nil
}

// SetMaintenance takes an idle vehicle out of service
func (v *VehicleUC) SetMaintenance(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return v.setStatus(ctx, id, models.VehicleStatusMaintenance)
}

// SetAvailable returns an idle vehicle to service
func (v *VehicleUC) SetAvailable(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return v.setStatus(ctx, id, models.VehicleStatusAvailable)
}

func (v *VehicleUC) setStatus(ctx context.Context, id uuid.UUID, status models.VehicleStatus) (*models.Vehicle, error) {
	vehicle, err := v.idleVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := v.vehicleRepo.SetVehicleStatus(ctx, id, status); err != nil {
		return nil, classify(err)
	}

	logger.Info("Vehicle status changed",
		logger.UUID("vehicle_id", id),
		logger.String("from", string(vehicle.Status)),
		logger.String("to", string(status)))

	vehicle.Status = status
	vehicle.CurrentDriverID = nil
	vehicle.CurrentRideID = nil
	vehicle.UpdatedAt = v.now().UTC()
	return vehicle, nil
}

// ResetMonthlyMileage zeroes the monthly counters of the fleet
func (v *VehicleUC) ResetMonthlyMileage(ctx context.Context) (int64, error) {
	n, err := v.vehicleRepo.ResetMonthlyMileage(ctx)
	if err != nil {
		return 0, classify(err)
	}
	logger.Info("Monthly mileage reset", logger.Int64("vehicles", n))
	return n, nil
}

// CountVehicles groups active vehicles by status
func (v *VehicleUC) CountVehicles(ctx context.Context) (*models.VehicleCounts, error) {
	counts, err := v.vehicleRepo.CountVehicles(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return counts, nil
}

func (v *VehicleUC) idleVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := v.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := v.vehicleRepo.CountActiveRides(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if n > 0 {
		return nil, fleet.ErrVehicleHasRides.WithMessage("Vehicle %s has %d active rides", vehicle.VehicleNumber, n)
	}
	return vehicle, nil
}

func (v *VehicleUC) ensureNumberFree(ctx context.Context, number string, self uuid.UUID) error {
	taken, err := v.vehicleRepo.NumberExists(ctx, number, self)
	if err != nil {
		return classify(err)
	}
	if taken {
		return fleet.ErrVehicleNumberTaken
	}
	return nil
}

func validVehicle(req models.VehicleRequest) (string, error) {
	number := strings.ToUpper(strings.TrimSpace(req.VehicleNumber))
	if number == "" || !req.Type.Valid() {
		return "", fleet.ErrInvalidVehicle
	}
	return number, nil
}
