package config

import (
	"fmt"
	"strings"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/spf13/viper"
)

// LoadSeed reads the bootstrap seed file. Account passwords may be overridden
// per role with SEED_<ROLE>_PASSWORD, e.g. SEED_PROJECT_MANAGER_PASSWORD.
func LoadSeed(path string) (*models.SeedData, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("seed")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var data models.SeedData
	if err := v.Unmarshal(&data); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}

	for i := range data.Accounts {
		key := strings.ToLower(string(data.Accounts[i].Role)) + "_password"
		if override := v.GetString(key); override != "" {
			data.Accounts[i].Password = override
		}
	}

	if err := validateSeed(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

func validateSeed(data *models.SeedData) error {
	for _, acc := range append(append([]models.SeedAccount{}, data.Accounts...), data.Drivers...) {
		if acc.Email == "" || acc.Password == "" {
			return fmt.Errorf("seed account %q requires email and password", acc.Name)
		}
		if !acc.Role.Valid() {
			return fmt.Errorf("seed account %q has unknown role %q", acc.Email, acc.Role)
		}
	}
	for _, d := range data.Drivers {
		if d.Role != models.RoleDriver {
			return fmt.Errorf("seed driver %q must have role driver", d.Email)
		}
	}
	for _, veh := range data.Vehicles {
		if veh.VehicleNumber == "" || !veh.Type.Valid() {
			return fmt.Errorf("seed vehicle %q is invalid", veh.VehicleNumber)
		}
	}
	return nil
}
