package models

// SeedData is the bootstrap content of a fresh deployment
type SeedData struct {
	Accounts []SeedAccount `mapstructure:"accounts"`
	Drivers  []SeedAccount `mapstructure:"drivers"`
	Vehicles []SeedVehicle `mapstructure:"vehicles"`
}

// SeedAccount is a user created at bootstrap. System marks protected accounts.
type SeedAccount struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Phone    string `mapstructure:"phone"`
	Password string `mapstructure:"password"`
	Role     Role   `mapstructure:"role"`
	System   bool   `mapstructure:"system"`
}

// SeedVehicle is a vehicle created at bootstrap
type SeedVehicle struct {
	VehicleNumber string      `mapstructure:"vehicle_number"`
	Type          VehicleType `mapstructure:"type"`
}
