package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role of a user
type Role string

const (
	RoleUser           Role = "user"
	RoleDriver         Role = "driver"
	RoleAdmin          Role = "admin"
	RoleProjectManager Role = "project_manager"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDriver, RoleAdmin, RoleProjectManager:
		return true
	}
	return false
}

// DriverStatus is the availability of a driver
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffline   DriverStatus = "offline"
)

// User represents any account: requesters, drivers, admins and project managers
type User struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	Name              string        `json:"name" db:"name"`
	Email             string        `json:"email" db:"email"`
	Phone             string        `json:"phone" db:"phone"`
	PasswordHash      string        `json:"-" db:"password_hash"`
	Role              Role          `json:"role" db:"role"`
	Status            *DriverStatus `json:"status,omitempty" db:"status"`
	AssignedVehicleID *uuid.UUID    `json:"assignedVehicle,omitempty" db:"assigned_vehicle_id"`
	CurrentRideID     *uuid.UUID    `json:"currentRide,omitempty" db:"current_ride_id"`
	TotalRides        int           `json:"totalRides" db:"total_rides"`
	TotalDistance     float64       `json:"totalDistance" db:"total_distance"`
	IsHardcoded       bool          `json:"isHardcoded" db:"is_hardcoded"`
	IsActive          bool          `json:"isActive" db:"is_active"`
	CreatedAt         time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt" db:"updated_at"`
}

// IsDriver reports whether the user can be assigned to rides
func (u *User) IsDriver() bool {
	return u.Role == RoleDriver
}

// Actor is the authenticated caller of a command
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// LoginRequest is the payload of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      *User  `json:"user"`
}

// CreateUserRequest is the admin payload for a new account
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateUserRequest changes profile fields; empty values are left untouched
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ResetPasswordRequest sets a new password for an account
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// UserFilter narrows user listings
type UserFilter struct {
	Role   *Role
	Status *DriverStatus
	Search string
	Page   int
	Limit  int
}

// Offset returns the SQL offset for the filter's page
func (f UserFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// UserList is a paginated listing
type UserList struct {
	Users      []*User `json:"users"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
}

// UserCounts groups active users by role
type UserCounts struct {
	Total            int `json:"total"`
	Users            int `json:"users"`
	Drivers          int `json:"drivers"`
	AvailableDrivers int `json:"availableDrivers"`
	Admins           int `json:"admins"`
	ProjectManagers  int `json:"projectManagers"`
}
