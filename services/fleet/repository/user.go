package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
)

const uniqueViolation = "23505"

const userColumns = `id, name, email, phone, password_hash, role, status, assigned_vehicle_id,
	current_ride_id, total_rides, total_distance, is_hardcoded, is_active, created_at, updated_at`

// UserRepo is the postgres implementation of fleet.UserRepo
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepo {
	logger.Info("Initializing user repository")
	return &UserRepo{db: db}
}

// GetUser retrieves a user by ID
func (r *UserRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email, case-insensitively
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

// getUserByField is a helper function to get a user by a specific column
func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListUsers returns one page of active users matching filter and the total count
func (r *UserRepo) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, int, error) {
	conds := []string{"is_active"}
	var args []interface{}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n))
	}
	where := " WHERE " + strings.Join(conds, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)-1, len(args))
	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// ListDrivers returns all active drivers ordered by name
func (r *UserRepo) ListDrivers(ctx context.Context) ([]*models.User, error) {
	drivers := []*models.User{}
	err := r.db.SelectContext(ctx, &drivers,
		`SELECT `+userColumns+` FROM users WHERE role = $1 AND is_active ORDER BY name`, models.RoleDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// CountUsers groups active users by role
func (r *UserRepo) CountUsers(ctx context.Context) (*models.UserCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE role = $1) AS users,
			COUNT(*) FILTER (WHERE role = $2) AS drivers,
			COUNT(*) FILTER (WHERE role = $2 AND status = $3) AS available_drivers,
			COUNT(*) FILTER (WHERE role = $4) AS admins,
			COUNT(*) FILTER (WHERE role = $5) AS project_managers
		FROM users WHERE is_active`

	var counts models.UserCounts
	err := r.db.QueryRowContext(ctx, query,
		models.RoleUser, models.RoleDriver, models.DriverStatusAvailable,
		models.RoleAdmin, models.RoleProjectManager,
	).Scan(
		&counts.Total,
		&counts.Users,
		&counts.Drivers,
		&counts.AvailableDrivers,
		&counts.Admins,
		&counts.ProjectManagers,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return &counts, nil
}

// EmailExists reports whether another account already uses email
func (r *UserRepo) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		strings.ToLower(email), excludeID)
}

// PhoneExists reports whether another account already uses phone
func (r *UserRepo) PhoneExists(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1 AND id <> $2)`, phone, excludeID)
}

func (r *UserRepo) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var ok bool
	if err := r.db.GetContext(ctx, &ok, query, args...); err != nil {
		return false, fmt.Errorf("failed to check uniqueness: %w", err)
	}
	return ok, nil
}

// CreateUser inserts a new user. Unique violations on email or phone map to
// the matching guard errors.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, role, status,
			is_hardcoded, is_active, created_at, updated_at
		) VALUES (:id, :name, :email, :phone, :password_hash, :role, :status,
			:is_hardcoded, :is_active, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if mapped := uniqueUserError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdateUser writes the profile fields of user
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET name = :name, email = :email, phone = :phone,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if mapped := uniqueUserError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return expectOne(res, fleet.ErrUserNotFound)
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return expectOne(res, fleet.ErrUserNotFound)
}

// DeactivateUser soft deletes a user; ride history keeps referencing the row
func (r *UserRepo) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return expectOne(res, fleet.ErrUserNotFound)
}

// CountOpenRides counts live and in-progress rides the user requested or drives
func (r *UserRepo) CountOpenRides(ctx context.Context, id uuid.UUID) (int, error) {
	statuses := append(append([]models.RideStatus{}, models.LiveRideStatuses...), models.RideStatusInProgress)
	query, args, err := sqlx.In(
		`SELECT COUNT(*) FROM rides WHERE (requester_id = ? OR assigned_driver_id = ?) AND status IN (?)`,
		id, id, statuses)
	if err != nil {
		return 0, fmt.Errorf("failed to build open ride count: %w", err)
	}
	var n int
	if err := r.db.GetContext(ctx, &n, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count open rides: %w", err)
	}
	return n, nil
}

// SeedUser inserts user unless the email already exists
func (r *UserRepo) SeedUser(ctx context.Context, user *models.User) (bool, error) {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, role, status,
			is_hardcoded, is_active, created_at, updated_at
		) VALUES (:id, :name, :email, :phone, :password_hash, :role, :status,
			:is_hardcoded, :is_active, :created_at, :updated_at)
		ON CONFLICT (email) DO NOTHING`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return false, fmt.Errorf("failed to seed user %s: %w", user.Email, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to seed user %s: %w", user.Email, err)
	}
	return n > 0, nil
}

func uniqueUserError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return fleet.ErrEmailTaken
	case strings.Contains(pgErr.ConstraintName, "phone"):
		return fleet.ErrPhoneTaken
	}
	return nil
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
