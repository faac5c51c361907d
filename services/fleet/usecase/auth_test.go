package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	jwtpkg "github.com/piresc/fleetdispatch/internal/pkg/jwt"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/fleet"
	"github.com/piresc/fleetdispatch/services/fleet/mocks"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "fleetdispatch",
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func newTestUserUC(t *testing.T) (*UserUC, *mocks.MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), repo)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func storedUser(t *testing.T, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Name:         "Dilani Silva",
		Email:        "dilani@fleet.lk",
		Phone:        "0712345678",
		PasswordHash: string(hash),
		Role:         models.RoleProjectManager,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	uc, repo := newTestUserUC(t)
	user := storedUser(t, "s3cret-pass")

	repo.EXPECT().GetUserByEmail(gomock.Any(), "dilani@fleet.lk").Return(user, nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{Email: " Dilani@Fleet.lk", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, user, resp.User)

	claims, err := jwtpkg.ParseClaims(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleProjectManager, claims.Role)
}

func TestLogin_Rejections(t *testing.T) {
	inactive := storedUser(t, "s3cret-pass")
	inactive.IsActive = false

	tests := []struct {
		name     string
		password string
		user     *models.User
		repoErr  error
		want     error
	}{
		{name: "unknown email", password: "whatever1", repoErr: fleet.ErrUserNotFound, want: fleet.ErrInvalidCredentials},
		{name: "wrong password", password: "wrong-pass", user: storedUser(t, "s3cret-pass"), want: fleet.ErrInvalidCredentials},
		{name: "inactive account", password: "s3cret-pass", user: inactive, want: fleet.ErrAccountInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUserUC(t)
			repo.EXPECT().GetUserByEmail(gomock.Any(), "dilani@fleet.lk").Return(tt.user, tt.repoErr)

			_, err := uc.Login(context.Background(), models.LoginRequest{Email: "dilani@fleet.lk", Password: tt.password})

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
		})
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	uc, _ := newTestUserUC(t)

	_, err := uc.Login(context.Background(), models.LoginRequest{Email: "dilani@fleet.lk"})

	assert.ErrorIs(t, err, fleet.ErrInvalidCredentials)
}

func TestLogin_StorageFailure(t *testing.T) {
	uc, repo := newTestUserUC(t)
	repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool exhausted"))

	_, err := uc.Login(context.Background(), models.LoginRequest{Email: "dilani@fleet.lk", Password: "s3cret-pass"})

	assert.Equal(t, apperror.KindDownstream, apperror.KindOf(err))
}

func TestMe_Inactive(t *testing.T) {
	uc, repo := newTestUserUC(t)
	user := storedUser(t, "s3cret-pass")
	user.IsActive = false
	repo.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil)

	_, err := uc.Me(context.Background(), user.ID)

	assert.ErrorIs(t, err, fleet.ErrAccountInactive)
}
