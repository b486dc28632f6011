package service

import (
	"context"
	"testing"
	"time"

	"fittrack/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemUserRepo()
	svc := NewAuthService(userRepo, "test-secret", time.Hour)

	user, token, err := svc.Register(ctx, "Alice Smith", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice Smith", user.Name)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.DefaultAvatarURL, user.Avatar)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")
	assert.False(t, user.IsOnboarded)

	loginToken, loginUser, err := svc.Login(ctx, "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)
	assert.Empty(t, loginUser.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemUserRepo(), "test-secret", time.Hour)

	_, _, err := svc.Register(ctx, "Alice Smith", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other Alice", "alice@example.com", "different1")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemUserRepo(), "test-secret", time.Hour)

	_, _, err := svc.Register(ctx, "Alice Smith", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemUserRepo()
	authSvc := NewAuthService(userRepo, "test-secret", time.Hour)
	userSvc := NewUserService(userRepo, nil)

	user, _, err := authSvc.Register(ctx, "Alice Smith", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	updated, err := userSvc.UpdateProfile(ctx, user.ID, "Alice Cooper", "", "newpass123")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, domain.DefaultAvatarURL, updated.Avatar, "empty avatar leaves current value")

	_, _, err = authSvc.Login(ctx, "alice@example.com", "newpass123")
	require.NoError(t, err)
	_, _, err = authSvc.Login(ctx, "alice@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
