package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/account"
)

func TestLegacyRegisterAndLogin(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewLegacyAuthService(pool)
	ctx := context.Background()

	username := "legacy_" + uuid.NewString()[:8]
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	})

	require.NoError(t, svc.Register(ctx, &account.RegisterRequest{Username: username, Password: "hunter22"}))

	// Duplicate username conflicts.
	err := svc.Register(ctx, &account.RegisterRequest{Username: username, Password: "other"})
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	require.NoError(t, svc.Login(ctx, &account.LoginRequest{Username: username, Password: "hunter22"}))

	// Wrong password and unknown user both read as invalid credentials.
	err = svc.Login(ctx, &account.LoginRequest{Username: username, Password: "wrong"})
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))

	err = svc.Login(ctx, &account.LoginRequest{Username: "ghost_" + uuid.NewString()[:8], Password: "whatever"})
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}

func TestLegacyValidation(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewLegacyAuthService(pool)
	ctx := context.Background()

	err := svc.Register(ctx, &account.RegisterRequest{Username: "nopass"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	err = svc.Login(ctx, &account.LoginRequest{Password: "nouser"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}
