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

func TestAccountCreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewAccountService(pool)
	ctx := context.Background()

	firebaseUID := "fb_" + uuid.NewString()
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM users WHERE firebase_uid = $1`, firebaseUID)
	})

	created, err := svc.CreateAccount(ctx, firebaseUID, "test@example.com", &account.CreateAccountRequest{
		Username: "runner_" + uuid.NewString()[:8],
	})
	require.NoError(t, err)
	assert.Equal(t, firebaseUID, created.FirebaseUID)
	assert.Equal(t, 0, created.BronzeBadges)
	assert.Equal(t, 0, created.SilverBadges)
	assert.Equal(t, 0, created.GoldBadges)

	got, err := svc.GetByFirebaseUID(ctx, firebaseUID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Email)
	assert.Equal(t, "test@example.com", *got.Email)
}

func TestAccountCreateConflictsOnSecondCall(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewAccountService(pool)
	ctx := context.Background()

	firebaseUID := "fb_" + uuid.NewString()
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM users WHERE firebase_uid = $1`, firebaseUID)
	})

	_, err := svc.CreateAccount(ctx, firebaseUID, "first@example.com", &account.CreateAccountRequest{
		Username: "first_" + uuid.NewString()[:8],
	})
	require.NoError(t, err)

	// Second call conflicts regardless of the body.
	_, err = svc.CreateAccount(ctx, firebaseUID, "second@example.com", &account.CreateAccountRequest{
		Username: "second_" + uuid.NewString()[:8],
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestAccountCreateRequiresUsernameAndEmail(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewAccountService(pool)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "fb_"+uuid.NewString(), "", &account.CreateAccountRequest{})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	_, err = svc.CreateAccount(ctx, "fb_"+uuid.NewString(), "", &account.CreateAccountRequest{Username: "someone"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestAccountGetMissing(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewAccountService(pool)

	_, err := svc.GetByFirebaseUID(context.Background(), "fb_"+uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
