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

// createTestAccount inserts a user row; callers clean it up, and dependent
// favorites/goals rows go with it via the cascade.
func createTestAccount(t *testing.T, svc *AccountService, firebaseUID string) *account.User {
	t.Helper()

	name := "tester_" + uuid.NewString()[:8]
	u, err := svc.CreateAccount(context.Background(), firebaseUID, name+"@example.com", &account.CreateAccountRequest{
		Username: name,
	})
	require.NoError(t, err)
	return u
}

func TestFavoritesRequireAccount(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewFavoriteService(pool)

	_, err := svc.List(context.Background(), "fb_"+uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestFavoriteAddListRemove(t *testing.T) {
	pool := setupTestDB(t)
	favorites := NewFavoriteService(pool)
	accounts := NewAccountService(pool)
	challenges := NewChallengeService(pool)
	ctx := context.Background()

	firebaseUID := "fb_" + uuid.NewString()
	createTestAccount(t, accounts, firebaseUID)
	c := createTestChallenge(t, challenges, firebaseUID)
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM challenges WHERE id = $1`, c.ID)
		pool.Exec(ctx, `DELETE FROM users WHERE firebase_uid = $1`, firebaseUID)
	})

	// Favoriting a missing challenge is not-found.
	_, err := favorites.Add(ctx, firebaseUID, -1)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	fav, err := favorites.Add(ctx, firebaseUID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, fav.ChallengeID)

	// Favoriting twice conflicts.
	_, err = favorites.Add(ctx, firebaseUID, c.ID)
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	list, err := favorites.List(ctx, firebaseUID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	require.NoError(t, favorites.Remove(ctx, firebaseUID, c.ID))

	// Removing again is not-found.
	err = favorites.Remove(ctx, firebaseUID, c.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
