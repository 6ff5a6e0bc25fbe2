package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitchallengeAPI/internal/types/progress"
)

func TestProgressQueryNeverAdvanced(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewProgressService(pool)
	ctx := context.Background()

	state, err := svc.Get(ctx, "user_test_"+uuid.NewString(), 123456)
	require.NoError(t, err)
	assert.Equal(t, progress.State{CurrentDay: 0, Completed: false}, state)
}

func TestProgressAdvanceLadder(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewProgressService(pool)
	ctx := context.Background()

	userUID := "user_test_" + uuid.NewString()
	// Progress intentionally does not validate the challenge id against the
	// challenges table, so an arbitrary id works here.
	challengeID := 987654

	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM user_challenge_progress WHERE user_id = $1`, userUID)
	})

	// Six advances: in progress, day == number of advances.
	for day := 1; day <= 6; day++ {
		state, err := svc.Advance(ctx, userUID, challengeID)
		require.NoError(t, err)
		assert.Equal(t, day, state.CurrentDay, fmt.Sprintf("after %d advances", day))
		assert.False(t, state.Completed)
	}

	// Seventh advance completes.
	state, err := svc.Advance(ctx, userUID, challengeID)
	require.NoError(t, err)
	assert.Equal(t, 7, state.CurrentDay)
	assert.True(t, state.Completed)

	// Eighth advance is a no-op reporting the terminal state.
	state, err = svc.Advance(ctx, userUID, challengeID)
	require.NoError(t, err)
	assert.Equal(t, 7, state.CurrentDay)
	assert.True(t, state.Completed)

	// Stored state matches what the last advance reported.
	state, err = svc.Get(ctx, userUID, challengeID)
	require.NoError(t, err)
	assert.Equal(t, progress.State{CurrentDay: 7, Completed: true}, state)
}

func TestProgressPairsAreIndependent(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewProgressService(pool)
	ctx := context.Background()

	userUID := "user_test_" + uuid.NewString()

	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM user_challenge_progress WHERE user_id = $1`, userUID)
	})

	_, err := svc.Advance(ctx, userUID, 111)
	require.NoError(t, err)

	state, err := svc.Get(ctx, userUID, 222)
	require.NoError(t, err)
	assert.Equal(t, progress.NotStarted(), state)
}
