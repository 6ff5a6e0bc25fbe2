package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/community"
)

func TestCommunityPostRequiresUser(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewCommunityService(pool)

	_, err := svc.PostMessage(context.Background(), &community.PostMessageRequest{Text: strPtr("hello")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestCommunityPostThenListNewestFirst(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewCommunityService(pool)
	ctx := context.Background()

	author := "chat_test_" + uuid.NewString()[:8]
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM community_chat WHERE username = $1`, author)
	})

	first, err := svc.PostMessage(ctx, &community.PostMessageRequest{User: author, Text: strPtr("first")})
	require.NoError(t, err)
	second, err := svc.PostMessage(ctx, &community.PostMessageRequest{User: author, Text: strPtr("second")})
	require.NoError(t, err)

	messages, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, messages)

	// The newest post is first; both posts appear in newest-first order.
	assert.Equal(t, second.ID, messages[0].ID)

	var firstIdx, secondIdx int
	for i, m := range messages {
		switch m.ID {
		case first.ID:
			firstIdx = i
		case second.ID:
			secondIdx = i
		}
	}
	assert.Less(t, secondIdx, firstIdx)
}

func TestCommunityPostWithImageOnly(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewCommunityService(pool)
	ctx := context.Background()

	author := "chat_test_" + uuid.NewString()[:8]
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM community_chat WHERE username = $1`, author)
	})

	m, err := svc.PostMessage(ctx, &community.PostMessageRequest{
		User:     author,
		ImageURL: strPtr("https://example.com/progress.jpg"),
	})
	require.NoError(t, err)
	assert.Nil(t, m.Text)
	require.NotNil(t, m.ImageURL)
	assert.Equal(t, "https://example.com/progress.jpg", *m.ImageURL)
	assert.False(t, m.Timestamp.IsZero())
}
