package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/community"
)

type CommunityService struct {
	db *pgxpool.Pool
}

func NewCommunityService(db *pgxpool.Pool) *CommunityService {
	return &CommunityService{db: db}
}

// ListMessages returns the chat newest-first.
func (s *CommunityService) ListMessages(ctx context.Context) ([]community.Message, error) {
	query := `
	SELECT id, username, text, image_url, timestamp
	FROM community_chat
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query community chat: %w", err)
	}
	defer rows.Close()

	messages := []community.Message{}
	for rows.Next() {
		var m community.Message
		if err := rows.Scan(&m.ID, &m.User, &m.Text, &m.ImageURL, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chat messages: %w", err)
	}

	return messages, nil
}

// LatestMessages returns the newest messages for the home feed.
func (s *CommunityService) LatestMessages(ctx context.Context, limit int) ([]community.Message, error) {
	query := `
	SELECT id, username, text, image_url, timestamp
	FROM community_chat
	ORDER BY timestamp DESC, id DESC
	LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest chat messages: %w", err)
	}
	defer rows.Close()

	messages := []community.Message{}
	for rows.Next() {
		var m community.Message
		if err := rows.Scan(&m.ID, &m.User, &m.Text, &m.ImageURL, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chat messages: %w", err)
	}

	return messages, nil
}

// PostMessage appends a chat message. The author name is free text and is
// not checked against the users table; messages are never edited or deleted.
func (s *CommunityService) PostMessage(ctx context.Context, req *community.PostMessageRequest) (*community.Message, error) {
	if req.User == "" {
		return nil, apperror.InvalidInput("user is required")
	}

	query := `
	INSERT INTO community_chat (username, text, image_url)
	VALUES ($1, $2, $3)
	RETURNING id, username, text, image_url, timestamp
	`

	m := &community.Message{}
	err := s.db.QueryRow(ctx, query, req.User, req.Text, req.ImageURL).Scan(
		&m.ID,
		&m.User,
		&m.Text,
		&m.ImageURL,
		&m.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to post chat message: %w", err)
	}

	return m, nil
}
