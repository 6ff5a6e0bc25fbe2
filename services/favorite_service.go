package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/challenge"
	"fitchallengeAPI/internal/types/favorite"
)

type FavoriteService struct {
	db *pgxpool.Pool
}

func NewFavoriteService(db *pgxpool.Pool) *FavoriteService {
	return &FavoriteService{db: db}
}

// List returns the full challenge rows the account has bookmarked.
func (s *FavoriteService) List(ctx context.Context, firebaseUID string) ([]challenge.Challenge, error) {
	userID, err := resolveUserID(ctx, s.db, firebaseUID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT c.id, c.title, c.description, c.goal, c.unit, c.difficulty,
	       c.start_date, c.end_date, c.created_at, c.creator, c.goal_list
	FROM challenges c
	JOIN favorites f ON f.challenge_id = c.id
	WHERE f.user_id = $1
	ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	challenges := []challenge.Challenge{}
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite challenge: %w", err)
		}
		challenges = append(challenges, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorite rows: %w", err)
	}

	return challenges, nil
}

// Add bookmarks a challenge. Favoriting the same challenge twice conflicts.
func (s *FavoriteService) Add(ctx context.Context, firebaseUID string, challengeID int) (*favorite.Favorite, error) {
	userID, err := resolveUserID(ctx, s.db, firebaseUID)
	if err != nil {
		return nil, err
	}

	var exists bool
	err = s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM challenges WHERE id = $1)`, challengeID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check challenge: %w", err)
	}
	if !exists {
		return nil, apperror.NotFound("challenge", challengeID)
	}

	query := `
	INSERT INTO favorites (user_id, challenge_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, challenge_id) DO NOTHING
	`

	tag, err := s.db.Exec(ctx, query, userID, challengeID)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.Conflict("challenge is already favorited")
	}

	return &favorite.Favorite{UserID: userID, ChallengeID: challengeID}, nil
}

// Remove deletes a bookmark; removing one that isn't there is not-found.
func (s *FavoriteService) Remove(ctx context.Context, firebaseUID string, challengeID int) error {
	userID, err := resolveUserID(ctx, s.db, firebaseUID)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND challenge_id = $2`, userID, challengeID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("favorite", challengeID)
	}

	return nil
}
