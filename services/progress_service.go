package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitchallengeAPI/internal/types/progress"
)

type ProgressService struct {
	db *pgxpool.Pool
}

func NewProgressService(db *pgxpool.Pool) *ProgressService {
	return &ProgressService{db: db}
}

// Advance moves the (user, challenge) counter one day forward. The first
// advance creates the row at day 1; reaching the completion day flips
// completed in the same statement. A completed row is terminal: advancing it
// changes nothing and reports the stored state.
//
// The upsert is a single conditional statement so two racing advances can
// never double-apply an increment or set completed twice.
func (s *ProgressService) Advance(ctx context.Context, userUID string, challengeID int) (progress.State, error) {
	query := `
	INSERT INTO user_challenge_progress (user_id, challenge_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, challenge_id) DO UPDATE
	SET current_day  = user_challenge_progress.current_day + 1,
	    completed    = user_challenge_progress.current_day + 1 >= $3,
	    last_updated = now()
	WHERE NOT user_challenge_progress.completed
	RETURNING current_day, completed
	`

	var state progress.State
	err := s.db.QueryRow(ctx, query, userUID, challengeID, progress.CompletionDay).Scan(
		&state.CurrentDay,
		&state.Completed,
	)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return progress.State{}, fmt.Errorf("failed to advance progress: %w", err)
	}

	// The conditional update matched a completed row and skipped it; report
	// the terminal state without touching it.
	return s.Get(ctx, userUID, challengeID)
}

// Get reports the stored state, or the synthesized not-started state when
// the pair has no row.
func (s *ProgressService) Get(ctx context.Context, userUID string, challengeID int) (progress.State, error) {
	query := `
	SELECT current_day, completed
	FROM user_challenge_progress
	WHERE user_id = $1 AND challenge_id = $2
	`

	var state progress.State
	err := s.db.QueryRow(ctx, query, userUID, challengeID).Scan(&state.CurrentDay, &state.Completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return progress.NotStarted(), nil
		}
		return progress.State{}, fmt.Errorf("failed to get progress: %w", err)
	}

	return state, nil
}
