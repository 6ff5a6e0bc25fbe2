package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/goal"
)

type GoalService struct {
	db *pgxpool.Pool
}

func NewGoalService(db *pgxpool.Pool) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) List(ctx context.Context, firebaseUID string) ([]goal.Goal, error) {
	userID, err := resolveUserID(ctx, s.db, firebaseUID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, user_id, title, description, is_completed
	FROM goals
	WHERE user_id = $1
	ORDER BY id ASC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []goal.Goal{}
	for rows.Next() {
		var g goal.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.IsCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goal rows: %w", err)
	}

	return goals, nil
}

func (s *GoalService) Create(ctx context.Context, firebaseUID string, req *goal.CreateGoalRequest) (*goal.Goal, error) {
	if req.Title == "" {
		return nil, apperror.InvalidInput("title is required")
	}

	userID, err := resolveUserID(ctx, s.db, firebaseUID)
	if err != nil {
		return nil, err
	}

	query := `
	INSERT INTO goals (user_id, title, description)
	VALUES ($1, $2, $3)
	RETURNING id, user_id, title, description, is_completed
	`

	g := &goal.Goal{}
	err = s.db.QueryRow(ctx, query, userID, req.Title, req.Description).Scan(
		&g.ID,
		&g.UserID,
		&g.Title,
		&g.Description,
		&g.IsCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return g, nil
}

// Update changes any of title, description or the completion flag. The row
// must belong to the acting account; anyone else's goal reads as not-found.
func (s *GoalService) Update(ctx context.Context, firebaseUID string, goalID int, req *goal.UpdateGoalRequest) (*goal.Goal, error) {
	userID, err := resolveUserID(ctx, s.db, firebaseUID)
	if err != nil {
		return nil, err
	}

	query := `
	UPDATE goals
	SET title        = COALESCE($1, title),
	    description  = COALESCE($2, description),
	    is_completed = COALESCE($3, is_completed)
	WHERE id = $4 AND user_id = $5
	RETURNING id, user_id, title, description, is_completed
	`

	g := &goal.Goal{}
	err = s.db.QueryRow(ctx, query, req.Title, req.Description, req.IsCompleted, goalID, userID).Scan(
		&g.ID,
		&g.UserID,
		&g.Title,
		&g.Description,
		&g.IsCompleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("goal", goalID)
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return g, nil
}

func (s *GoalService) Delete(ctx context.Context, firebaseUID string, goalID int) error {
	userID, err := resolveUserID(ctx, s.db, firebaseUID)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("goal", goalID)
	}

	return nil
}
