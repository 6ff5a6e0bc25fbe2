package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/challenge"
)

type ChallengeService struct {
	db *pgxpool.Pool
}

func NewChallengeService(db *pgxpool.Pool) *ChallengeService {
	return &ChallengeService{db: db}
}

const challengeColumns = `id, title, description, goal, unit, difficulty, start_date, end_date, created_at, creator, goal_list`

func scanChallenge(row pgx.Row) (*challenge.Challenge, error) {
	c := &challenge.Challenge{}
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Goal,
		&c.Unit,
		&c.Difficulty,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.Creator,
		&c.GoalList,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create validates the request and persists a challenge. The creator is
// always the verified subject, never taken from the body.
func (s *ChallengeService) Create(ctx context.Context, creatorUID string, req *challenge.CreateChallengeRequest) (*challenge.Challenge, error) {
	start, end, err := req.Validate()
	if err != nil {
		return nil, err
	}

	query := `
	INSERT INTO challenges (title, description, goal, unit, difficulty, start_date, end_date, created_at, creator, goal_list)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + challengeColumns

	c, err := scanChallenge(s.db.QueryRow(
		ctx,
		query,
		req.Title,
		req.Description,
		req.Goal,
		req.Unit,
		req.Difficulty,
		start,
		end,
		time.Now().UTC(),
		creatorUID,
		req.GoalList,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	return c, nil
}

func (s *ChallengeService) List(ctx context.Context) ([]challenge.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges ORDER BY created_at DESC, id DESC`
	return s.queryChallenges(ctx, query)
}

func (s *ChallengeService) ListByCreator(ctx context.Context, creatorUID string) ([]challenge.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE creator = $1 ORDER BY created_at DESC, id DESC`
	return s.queryChallenges(ctx, query, creatorUID)
}

func (s *ChallengeService) queryChallenges(ctx context.Context, query string, args ...any) ([]challenge.Challenge, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	challenges := []challenge.Challenge{}
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge row: %w", err)
		}
		challenges = append(challenges, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read challenge rows: %w", err)
	}

	return challenges, nil
}

func (s *ChallengeService) GetByID(ctx context.Context, id int) (*challenge.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`

	c, err := scanChallenge(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("challenge", id)
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return c, nil
}

// Delete removes a challenge. Only its creator may delete it, and the
// not-found check runs before ownership so an absent id never reads as
// forbidden.
func (s *ChallengeService) Delete(ctx context.Context, subjectUID string, id int) error {
	var creator string
	err := s.db.QueryRow(ctx, `SELECT creator FROM challenges WHERE id = $1`, id).Scan(&creator)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("challenge", id)
		}
		return fmt.Errorf("failed to look up challenge: %w", err)
	}

	if creator != subjectUID {
		return apperror.Forbidden("only the creator can delete this challenge")
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM challenges WHERE id = $1 AND creator = $2`, id, subjectUID)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Deleted concurrently between the lookup and the delete.
		return apperror.NotFound("challenge", id)
	}

	return nil
}

// LatestPreviews returns the newest challenges projected for the home feed.
func (s *ChallengeService) LatestPreviews(ctx context.Context, limit int) ([]challenge.Preview, error) {
	query := `
	SELECT title, COALESCE(description, ''), COALESCE(difficulty, '')
	FROM challenges
	ORDER BY created_at DESC, id DESC
	LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest challenges: %w", err)
	}
	defer rows.Close()

	previews := []challenge.Preview{}
	for rows.Next() {
		var p challenge.Preview
		if err := rows.Scan(&p.Title, &p.Description, &p.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan challenge preview: %w", err)
		}
		previews = append(previews, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read challenge previews: %w", err)
	}

	return previews, nil
}
