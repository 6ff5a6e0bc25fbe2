package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/account"
)

type AccountService struct {
	db *pgxpool.Pool
}

func NewAccountService(db *pgxpool.Pool) *AccountService {
	return &AccountService{db: db}
}

// CreateAccount persists a new user row for a verified identity. Exactly one
// account may exist per Firebase UID, so a second call conflicts regardless
// of the body.
func (s *AccountService) CreateAccount(ctx context.Context, firebaseUID, email string, req *account.CreateAccountRequest) (*account.User, error) {
	if req.Username == "" {
		return nil, apperror.InvalidInput("username is required")
	}

	// Email comes from the identity claims when present, otherwise the body.
	if email == "" {
		email = req.Email
	}
	if email == "" {
		return nil, apperror.InvalidInput("email is required")
	}

	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE firebase_uid = $1)`, firebaseUID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return nil, apperror.Conflict("account already exists")
	}

	query := `
	INSERT INTO users (username, email, firebase_uid)
	VALUES ($1, $2, $3)
	RETURNING id, username, email, firebase_uid, bronze_badges, silver_badges, gold_badges
	`

	user := &account.User{}
	err = s.db.QueryRow(ctx, query, req.Username, email, firebaseUID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirebaseUID,
		&user.BronzeBadges,
		&user.SilverBadges,
		&user.GoldBadges,
	)
	if err != nil {
		// A racing create for the same uid, username or email loses here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperror.Conflict("account already exists")
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return user, nil
}

// GetByFirebaseUID returns the account row for a verified identity.
func (s *AccountService) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*account.User, error) {
	query := `
	SELECT id, username, email, COALESCE(firebase_uid, ''), bronze_badges, silver_badges, gold_badges
	FROM users
	WHERE firebase_uid = $1
	`

	user := &account.User{}
	err := s.db.QueryRow(ctx, query, firebaseUID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirebaseUID,
		&user.BronzeBadges,
		&user.SilverBadges,
		&user.GoldBadges,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("account", firebaseUID)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return user, nil
}

// GetLeaderboard lists every user ordered by badge counts, best first.
func (s *AccountService) GetLeaderboard(ctx context.Context) ([]account.User, error) {
	query := `
	SELECT id, username, email, COALESCE(firebase_uid, ''), bronze_badges, silver_badges, gold_badges
	FROM users
	ORDER BY gold_badges DESC, silver_badges DESC, bronze_badges DESC, username ASC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	users := []account.User{}
	for rows.Next() {
		var u account.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.FirebaseUID,
			&u.BronzeBadges,
			&u.SilverBadges,
			&u.GoldBadges,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}

	return users, nil
}

// resolveUserID maps a Firebase UID to the numeric account id that favorites
// and goals key by. Missing account maps to not-found so handlers can 404.
func resolveUserID(ctx context.Context, db *pgxpool.Pool, firebaseUID string) (int, error) {
	var id int
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE firebase_uid = $1`, firebaseUID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NotFound("account", firebaseUID)
		}
		return 0, fmt.Errorf("failed to resolve account: %w", err)
	}
	return id, nil
}
