package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"fitchallengeAPI/internal/apperror"
	"fitchallengeAPI/internal/types/account"
)

// LegacyAuthService backs the pre-Firebase /register and /login endpoints.
// Rows created here carry a password hash and no Firebase UID.
type LegacyAuthService struct {
	db *pgxpool.Pool
}

func NewLegacyAuthService(db *pgxpool.Pool) *LegacyAuthService {
	return &LegacyAuthService{db: db}
}

func (s *LegacyAuthService) Register(ctx context.Context, req *account.RegisterRequest) error {
	if req.Username == "" || req.Password == "" {
		return apperror.InvalidInput("username and password are required")
	}

	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, req.Username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return apperror.Conflict("username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.db.Exec(ctx, `INSERT INTO users (username, password_hash) VALUES ($1, $2)`, req.Username, string(hash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.Conflict("username already exists")
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	return nil
}

func (s *LegacyAuthService) Login(ctx context.Context, req *account.LoginRequest) error {
	if req.Username == "" || req.Password == "" {
		return apperror.InvalidInput("username and password are required")
	}

	var hash *string
	err := s.db.QueryRow(ctx, `SELECT password_hash FROM users WHERE username = $1`, req.Username).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.Unauthenticated("invalid credentials")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	// Accounts created through Firebase have no password hash and cannot
	// use the legacy login.
	if hash == nil || bcrypt.CompareHashAndPassword([]byte(*hash), []byte(req.Password)) != nil {
		return apperror.Unauthenticated("invalid credentials")
	}

	return nil
}
