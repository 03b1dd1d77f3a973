package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tyzox-be/internal/apperror"
	"tyzox-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// Create inserts the user and the user's cart in one transaction.
	Create(ctx context.Context, email, passwordHash string, role Role) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, passwordHash string, role Role) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("email", email),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	var u User
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (email, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, password, role, created_at
	`, email, passwordHash, role).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		if apperror.PgCode(err) == apperror.PgUniqueViolation {
			log.Warn("email already registered")
			return nil, apperror.Wrap(ErrEmailExists, err)
		}
		log.Error("db: failed to insert user", zap.Error(err))
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO carts (user_id) VALUES ($1)`, u.ID); err != nil {
		log.Error("db: failed to create cart", zap.Uint("user_id", u.ID), zap.Error(err))
		return nil, fmt.Errorf("create cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit user transaction", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.Uint("user_id", u.ID), zap.String("role", string(u.Role)))
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, role, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
