package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrUserNotFound is returned when no account exists for a username.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when registration hits an existing
// username.
var ErrDuplicateUser = errors.New("user already exists")

type UsersStore struct {
	db *sqlx.DB
}

func (us *UsersStore) Find(ctx context.Context, username string) (*UserAccount, error) {
	user := &UserAccount{}
	err := us.db.GetContext(ctx, user,
		`SELECT username, password, role FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (us *UsersStore) Create(ctx context.Context, username, passwordHash, role string) error {
	_, err := us.db.ExecContext(ctx,
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3)`,
		username, passwordHash, role)
	if err != nil {
		var pqErr *pq.Error
		// 23505 = unique_violation
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
