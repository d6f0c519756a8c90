package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/starbank/vendas-api/internal/rules"
	"github.com/starbank/vendas-api/internal/store"
)

// UserStore is the slice of the credential store LocalProvider needs.
type UserStore interface {
	Find(ctx context.Context, username string) (*store.UserAccount, error)
	Create(ctx context.Context, username, passwordHash, role string) error
}

// LocalProvider verifies credentials against the users table with
// bcrypt hashes.
type LocalProvider struct {
	users  UserStore
	logger *zap.Logger
}

func NewLocalProvider(users UserStore, logger *zap.Logger) *LocalProvider {
	return &LocalProvider{users: users, logger: logger}
}

func (p *LocalProvider) Authenticate(ctx context.Context, identity, password string) (Identity, error) {
	user, err := p.users.Find(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = rules.RoleOperador
	}

	return Identity{Canonical: user.Username, Role: role}, nil
}

// Register creates a new operator account. New accounts always start
// with the operator role; admin promotion happens out of band.
func (p *LocalProvider) Register(ctx context.Context, identity, password string) (Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := p.users.Create(ctx, identity, string(hash), rules.RoleOperador); err != nil {
		return Identity{}, err
	}

	p.logger.Info("account created", zap.String("identity", identity))
	return Identity{Canonical: identity, Role: rules.RoleOperador}, nil
}
