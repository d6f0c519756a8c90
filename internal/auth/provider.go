package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials covers both unknown-user and wrong-password so
// callers cannot enumerate accounts from the response.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is a verified login: the canonical organizational identity
// plus the role attached to the account.
type Identity struct {
	Canonical string `json:"identity"`
	Role      string `json:"role"`
}

// Provider authenticates and registers operators. Two implementations
// exist: LocalProvider over the users table, and RemoteProvider
// delegating to an external identity service. Which one runs is a
// startup choice.
type Provider interface {
	Authenticate(ctx context.Context, identity, password string) (Identity, error)
	Register(ctx context.Context, identity, password string) (Identity, error)
}
