package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/starbank/vendas-api/internal/rules"
	"github.com/starbank/vendas-api/internal/store"
)

// RemoteProvider delegates credential handling to an external identity
// service. Duplicate-email handling and password policy live entirely
// on the provider's side; this client only maps its responses onto the
// local error taxonomy.
type RemoteProvider struct {
	client *resty.Client
}

func NewRemoteProvider(baseURL string) *RemoteProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	return &RemoteProvider{client: client}
}

type remoteCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type remoteIdentity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p *RemoteProvider) Authenticate(ctx context.Context, identity, password string) (Identity, error) {
	var body remoteIdentity
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(remoteCredentials{Email: identity, Password: password}).
		SetResult(&body).
		Post("/authenticate")
	if err != nil {
		return Identity{}, fmt.Errorf("identity provider unreachable: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return identityFromRemote(identity, body), nil
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return Identity{}, ErrInvalidCredentials
	default:
		return Identity{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode())
	}
}

func (p *RemoteProvider) Register(ctx context.Context, identity, password string) (Identity, error) {
	var body remoteIdentity
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(remoteCredentials{Email: identity, Password: password}).
		SetResult(&body).
		Post("/register")
	if err != nil {
		return Identity{}, fmt.Errorf("identity provider unreachable: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return identityFromRemote(identity, body), nil
	case http.StatusConflict:
		return Identity{}, store.ErrDuplicateUser
	default:
		return Identity{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode())
	}
}

func identityFromRemote(requested string, body remoteIdentity) Identity {
	id := Identity{Canonical: body.Email, Role: body.Role}
	if id.Canonical == "" {
		id.Canonical = requested
	}
	if id.Role == "" {
		id.Role = rules.RoleOperador
	}
	return id
}
