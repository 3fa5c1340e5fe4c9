package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/api; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/classpoint/admin-ui/internal/domain/auth"
	"github.com/classpoint/admin-ui/internal/domain/model"
)

// Authenticator exchanges credentials with the booking platform API.
// *api.Client satisfies it.
type Authenticator interface {
	// Login trades credentials for a bearer token and the account's role.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)

	// Register creates a new member account.
	Register(ctx context.Context, req model.RegisterRequest) error

	// Profile fetches the account behind the bearer token in ctx.
	Profile(ctx context.Context) (*model.User, error)
}

// SessionStore persists and retrieves browser sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
