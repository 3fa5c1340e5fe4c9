package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/classpoint/admin-ui/internal/api"
	domainauth "github.com/classpoint/admin-ui/internal/domain/auth"
	"github.com/classpoint/admin-ui/internal/domain/model"
	apperrors "github.com/classpoint/admin-ui/internal/errors"
	"github.com/classpoint/admin-ui/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API        ports.Authenticator
	Sessions   ports.SessionStore
	SessionTTL time.Duration
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// AuthService trades credentials for platform bearer tokens and keeps the
// resulting browser sessions in the session store. The platform issues token
// and role together; AuthService never persists a session holding only one.
type AuthService struct {
	api        ports.Authenticator
	sessions   ports.SessionStore
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		api:        opts.API,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
		now:        now,
	}
}

// Login exchanges credentials with the platform API and persists a new
// session on success. Remote rejections come back unchanged so handlers can
// show the server's message verbatim.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if email == "" {
		return nil, apperrors.ValidationField("email", "Email is required")
	}
	if password == "" {
		return nil, apperrors.ValidationField("password", "Password is required")
	}

	resp, err := s.api.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.Role == "" {
		return nil, apperrors.Transport("login response missing token or role")
	}

	role := domainauth.Role(resp.Role)
	if !role.Valid() {
		return nil, apperrors.Transport(fmt.Sprintf("login response carried unknown role %q", resp.Role))
	}

	session := domainauth.Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		Role:      role,
		Email:     email,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	// The display name is cosmetic; a failed profile fetch must not fail
	// the login.
	if user, profileErr := s.api.Profile(api.WithToken(ctx, resp.Token)); profileErr == nil {
		session.FullName = user.FullName
		if user.Email != "" {
			session.Email = user.Email
		}
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

// Register creates a new member account on the platform. It does not log the
// account in; the caller sends the user to the login screen afterwards.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	return s.api.Register(ctx, req)
}

// GetSession retrieves a session by ID. A missing or expired session comes
// back as a session-expired error so callers can clear the browser cookie.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.SessionExpired("no active session")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeSessionExpired, "get session")
	}

	if s.now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, fmt.Errorf("delete expired session: %w", deleteErr)
		}
		return nil, apperrors.SessionExpired("session expired")
	}

	return &session, nil
}

// DropSession removes a session after the remote API stopped accepting its
// token. The next request starts unauthenticated.
func (s *AuthService) DropSession(ctx context.Context, sessionID string) error {
	return s.Logout(ctx, sessionID)
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
