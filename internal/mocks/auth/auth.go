package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/classpoint/admin-ui/internal/domain/auth"
	"github.com/classpoint/admin-ui/internal/domain/model"
	"github.com/classpoint/admin-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator = (*MockAuthenticator)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
)

// MockAuthenticator simulates the platform API's auth endpoints. Override the
// Func fields for per-test behavior; the defaults accept any credentials and
// issue an admin token.
type MockAuthenticator struct {
	LoginFunc    func(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	RegisterFunc func(ctx context.Context, req model.RegisterRequest) error
	ProfileFunc  func(ctx context.Context) (*model.User, error)

	// Deterministic defaults for predictable testing
	Token string
	Role  string
	User  model.User
}

// NewMockAuthenticator creates a MockAuthenticator with sensible defaults.
func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{
		Token: "mock-token-1",
		Role:  string(domainauth.RoleAdmin),
		User: model.User{
			ID:       "mock-user-1",
			FullName: "Mock Admin",
			Email:    "mock.admin@example.com",
			Role:     string(domainauth.RoleAdmin),
		},
	}
}

func (m *MockAuthenticator) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &model.LoginResponse{Token: m.Token, Role: m.Role}, nil
}

func (m *MockAuthenticator) Register(ctx context.Context, req model.RegisterRequest) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthenticator) Profile(ctx context.Context) (*model.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx)
	}
	user := m.User
	return &user, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	// SaveErr, GetErr and DeleteErr force failures when set.
	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

// ErrNotFound is returned when a session is not found.
var ErrNotFound = errors.New("session not found")

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if m.GetErr != nil {
		return domainauth.Session{}, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions the store currently holds.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
