package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validSession(role Role) *Session {
	return &Session{
		ID:        "sess-1",
		Token:     "tok-abc",
		Role:      role,
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuthorize_ExactRoleMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, VerdictAllow, Authorize(validSession(RoleAdmin), RoleAdmin))
	assert.Equal(t, VerdictAllow, Authorize(validSession(RoleTeacher), RoleTeacher))
	assert.Equal(t, VerdictAllow, Authorize(validSession(RoleMember), RoleMember))
}

func TestAuthorize_DeniesEveryOtherRole(t *testing.T) {
	t.Parallel()

	roles := []Role{RoleAdmin, RoleTeacher, RoleMember}
	for _, required := range roles {
		for _, have := range roles {
			if have == required {
				continue
			}
			verdict := Authorize(validSession(have), required)
			assert.Equal(t, VerdictDenyWrongRole, verdict,
				"role %s must be denied on a %s screen", have, required)
		}
	}
}

func TestAuthorize_DenyUnauthenticated(t *testing.T) {
	t.Parallel()

	assert.Equal(t, VerdictDenyUnauthenticated, Authorize(nil, RoleAdmin))

	// Token without role (or role without token) violates the session
	// invariant and must never authorize.
	assert.Equal(t, VerdictDenyUnauthenticated,
		Authorize(&Session{ID: "s", Token: "tok"}, RoleAdmin))
	assert.Equal(t, VerdictDenyUnauthenticated,
		Authorize(&Session{ID: "s", Role: RoleAdmin}, RoleAdmin))
}

func TestAuthorize_AnyAuthenticated(t *testing.T) {
	t.Parallel()

	// Empty required role admits any authenticated session.
	for _, role := range []Role{RoleAdmin, RoleTeacher, RoleMember} {
		assert.Equal(t, VerdictAllow, Authorize(validSession(role), ""))
	}
	assert.Equal(t, VerdictDenyUnauthenticated, Authorize(nil, ""))
}

func TestAuthorize_Deterministic(t *testing.T) {
	t.Parallel()

	s := validSession(RoleTeacher)
	first := Authorize(s, RoleAdmin)
	for range 10 {
		assert.Equal(t, first, Authorize(s, RoleAdmin))
	}
}

func TestRoleValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.True(t, RoleMember.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
