package auth

// Verdict is the outcome of an authorization check for a screen.
type Verdict int

const (
	// VerdictAllow grants access to the screen.
	VerdictAllow Verdict = iota
	// VerdictDenyUnauthenticated denies access because no session exists.
	VerdictDenyUnauthenticated
	// VerdictDenyWrongRole denies access because the session's role does not
	// match the screen's required role.
	VerdictDenyWrongRole
)

// String returns a short label for logging.
func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "allow"
	case VerdictDenyUnauthenticated:
		return "deny-unauthenticated"
	case VerdictDenyWrongRole:
		return "deny-wrong-role"
	default:
		return "unknown"
	}
}

// Authorize derives the access verdict for a screen gated by required from the
// given session. It is pure: the same inputs always yield the same verdict.
// Roles match exactly; there is no hierarchy between admin, teacher, and
// member. A zero required role means "any authenticated user".
//
// The server side of the booking platform enforces authorization on every
// endpoint; this check is a UX convenience that keeps unauthorized users away
// from screens they could never use, not a security boundary.
func Authorize(s *Session, required Role) Verdict {
	if s == nil || !s.Authenticated() {
		return VerdictDenyUnauthenticated
	}
	if required == "" || s.Role == required {
		return VerdictAllow
	}
	return VerdictDenyWrongRole
}
