package httpx

import (
	"net/http"

	domainauth "github.com/classpoint/admin-ui/internal/domain/auth"
	apperrors "github.com/classpoint/admin-ui/internal/errors"
)

// ProfilePage renders the signed-in account's profile. Teachers additionally
// see their own classes, members their own bookings; the extra fetch depends
// on the session role, not on the profile payload.
// GET /profile.
func (h *UIHandlers) ProfilePage(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	user, err := h.API.Profile(r.Context())
	if err != nil {
		if apperrors.IsSessionExpired(err) {
			h.handleSessionExpired(w, r)
			return
		}
		data := NewTemplateData(r, profileMeta()).
			WithError("Unable to load your profile.").
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	builder := NewTemplateData(r, profileMeta()).With("Profile", user)

	switch session.Role {
	case domainauth.RoleTeacher:
		classes, classesErr := h.API.TeacherClasses(r.Context())
		switch {
		case classesErr == nil:
			builder.With("TeacherClasses", classes)
		case apperrors.IsSessionExpired(classesErr):
			h.handleSessionExpired(w, r)
			return
		default:
			builder.WithError("Unable to load your classes.")
		}
	case domainauth.RoleMember:
		bookings, bookingsErr := h.API.Bookings(r.Context())
		switch {
		case bookingsErr == nil:
			builder.With("MemberBookings", bookings)
		case apperrors.IsSessionExpired(bookingsErr):
			h.handleSessionExpired(w, r)
			return
		default:
			builder.WithError("Unable to load your bookings.")
		}
	case domainauth.RoleAdmin:
		// Admins get the bare profile card.
	}

	h.renderDashboardPage(w, r, builder.Build())
}

func profileMeta() PageMeta {
	return PageMeta{Title: "ClassPoint - Profile", PageTitle: "Profile", CurrentPage: PageProfile}
}
