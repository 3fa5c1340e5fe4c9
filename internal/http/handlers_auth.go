package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/classpoint/admin-ui/internal/domain/auth"
	"github.com/classpoint/admin-ui/internal/domain/model"
	apperrors "github.com/classpoint/admin-ui/internal/errors"
	"github.com/classpoint/admin-ui/internal/http/validation"
)

// sessionCookieName is the browser cookie carrying the opaque session ID.
const sessionCookieName = "session_id"

// AuthServiceInterface defines the auth operations the HTTP layer needs.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*domainauth.Session, error)
	Register(ctx context.Context, req model.RegisterRequest) error
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	// DropSession removes a session the platform stopped accepting.
	DropSession(ctx context.Context, sessionID string) error
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for login, logout, and registration.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	UI           *UIHandlers
	CookieDomain string
	CookieSecure bool
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the login form.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, loginMeta()).
		With("RedirectURI", safeRedirectPath(r.URL.Query().Get("redirect_uri"))).
		With("Email", "").
		Build()
	h.UI.renderDashboardPage(w, r, data)
}

// Login exchanges credentials for a platform token and starts a session.
// POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	redirectURI := safeRedirectPath(r.FormValue("redirect_uri"))

	fieldErrors := validation.New().
		Validate("email", email, validation.Required("Email"), validation.Email("Email")).
		Validate("password", password, validation.Required("Password")).
		Errors()
	if len(fieldErrors) > 0 {
		h.renderLoginError(w, r, loginErrorParams{
			Email: email, RedirectURI: redirectURI, FieldErrors: fieldErrors, General: errMsgFixBelow,
		})
		return
	}

	session, err := h.Svc.Login(r.Context(), email, password)
	if err != nil {
		h.renderLoginError(w, r, loginErrorParams{
			Email: email, RedirectURI: redirectURI, General: loginFailureMessage(err),
		})
		return
	}

	h.setSessionCookie(w, r, *session)

	if IsHTMX(r) {
		HTMX(w).Redirect(redirectURI)
		return
	}
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

// loginErrorParams groups login re-render values to keep call sites flat.
type loginErrorParams struct {
	Email       string
	RedirectURI string
	FieldErrors map[string]string
	General     string
}

func (h *AuthHandlers) renderLoginError(w http.ResponseWriter, r *http.Request, p loginErrorParams) {
	builder := NewTemplateData(r, loginMeta()).
		With("Email", p.Email).
		With("RedirectURI", p.RedirectURI).
		WithFieldErrors(p.FieldErrors)
	if p.General != "" {
		builder.WithError(p.General)
	}
	h.UI.renderDashboardPage(w, r, builder.Build())
}

// loginFailureMessage surfaces remote rejections verbatim and keeps
// transport noise behind a generic line.
func loginFailureMessage(err error) string {
	if apperrors.IsRemote(err) {
		return apperrors.UserMessage(err)
	}
	return "Unable to sign in right now. Please try again."
}

func loginMeta() PageMeta {
	return PageMeta{Title: "ClassPoint - Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}
}

// Logout drops the server-side session and clears the cookie.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	clearCookie(w, r, cookieParams{Name: sessionCookieName, Domain: h.CookieDomain, Secure: h.CookieSecure})

	if IsHTMX(r) {
		HTMX(w).Redirect("/auth/login")
		return
	}
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// RegisterPage renders the member registration form.
// GET /auth/register.
func (h *AuthHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, registerMeta()).
		With("FormData", model.RegisterRequest{}).
		Build()
	h.UI.renderDashboardPage(w, r, data)
}

// Register creates a new member account on the platform.
// POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	req := model.RegisterRequest{
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Image:    strings.TrimSpace(r.FormValue("image")),
		Password: r.FormValue("password"),
	}

	fv := validation.New().
		Validate("fullName", req.FullName, validation.Required("Full name"), validation.MinRunes("Full name", 2)).
		Validate("email", req.Email, validation.Required("Email"), validation.Email("Email")).
		Validate("password", req.Password, validation.Required("Password"), validation.MinRunes("Password", 6))
	if req.Image != "" {
		fv.Validate("image", req.Image, validation.AbsoluteURL("Image"))
	}
	if fieldErrors := fv.Errors(); len(fieldErrors) > 0 {
		h.renderRegisterError(w, r, req, fieldErrors, errMsgFixBelow)
		return
	}

	if err := h.Svc.Register(r.Context(), req); err != nil {
		h.renderRegisterError(w, r, req, nil, loginFailureMessage(err))
		return
	}

	if IsHTMX(r) {
		HTMX(w).Redirect("/auth/login")
		return
	}
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

func (h *AuthHandlers) renderRegisterError(
	w http.ResponseWriter,
	r *http.Request,
	req model.RegisterRequest,
	fieldErrors map[string]string,
	general string,
) {
	req.Password = "" // never echo the password back
	data := NewTemplateData(r, registerMeta()).
		With("FormData", req).
		WithFieldErrors(fieldErrors).
		WithError(general).
		Build()
	h.UI.renderDashboardPage(w, r, data)
}

func registerMeta() PageMeta {
	return PageMeta{Title: "ClassPoint - Register", PageTitle: "Create account", CurrentPage: PageRegister}
}

// cookieParams groups cookie attributes shared between set and clear.
type cookieParams struct {
	Name   string
	Domain string
	Secure bool
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   cookieSecure(r, h.CookieSecure),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes used when setting cookies to maximize
// compatibility across browsers during deletion.
func clearCookie(w http.ResponseWriter, r *http.Request, p cookieParams) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    "",
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
		Secure:   cookieSecure(r, p.Secure),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// cookieSecure marks the cookie Secure when the request arrived over TLS
// (directly or via proxy) or when the deployment demands it.
func cookieSecure(r *http.Request, configured bool) bool {
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		return true
	}
	return configured
}
