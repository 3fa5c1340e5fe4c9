package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/classpoint/admin-ui/internal/errors"
)

func newAuthHandlers(t *testing.T, svc *stubAuthService) *AuthHandlers {
	t.Helper()
	return &AuthHandlers{
		Svc:    svc,
		UI:     newTestUI(t),
		Logger: testLogger(),
	}
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestLoginPageRenders(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{})
	w := httptest.NewRecorder()
	h.LoginPage(w, httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/teachers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `action="/auth/login"`)
	assert.Contains(t, body, `name="redirect_uri" value="/teachers"`)
}

func TestLoginPageRejectsAbsoluteRedirect(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{})
	w := httptest.NewRecorder()
	h.LoginPage(w, httptest.NewRequest(http.MethodGet,
		"/auth/login?redirect_uri="+url.QueryEscape("https://evil.example/phish"), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="redirect_uri" value="/"`)
}

func TestLoginValidationSkipsService(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	h := newAuthHandlers(t, svc)
	w := httptest.NewRecorder()
	h.Login(w, postForm("/auth/login", url.Values{
		"email":    {"not-an-email"},
		"password": {""},
	}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, svc.loginCalls, "invalid credentials must not reach the platform")
	body := w.Body.String()
	assert.Contains(t, body, "Email must be a valid email address")
	assert.Contains(t, body, "Password is required")
	assert.Contains(t, body, errMsgFixBelow)
	assert.Contains(t, body, `value="not-an-email"`, "the email entry survives the re-render")
}

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{})
	w := httptest.NewRecorder()
	h.Login(w, postForm("/auth/login", url.Values{
		"email":        {"admin@classpoint.example"},
		"password":     {"secret1"},
		"redirect_uri": {"/classes"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/classes", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "sess-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Positive(t, cookies[0].MaxAge, "cookie lifetime follows the session expiry")
}

func TestLoginHTMXSuccessUsesHxRedirect(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{})
	w := httptest.NewRecorder()
	r := postForm("/auth/login", url.Values{
		"email":    {"admin@classpoint.example"},
		"password": {"secret1"},
	})
	r.Header.Set("Hx-Request", "true")
	h.Login(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/", w.Header().Get("Hx-Redirect"))
}

func TestLoginRemoteRejectionShownVerbatim(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{loginErr: apperrors.Remote(http.StatusUnauthorized, "Invalid email or password")}
	h := newAuthHandlers(t, svc)
	w := httptest.NewRecorder()
	h.Login(w, postForm("/auth/login", url.Values{
		"email":    {"admin@classpoint.example"},
		"password": {"wrong-pass"},
	}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.Empty(t, w.Result().Cookies(), "no session cookie on a failed login")
}

func TestLoginTransportFailureGetsGenericMessage(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{loginErr: apperrors.Transport("connection refused")}
	h := newAuthHandlers(t, svc)
	w := httptest.NewRecorder()
	h.Login(w, postForm("/auth/login", url.Values{
		"email":    {"admin@classpoint.example"},
		"password": {"secret1"},
	}))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Unable to sign in right now. Please try again.")
	assert.NotContains(t, body, "connection refused")
}

func TestLogoutClearsCookie(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{})
	w := httptest.NewRecorder()
	r := postForm("/auth/logout", url.Values{})
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	h.Logout(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogoutSurvivesStoreFailure(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{logoutErr: apperrors.Internal("redis gone")})
	w := httptest.NewRecorder()
	r := postForm("/auth/logout", url.Values{})
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	h.Logout(w, r)

	// Cookie removal is what matters; the server-side drop is best effort.
	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.Len(t, w.Result().Cookies(), 1)
	assert.Negative(t, w.Result().Cookies()[0].MaxAge)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{})
	w := httptest.NewRecorder()
	h.Register(w, postForm("/auth/register", url.Values{
		"fullName": {"J"},
		"email":    {"jane@classpoint.example"},
		"password": {"short"},
		"image":    {"/avatar.png"},
	}))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Full name must be at least 2 characters")
	assert.Contains(t, body, "Password must be at least 6 characters")
	assert.Contains(t, body, "Image must be a valid http(s) URL.")
	assert.NotContains(t, body, `value="short"`, "passwords are never echoed back")
}

func TestRegisterSuccessRedirectsToLogin(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(t, &stubAuthService{})
	w := httptest.NewRecorder()
	h.Register(w, postForm("/auth/register", url.Values{
		"fullName": {"Jane Doe"},
		"email":    {"jane@classpoint.example"},
		"password": {"secret1"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}
