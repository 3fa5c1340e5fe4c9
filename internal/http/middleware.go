package httpx

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/classpoint/admin-ui/internal/api"
	domainauth "github.com/classpoint/admin-ui/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Guard authenticates browser requests against the session store and gates
// routes by role. The upstream booking API re-checks authorization on every
// call; the guard keeps users away from screens they could never use and
// carries the bearer token into the request context for the resource client.
type Guard struct {
	Auth         AuthServiceInterface
	CookieDomain string
	CookieSecure bool
}

// RequireAuth admits any authenticated session. The session and its bearer
// token are attached to the request context before the handler runs.
func (g *Guard) RequireAuth() func(http.Handler) http.Handler {
	return g.require("")
}

// RequireRole admits only sessions whose role matches exactly. Roles do not
// form a hierarchy; an admin route stays closed to teachers and members.
func (g *Guard) RequireRole(role domainauth.Role) func(http.Handler) http.Handler {
	return g.require(role)
}

func (g *Guard) require(role domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Fresh lookup on every request; verdicts are never cached.
			session := g.sessionFromRequest(w, r)

			switch domainauth.Authorize(session, role) {
			case domainauth.VerdictAllow:
				ctx := SetSessionInContext(r.Context(), session)
				ctx = api.WithToken(ctx, session.Token)
				next.ServeHTTP(w, r.WithContext(ctx))
			case domainauth.VerdictDenyUnauthenticated:
				redirectToLogin(w, r)
			case domainauth.VerdictDenyWrongRole:
				showAccessDenied(w, r)
			}
		})
	}
}

// sessionFromRequest resolves the session cookie into a live session. An
// expired or unknown session clears the cookie so the browser stops
// presenting a dead session ID.
func (g *Guard) sessionFromRequest(w http.ResponseWriter, r *http.Request) *domainauth.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	session, err := g.Auth.GetSession(r.Context(), cookie.Value)
	if err != nil {
		clearCookie(w, r, cookieParams{Name: sessionCookieName, Domain: g.CookieDomain, Secure: g.CookieSecure})
		return nil
	}

	return session
}

// redirectToLogin sends the browser to the login page with the current URL as redirect_uri.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := safeRedirectPath(r.URL.RequestURI())
	loginURL := "/auth/login?redirect_uri=" + url.QueryEscape(redirectPath)

	if IsHTMX(r) {
		// Tell htmx to navigate the whole window instead of swapping a fragment.
		SetHXRedirect(w, loginURL)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// showAccessDenied renders the single access-denied notice for browser
// requests and a JSON error otherwise. The protected handler never runs.
func showAccessDenied(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("insufficient permissions"),
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	//nolint:errcheck // nothing to do about a failed write at this point
	w.Write([]byte(accessDeniedHTML))
}

const accessDeniedHTML = `<!doctype html>
<html lang="en"><head><title>Access denied</title></head>
<body><main class="notice notice-denied">
<h1>Access denied</h1>
<p>Your account does not have access to this page.</p>
<p><a href="/">Back to home</a></p>
</main></body></html>
`

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that detects browser requests vs programmatic ones.
// It sets a context value that downstream handlers use to decide between HTML and JSON.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isBrowser := isBrowserRequest(r)
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if val := r.Context().Value(browserRequestKey{}); val != nil {
		if isBrowser, ok := val.(bool); ok {
			return isBrowser
		}
	}
	// Fallback to direct detection if middleware wasn't used
	return isBrowserRequest(r)
}

func isBrowserRequest(r *http.Request) bool {
	// Static assets are not browser navigations
	if strings.HasPrefix(r.URL.Path, "/static/") {
		return false
	}

	// HTMX requests are browser requests
	if IsHTMX(r) {
		return true
	}

	accept := r.Header.Get("Accept")
	if accept == "" {
		// No Accept header, assume browser
		return true
	}
	return strings.Contains(accept, "text/html")
}

// gzipPool reuses gzip writers across responses.
//
//nolint:gochecknoglobals // standard sync.Pool usage
var gzipPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// Compression returns a middleware that gzips HTML/CSS/JS/JSON responses
// when the client advertises gzip support.
func Compression() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead ||
				!strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")
			gw := &gzipResponseWriter{ResponseWriter: w}
			next.ServeHTTP(gw, r)
			gw.close()
		})
	}
}

// gzipResponseWriter compresses the body once a compressible Content-Type is known.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz            *gzip.Writer
	headerWritten bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.headerWritten {
		return
	}
	w.headerWritten = true

	compressible := status >= 200 &&
		status != http.StatusNoContent &&
		status != http.StatusNotModified &&
		w.Header().Get("Content-Encoding") == "" &&
		isCompressibleContentType(w.Header().Get("Content-Type"))
	if compressible {
		gz, _ := gzipPool.Get().(*gzip.Writer)
		gz.Reset(w.ResponseWriter)
		w.gz = gz
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length") // length changes after compression
	}

	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.gz != nil {
		return w.gz.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *gzipResponseWriter) close() {
	if w.gz == nil {
		return
	}
	//nolint:errcheck // close errors mean the client went away
	w.gz.Close()
	gzipPool.Put(w.gz)
	w.gz = nil
}

func isCompressibleContentType(contentType string) bool {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	switch strings.TrimSpace(strings.ToLower(contentType)) {
	case "text/html", "text/css", "text/plain", "text/javascript",
		"application/javascript", "application/json", "image/svg+xml":
		return true
	}
	return false
}
