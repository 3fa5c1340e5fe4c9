package httpx

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	adminui "github.com/classpoint/admin-ui"
	"github.com/classpoint/admin-ui/internal/api"
	domainauth "github.com/classpoint/admin-ui/internal/domain/auth"
)

// Template directory paths, from the project root (dev mode) and from the
// internal/http test files.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	API          *api.Client
	Auth         AuthServiceInterface
	CookieDomain string
	CookieSecure bool
	IsDev        bool         // Development mode flag for hot reloading, etc.
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	uiHandlers := setupUIHandlers(services)
	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		UI:           uiHandlers,
		CookieDomain: services.CookieDomain,
		CookieSecure: services.CookieSecure,
		Logger:       services.Logger,
	}
	guard := &Guard{
		Auth:         services.Auth,
		CookieDomain: services.CookieDomain,
		CookieSecure: services.CookieSecure,
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	registerAuthRoutes(mux, authHandlers)
	registerAdminRoutes(mux, uiHandlers, guard)
	registerAccountRoutes(mux, uiHandlers, guard)

	return BrowserDetection()(Compression()(mux))
}

// setupUIHandlers builds the template renderer and the UI handler set.
func setupUIHandlers(services RouterServices) *UIHandlers {
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services.IsDev),
		Logger:     services.Logger,
	})
	if err != nil {
		// Without templates no page can render; fail fast during setup.
		log.Fatalf("template renderer setup failed: %v", err)
	}

	return &UIHandlers{
		T:            renderer,
		API:          services.API,
		Auth:         services.Auth,
		CookieDomain: services.CookieDomain,
		CookieSecure: services.CookieSecure,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}
}

func templateFS(isDev bool) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(adminui.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		log.Printf("embedded template FS unavailable: %v; falling back to disk", err)
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

func staticHandler(isDev bool) http.Handler {
	if isDev {
		return http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static")))
	}
	sub, err := fs.Sub(adminui.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("embedded static FS unavailable: %v; falling back to disk", err)
		return http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static")))
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.LoginPage)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/register", h.RegisterPage)
	mux.HandleFunc("POST /auth/register", h.Register)
}

// registerAdminRoutes wires the management screens. Each one requires the
// admin role exactly; teachers and members are denied, not downgraded.
func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers, guard *Guard) {
	admin := guard.RequireRole(domainauth.RoleAdmin)

	mux.Handle("GET /classes", admin(http.HandlerFunc(h.ClassesList)))
	mux.Handle("GET /classes/new", admin(http.HandlerFunc(h.ClassFormNew)))
	mux.Handle("POST /classes/new", admin(http.HandlerFunc(h.ClassCreate)))
	mux.Handle("GET /classes/{id}/edit", admin(http.HandlerFunc(h.ClassFormEdit)))
	mux.Handle("POST /classes/{id}/edit", admin(http.HandlerFunc(h.ClassUpdate)))

	mux.Handle("GET /teachers", admin(http.HandlerFunc(h.TeachersList)))
	mux.Handle("GET /teachers/new", admin(http.HandlerFunc(h.TeacherFormNew)))
	mux.Handle("POST /teachers/new", admin(http.HandlerFunc(h.TeacherCreate)))
	mux.Handle("GET /teachers/{id}/edit", admin(http.HandlerFunc(h.TeacherFormEdit)))
	mux.Handle("POST /teachers/{id}/edit", admin(http.HandlerFunc(h.TeacherUpdate)))

	mux.Handle("GET /members", admin(http.HandlerFunc(h.MembersList)))
	mux.Handle("GET /members/new", admin(http.HandlerFunc(h.MemberFormNew)))
	mux.Handle("POST /members/new", admin(http.HandlerFunc(h.MemberCreate)))
	mux.Handle("GET /members/{id}/edit", admin(http.HandlerFunc(h.MemberFormEdit)))
	mux.Handle("POST /members/{id}/edit", admin(http.HandlerFunc(h.MemberUpdate)))

	mux.Handle("GET /bookings", admin(http.HandlerFunc(h.BookingsList)))
}

// registerAccountRoutes wires screens open to any authenticated role.
func registerAccountRoutes(mux *http.ServeMux, h *UIHandlers, guard *Guard) {
	authed := guard.RequireAuth()

	mux.Handle("GET /profile", authed(http.HandlerFunc(h.ProfilePage)))
	mux.Handle("GET /{$}", authed(http.HandlerFunc(h.Index)))
}

// Index routes the signed-in user to their home screen by role.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session != nil && session.Role == domainauth.RoleAdmin {
		http.Redirect(w, r, "/classes", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// NotFound renders a minimal 404 response.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
