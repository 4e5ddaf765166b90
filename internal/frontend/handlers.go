package frontend

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-notes-ai/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// BackendClient is the subset of the API client used by the handlers.
type BackendClient interface {
	Register(ctx context.Context, username, password string) (int, error)
	Login(ctx context.Context, username, password string) (int, string, error)
}

// CookieIssuer signs and reads the frontend session cookie.
type CookieIssuer interface {
	Issue(userID string) (string, error)
	UserIDFromRequest(r *http.Request) string
}

// Handlers renders pages and proxies form submissions to the backend.
type Handlers struct {
	backend   BackendClient
	cookie    CookieIssuer
	cookieAge int // Max-Age of the session cookie in seconds
	tmpl      *template.Template
}

// NewHandlers creates the frontend handler set.
func NewHandlers(backend BackendClient, cookie CookieIssuer, cookieAgeSeconds int) (*Handlers, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handlers{
		backend:   backend,
		cookie:    cookie,
		cookieAge: cookieAgeSeconds,
		tmpl:      tmpl,
	}, nil
}

type pageData struct {
	UserID string
}

// HomePage renders the home page.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", pageData{UserID: h.cookie.UserIDFromRequest(r)})
}

// LoginPage renders the login form.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", pageData{})
}

// LoginSubmit forwards credentials to the backend. On success it sets the
// frontend's own session cookie with the returned user id and redirects home;
// otherwise it answers plain text with the backend's status code.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	status, userID, err := h.backend.Login(r.Context(), username, password)
	if err != nil {
		logger.Log.Errorw("login proxy failed", "error", err)
		http.Error(w, "Login failed", http.StatusBadGateway)
		return
	}
	if status != http.StatusOK {
		http.Error(w, "Login failed", status)
		return
	}

	token, err := h.cookie.Issue(userID)
	if err != nil {
		logger.Log.Errorw("failed to issue session cookie", "error", err)
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     WebSessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookieAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

// RegisterPage renders the registration form.
func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", pageData{})
}

// RegisterSubmit forwards a registration to the backend. On success it
// redirects to the login form.
func (h *Handlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	status, err := h.backend.Register(r.Context(), username, password)
	if err != nil {
		logger.Log.Errorw("register proxy failed", "error", err)
		http.Error(w, "Registration failed", http.StatusBadGateway)
		return
	}
	if status != http.StatusCreated {
		http.Error(w, "Registration failed", status)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// Logout clears the frontend session cookie and redirects home.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     WebSessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := h.tmpl.ExecuteTemplate(w, "404.html", pageData{}); err != nil {
		logger.Log.Errorw("failed to render template", "template", "404.html", "error", err)
	}
}

func (h *Handlers) render(w http.ResponseWriter, name string, data pageData) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
