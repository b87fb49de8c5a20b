// Package httpapi exposes the inkwell services over a JSON HTTP API with
// cookie-borne sessions.
package httpapi

import (
	"net/http"
	"time"

	"inkwell/internal/logging"
	"inkwell/internal/server/auth"
	"inkwell/internal/server/content"
	"inkwell/internal/server/records"
	"inkwell/internal/server/sessions"
)

// CookieName is the session cookie carried by browser clients.
const CookieName = "inkwell_session"

type Server struct {
	auth     *auth.Service
	messages *records.MessageService
	posts    *records.PostService
	content  *content.Service
	sessions *sessions.Manager
	logger   logging.Logger

	sessionTTL time.Duration
	mux        *http.ServeMux
}

func New(
	authSvc *auth.Service,
	messages *records.MessageService,
	posts *records.PostService,
	contentSvc *content.Service,
	sm *sessions.Manager,
	sessionTTL time.Duration,
	logger logging.Logger,
) *Server {
	s := &Server{
		auth:       authSvc,
		messages:   messages,
		posts:      posts,
		content:    contentSvc,
		sessions:   sm,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
	s.mux = s.routes()
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/me", s.handleMe)

	mux.HandleFunc("GET /api/messages", s.handleListMessages)
	mux.HandleFunc("POST /api/messages", s.handleCreateMessage)
	mux.HandleFunc("PUT /api/messages/{id}", s.handleUpdateMessage)

	mux.HandleFunc("GET /api/posts", s.handleListPosts)
	mux.HandleFunc("POST /api/posts", s.handleCreatePost)
	mux.HandleFunc("PUT /api/posts/{id}", s.handleUpdatePost)
	mux.HandleFunc("DELETE /api/posts/{id}", s.handleDeletePost)

	mux.HandleFunc("GET /api/content", s.handleGetContent)
	mux.HandleFunc("PUT /api/content", s.handleUpdateContent)

	mux.HandleFunc("GET /api/healthz", s.handleHealthz)

	return mux
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withRequestLog(s.mux).ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
