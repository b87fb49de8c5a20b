package httpapi

import (
	"net/http"

	"inkwell/internal/common"
	"inkwell/internal/server/models"
)

// IdentitySummary is what the API returns about an account: never the hash.
// Token duplicates the cookie value for non-browser clients.
type IdentitySummary struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Token    string      `json:"token,omitempty"`
}

type credentialsRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, token, err := s.auth.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, IdentitySummary{ID: user.ID, Username: user.Username, Role: user.Role, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, IdentitySummary{ID: user.ID, Username: user.Username, Role: user.Role, Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		s.auth.Logout(r.Context(), token)
	}
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	ident := s.identity(r)
	if ident.IsAnonymous() {
		s.writeError(w, r, common.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, IdentitySummary{ID: ident.UserID, Username: ident.Username, Role: ident.Role})
}
