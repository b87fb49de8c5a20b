package httpapi

import (
	"net/http"
)

type contentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	doc, err := s.content.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, err := s.content.Update(r.Context(), s.identity(r), req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
