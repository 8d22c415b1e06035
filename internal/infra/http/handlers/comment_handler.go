package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vflorencio/radar-leads/internal/usecase"
)

type CommentHandler struct {
	Sessions *usecase.SessionManager
}

func NewCommentHandler(sessions *usecase.SessionManager) *CommentHandler {
	return &CommentHandler{Sessions: sessions}
}

type CommentRequest struct {
	Content string `json:"content"`
}

// HandleAdd (POST /leads/{id}/comments)
func (h *CommentHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.Sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	comment, err := session.Comments.Add(r.Context(), chi.URLParam(r, "id"), userID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// HandleEdit (PUT /comments/{id}) — só o autor pode.
func (h *CommentHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.Sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	commentID := chi.URLParam(r, "id")
	if err := session.Comments.Edit(r.Context(), commentID, userID, req.Content); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleRemove (DELETE /comments/{id}) — só o autor pode.
func (h *CommentHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if userID == "" {
		http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
		return
	}

	session, err := h.Sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := session.Comments.Remove(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
