package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/consultdesk/server/internal/domain"
	"github.com/consultdesk/server/internal/store"
	"github.com/consultdesk/server/internal/summary"
	"github.com/go-chi/chi/v5"
)

// SessionHandler handles consultation-session endpoints.
type SessionHandler struct {
	*Handler
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(base *Handler) *SessionHandler {
	return &SessionHandler{Handler: base}
}

// RegisterRoutes registers session routes.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Sync)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/summary", h.Summary)
	})
}

// sessionResponse is a session plus its two shareable URLs.
type sessionResponse struct {
	*domain.Session
	AdminURL  string `json:"admin_url"`
	ClientURL string `json:"client_url"`
}

func (h *SessionHandler) respond(session *domain.Session) sessionResponse {
	return sessionResponse{
		Session:   session,
		AdminURL:  h.frontendURL + "/consult/admin/" + session.ID,
		ClientURL: h.frontendURL + "/consult/" + session.ID,
	}
}

// Create starts a new consultation with the default questionnaire template.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.repo.CreateSession(r.Context())
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	slog.Info("Session created", "session_id", session.ID)
	JSON(w, http.StatusCreated, h.respond(session))
}

// List returns all sessions, newest first.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.repo.ListSessions(r.Context())
	if err != nil {
		slog.Error("Failed to list sessions", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, h.respond(s))
	}
	JSON(w, http.StatusOK, out)
}

// Get returns one session, with stored data merged over the default template.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := h.repo.GetSession(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get session", "session_id", id, "error", err)
		Error(w, http.StatusInternalServerError, "failed to get session")
		return
	}
	if session == nil {
		h.notFound(w, id)
		return
	}
	JSON(w, http.StatusOK, h.respond(session))
}

// Sync is the admin's explicit synchronization: the whole data value is
// overwritten (last write wins) and the committed snapshot is pushed to every
// subscribed client view.
func (h *SessionHandler) Sync(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var data domain.SessionData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		Error(w, http.StatusBadRequest, "invalid session data")
		return
	}
	if !domain.IsValidSection(data.AdminSection) {
		data.AdminSection = domain.DefaultAdminSection
	}

	session, err := h.repo.UpdateSession(r.Context(), id, data)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notFound(w, id)
			return
		}
		slog.Error("Failed to sync session", "session_id", id, "error", err)
		Error(w, http.StatusInternalServerError, "failed to sync session")
		return
	}

	h.hub.Publish(*session)
	slog.Info("Session synced", "session_id", id, "admin_section", session.Data.AdminSection)
	JSON(w, http.StatusOK, h.respond(session))
}

// Delete removes a session from the list view.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.repo.DeleteSession(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notFound(w, id)
			return
		}
		slog.Error("Failed to delete session", "session_id", id, "error", err)
		Error(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	slog.Info("Session deleted", "session_id", id)
	JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Summary renders the consultation as the plain-text block the admin copies
// to the clipboard.
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := h.repo.GetSession(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get session", "session_id", id, "error", err)
		Error(w, http.StatusInternalServerError, "failed to get session")
		return
	}
	if session == nil {
		h.notFound(w, id)
		return
	}
	Text(w, http.StatusOK, summary.Consultation(session.Data, time.Now()))
}

// notFound renders the not-found signal with the raw id for debugging, which
// the views turn into the "session not found" screen.
func (h *SessionHandler) notFound(w http.ResponseWriter, id string) {
	JSON(w, http.StatusNotFound, map[string]string{
		"error": "session not found",
		"id":    id,
	})
}
