// Package realtime pushes committed session snapshots to client views over
// WebSocket.
package realtime

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/consultdesk/server/internal/domain"
	"github.com/consultdesk/server/internal/notify"
	"github.com/consultdesk/server/internal/store"
	"github.com/go-chi/chi/v5"
)

// Handler upgrades client views to a per-session subscription.
type Handler struct {
	repo store.Repository
	hub  *notify.Hub
}

// NewHandler creates a new realtime handler.
func NewHandler(repo store.Repository, hub *notify.Hub) *Handler {
	return &Handler{repo: repo, hub: hub}
}

// event is one message on the subscription channel. The first message after
// accept is the current snapshot; every further message is an update in
// commit order. There is no replay: updates missed while disconnected are
// gone until the next sync.
type event struct {
	Type    string         `json:"type"` // "snapshot" or "update"
	Session domain.Session `json:"session"`
}

// ServeHTTP implements the WebSocket subscription endpoint.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	slog.Info("WebSocket subscription request", "session_id", sessionID, "ip", r.RemoteAddr)

	session, err := h.repo.GetSession(r.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to load session for subscription", "session_id", sessionID, "error", err)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "session_id", sessionID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "subscription ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "session_id", sessionID)
		}
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	updates, unsubscribe := h.hub.Subscribe(sessionID)
	defer unsubscribe()

	if err := wsjson.Write(ctx, ws, event{Type: "snapshot", Session: *session}); err != nil {
		slog.Debug("Failed to send initial snapshot", "session_id", sessionID, "error", err)
		return
	}

	// The client never writes back; the read loop only notices disconnects.
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("WebSocket subscription closed", "session_id", sessionID)
			return
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if err := wsjson.Write(ctx, ws, event{Type: "update", Session: snapshot}); err != nil {
				slog.Debug("Failed to push session update", "session_id", sessionID, "error", err)
				return
			}
		}
	}
}
