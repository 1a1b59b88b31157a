// Package notify fans committed session snapshots out to live subscribers.
//
// Delivery is at most once per update, in commit order. A subscriber that
// falls behind its buffer loses events rather than blocking the writer; a
// stale client view catches up on the next sync, which carries the full
// snapshot anyway.
package notify

import (
	"log/slog"
	"sync"

	"github.com/consultdesk/server/internal/domain"
)

// subscriberBuffer is the per-subscriber channel depth. Syncs are explicit
// user actions, so bursts are short.
const subscriberBuffer = 8

// Hub routes session updates to subscribers keyed by session id.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[int]chan domain.Session
	next int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan domain.Session)}
}

// Subscribe registers for updates to one session. The returned cancel
// function unregisters and closes the channel; it is safe to call more than
// once.
func (h *Hub) Subscribe(sessionID string) (<-chan domain.Session, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sessionID]; !ok {
		h.subs[sessionID] = make(map[int]chan domain.Session)
	}
	key := h.next
	h.next++

	ch := make(chan domain.Session, subscriberBuffer)
	h.subs[sessionID][key] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if subs, ok := h.subs[sessionID]; ok {
				if current, exists := subs[key]; exists {
					delete(subs, key)
					close(current)
					if len(subs) == 0 {
						delete(h.subs, sessionID)
					}
				}
			}
		})
	}
	return ch, cancel
}

// Publish delivers a freshly committed snapshot to every subscriber of the
// session. Full subscriber buffers drop the event.
func (h *Hub) Publish(session domain.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[session.ID] {
		select {
		case ch <- session:
		default:
			slog.Warn("Dropping session update for slow subscriber", "session_id", session.ID)
		}
	}
}

// SubscriberCount reports the number of live subscribers for a session.
func (h *Hub) SubscriberCount(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[sessionID])
}
