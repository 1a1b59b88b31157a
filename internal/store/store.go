// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/consultdesk/server/internal/domain"
)

// Repository defines the interface for persisting consultation sessions.
// It is the service's only I/O boundary besides the HTTP surface.
type Repository interface {
	// CreateSession inserts a session with default data under a freshly
	// generated id and returns it.
	CreateSession(ctx context.Context) (*domain.Session, error)

	// GetSession retrieves a session by id. The stored data is merged over
	// the full default template so records written by older versions gain
	// newer fields with their defaults. Returns (nil, nil) when the id does
	// not exist.
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	// UpdateSession overwrites the session's data wholesale and refreshes
	// updated_at. Last write wins; there is no optimistic locking.
	UpdateSession(ctx context.Context, id string, data domain.SessionData) (*domain.Session, error)

	// ListSessions returns all sessions, newest first.
	ListSessions(ctx context.Context) ([]*domain.Session, error)

	// DeleteSession removes a session by id.
	DeleteSession(ctx context.Context, id string) error

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// Close closes the underlying database.
	Close() error
}
