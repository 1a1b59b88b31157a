package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/consultdesk/server/internal/domain"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by UpdateSession and DeleteSession when the id
// does not exist. GetSession signals the same case with (nil, nil).
var ErrNotFound = errors.New("session not found")

// createRetries bounds retries on the unlikely session-id collision.
const createRetries = 3

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// isUniqueConstraintError reports a primary-key collision on insert.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateSession inserts a session with default data under a fresh id.
func (s *SQLiteStore) CreateSession(ctx context.Context) (*domain.Session, error) {
	data := domain.DefaultSessionData()
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal session data: %w", err)
	}

	now := time.Now()
	query := `INSERT INTO sessions (id, data, created_at, updated_at) VALUES (?, ?, ?, ?)`

	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		id, err := domain.NewSessionID()
		if err != nil {
			return nil, err
		}
		if _, err := s.db.ExecContext(ctx, query, id, string(raw), now.Unix(), now.Unix()); err != nil {
			if isUniqueConstraintError(err) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("insert session: %w", err)
		}
		return &domain.Session{ID: id, Data: data, CreatedAt: now, UpdatedAt: now}, nil
	}
	return nil, fmt.Errorf("insert session after %d id collisions: %w", createRetries, lastErr)
}

// GetSession retrieves a session by id, merging stored data over defaults.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, data, created_at, updated_at FROM sessions WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	session, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session row: %w", err)
	}
	return session, nil
}

// UpdateSession overwrites the session data and refreshes updated_at.
func (s *SQLiteStore) UpdateSession(ctx context.Context, id string, data domain.SessionData) (*domain.Session, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal session data: %w", err)
	}

	now := time.Now()
	query := `UPDATE sessions SET data = ?, updated_at = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, string(raw), now.Unix(), id)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.GetSession(ctx, id)
}

// ListSessions returns all sessions, newest first.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT id, data, created_at, updated_at FROM sessions ORDER BY created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		session, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a session by id.
func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// scanSession reads one sessions row. The stored JSON is unmarshalled over a
// fresh default template, so fields absent from older records keep their
// defaults instead of zeroing out.
func scanSession(scan func(dest ...any) error) (*domain.Session, error) {
	var (
		session   domain.Session
		raw       string
		createdAt int64
		updatedAt int64
	)
	if err := scan(&session.ID, &raw, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	session.Data = domain.DefaultSessionData()
	if err := json.Unmarshal([]byte(raw), &session.Data); err != nil {
		return nil, fmt.Errorf("unmarshal session data: %w", err)
	}

	session.CreatedAt = time.Unix(createdAt, 0)
	session.UpdatedAt = time.Unix(updatedAt, 0)
	return &session, nil
}
