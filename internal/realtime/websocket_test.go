package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/consultdesk/server/internal/notify"
	"github.com/consultdesk/server/internal/store"
	"github.com/go-chi/chi/v5"
)

func newTestSetup(t *testing.T) (*httptest.Server, store.Repository, *notify.Hub) {
	t.Helper()
	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "consult.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	hub := notify.NewHub()
	r := chi.NewRouter()
	r.Get("/ws/sessions/{id}", NewHandler(repo, hub).ServeHTTP)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, repo, hub
}

func wsURL(srv *httptest.Server, sessionID string) string {
	return strings.Replace(srv.URL, "http://", "ws://", 1) + "/ws/sessions/" + sessionID
}

func TestSubscriptionSendsSnapshotThenUpdates(t *testing.T) {
	srv, repo, hub := newTestSetup(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := repo.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	ws, _, err := websocket.Dial(ctx, wsURL(srv, session.ID), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ws.Close(websocket.StatusNormalClosure, "test done")

	var first event
	if err := wsjson.Read(ctx, ws, &first); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if first.Type != "snapshot" {
		t.Fatalf("first event type = %q, want snapshot", first.Type)
	}
	if first.Session.ID != session.ID {
		t.Errorf("snapshot session id = %q, want %q", first.Session.ID, session.ID)
	}
	if first.Session.Data.PageCount != 5 {
		t.Errorf("snapshot pageCount = %d, want default 5", first.Session.Data.PageCount)
	}

	// The subscription registers before the snapshot is written, so a sync
	// right after the snapshot arrives is guaranteed to be delivered.
	data := session.Data
	data.SiteType = "shopping"
	data.AdminSection = "budget"
	updated, err := repo.UpdateSession(ctx, session.ID, data)
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	hub.Publish(*updated)

	var second event
	if err := wsjson.Read(ctx, ws, &second); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if second.Type != "update" {
		t.Fatalf("second event type = %q, want update", second.Type)
	}
	if second.Session.Data.SiteType != "shopping" {
		t.Errorf("update siteType = %q, want shopping", second.Session.Data.SiteType)
	}
	if second.Session.Data.AdminSection != "budget" {
		t.Errorf("update adminSection = %q, want budget", second.Session.Data.AdminSection)
	}
}

func TestSubscriptionRejectsUnknownSession(t *testing.T) {
	srv, _, _ := newTestSetup(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, wsURL(srv, "NOPE99"), nil)
	if err == nil {
		t.Fatal("Dial succeeded for unknown session")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("handshake response = %+v, want 404", resp)
	}
}

func TestDisconnectUnregistersSubscriber(t *testing.T) {
	srv, repo, hub := newTestSetup(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := repo.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	ws, _, err := websocket.Dial(ctx, wsURL(srv, session.ID), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}

	var first event
	if err := wsjson.Read(ctx, ws, &first); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if n := hub.SubscriberCount(session.ID); n != 1 {
		t.Fatalf("SubscriberCount = %d, want 1", n)
	}

	ws.Close(websocket.StatusNormalClosure, "client leaving")

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount(session.ID) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber not unregistered after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
