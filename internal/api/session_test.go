package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consultdesk/server/internal/domain"
	"github.com/consultdesk/server/internal/notify"
	"github.com/consultdesk/server/internal/store"
	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T) (chi.Router, *notify.Hub) {
	t.Helper()
	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "consult.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	hub := notify.NewHub()
	base := NewHandler(repo, hub, "http://localhost:3000")

	r := chi.NewRouter()
	NewSessionHandler(base).RegisterRoutes(r)
	NewEstimateHandler(base).RegisterRoutes(r)
	return r, hub
}

func doJSON(t *testing.T, r chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, r chi.Router) sessionResponse {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp
}

func TestCreateSessionReturnsShareURLs(t *testing.T) {
	r, _ := newTestServer(t)

	resp := createSession(t, r)
	if len(resp.ID) != 6 {
		t.Errorf("id = %q, want 6 chars", resp.ID)
	}
	if want := "http://localhost:3000/consult/admin/" + resp.ID; resp.AdminURL != want {
		t.Errorf("admin_url = %q, want %q", resp.AdminURL, want)
	}
	if want := "http://localhost:3000/consult/" + resp.ID; resp.ClientURL != want {
		t.Errorf("client_url = %q, want %q", resp.ClientURL, want)
	}
	if resp.Data.PageCount != 5 || resp.Data.SectionCount != 15 {
		t.Errorf("new session not on default template: %+v", resp.Data)
	}
}

func TestGetSessionNotFoundEchoesID(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/sessions/NOPE99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "session not found" || body["id"] != "NOPE99" {
		t.Errorf("body = %v", body)
	}
}

func TestSyncOverwritesAndPublishes(t *testing.T) {
	r, hub := newTestServer(t)
	created := createSession(t, r)

	updates, cancel := hub.Subscribe(created.ID)
	defer cancel()

	data := created.Data
	data.SiteType = "shopping"
	data.PageCount = 7
	data.AdminSection = "budget"

	rec := doJSON(t, r, http.MethodPut, "/api/sessions/"+created.ID, data)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync: status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.SiteType != "shopping" || resp.Data.PageCount != 7 {
		t.Errorf("sync response not updated: %+v", resp.Data)
	}

	select {
	case got := <-updates:
		if got.Data.AdminSection != "budget" {
			t.Errorf("published adminSection = %q, want budget", got.Data.AdminSection)
		}
	default:
		t.Error("no update published to subscribers")
	}

	// A later GET sees the committed write.
	rec = doJSON(t, r, http.MethodGet, "/api/sessions/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get after sync: status %d", rec.Code)
	}
	var after sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&after); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if after.Data.SiteType != "shopping" {
		t.Errorf("persisted siteType = %q, want shopping", after.Data.SiteType)
	}
}

func TestSyncSanitizesUnknownAdminSection(t *testing.T) {
	r, _ := newTestServer(t)
	created := createSession(t, r)

	data := created.Data
	data.AdminSection = "garbage"

	rec := doJSON(t, r, http.MethodPut, "/api/sessions/"+created.ID, data)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync: status %d", rec.Code)
	}
	var resp sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.AdminSection != domain.DefaultAdminSection {
		t.Errorf("adminSection = %q, want %q", resp.Data.AdminSection, domain.DefaultAdminSection)
	}
}

func TestSyncMissingSessionReturns404(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPut, "/api/sessions/NOPE99", domain.DefaultSessionData())
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSyncRejectsMalformedBody(t *testing.T) {
	r, _ := newTestServer(t)
	created := createSession(t, r)

	req := httptest.NewRequest(http.MethodPut, "/api/sessions/"+created.ID, strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	r, _ := newTestServer(t)
	created := createSession(t, r)

	rec := doJSON(t, r, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/sessions/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", rec.Code)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status %d, want 404", rec.Code)
	}
}

func TestListSessions(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/sessions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	var empty []sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&empty); err != nil {
		t.Fatalf("decode empty list: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("fresh store listed %d sessions", len(empty))
	}

	first := createSession(t, r)
	second := createSession(t, r)

	rec = doJSON(t, r, http.MethodGet, "/api/sessions", nil)
	var sessions []sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&sessions); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("listed %d sessions, want 2", len(sessions))
	}
	ids := map[string]bool{sessions[0].ID: true, sessions[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Errorf("list missing created sessions: %v", ids)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	created := createSession(t, r)

	data := created.Data
	data.SiteType = "shopping"
	data.PageCount = 6
	data.SectionCount = 20
	if rec := doJSON(t, r, http.MethodPut, "/api/sessions/"+created.ID, data); rec.Code != http.StatusOK {
		t.Fatalf("sync: status %d", rec.Code)
	}

	rec := doJSON(t, r, http.MethodGet, "/api/sessions/"+created.ID+"/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary: status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"【사이트 유형】 쇼핑몰", "약 6페이지", "150~200만원", "📅 상담일:"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary missing %q:\n%s", want, body)
		}
	}

	rec = doJSON(t, r, http.MethodGet, "/api/sessions/NOPE99/summary", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("summary of missing session: status %d, want 404", rec.Code)
	}
}
