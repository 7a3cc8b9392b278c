package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/lexicloud/pkg/fonts"
	"github.com/matzehuels/lexicloud/pkg/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	if _, err := fonts.Default(); err != nil {
		t.Skipf("no system font: %v", err)
	}
	svc, err := service.New(service.DefaultConfig())
	if err != nil {
		t.Fatalf("service.New: %v", err)
	}
	return NewServer(svc, nil)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestRegisterPlace(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/places/lobby/register", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Place       string `json:"place"`
		Backfilling bool   `json:"backfilling"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Place != "lobby" || resp.Backfilling {
		t.Errorf("resp = %+v", resp)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestRegisterRejectsBadPlaceID(t *testing.T) {
	srv := newTestServer(t)
	long := strings.Repeat("a", 200)
	rec := doJSON(t, srv, http.MethodPost, "/places/"+long+"/register", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestIngestMessage(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/places/lobby/register", nil)

	rec := doJSON(t, srv, http.MethodPost, "/messages", map[string]string{
		"place": "lobby", "person": "ada", "text": "hello world",
	})
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204: %s", rec.Code, rec.Body)
	}
}

func TestIngestUnregisteredPlace(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/messages", map[string]string{
		"place": "ghost", "person": "ada", "text": "hello",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "PLACE_NOT_FOUND" {
		t.Errorf("code = %q, want PLACE_NOT_FOUND", resp.Code)
	}
}

func TestIngestMalformedBody(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCloudPNG(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/places/lobby/register", nil)
	doJSON(t, srv, http.MethodPost, "/messages", map[string]string{
		"place": "lobby", "person": "ada", "text": "tensors and manifolds",
	})

	rec := doJSON(t, srv, http.MethodGet, "/people/ada/cloud.png?accent=%233366cc", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not PNG")
	}
}

func TestCloudPNGUnknownPerson(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/people/nobody/cloud.png", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestEmojiLeaderboard(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/places/lobby/register", nil)
	doJSON(t, srv, http.MethodPost, "/messages", map[string]string{
		"place": "lobby", "person": "ada", "text": "<:wave:1> <:wave:1> <:sob:2>",
	})

	rec := doJSON(t, srv, http.MethodGet, "/places/lobby/emojis", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<:wave:1>") {
		t.Errorf("board = %q, want wave listed", body)
	}
}
