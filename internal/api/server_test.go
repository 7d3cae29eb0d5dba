package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/pipeline"
	"github.com/MikeSquared-Agency/scribe/internal/sink"
)

func testServer(t *testing.T, apiToken string) (*Server, *sink.Memory) {
	t.Helper()
	lex, err := lexicon.Open("")
	if err != nil {
		t.Fatalf("lexicon.Open: %v", err)
	}
	logger := slog.New(slog.DiscardHandler)
	pipe := pipeline.New(lex, pipeline.Options{}, logger)
	mem := sink.NewMemory()
	return NewServer(0, apiToken, pipe, mem, logger), mem
}

func enrichBody(t *testing.T, dryRun bool) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(EnrichRequest{
		AgentID:        "agent-1",
		UserID:         "user-1",
		ConversationID: "conv-1",
		MessageText:    "How do I fix this SQL injection bug?",
		ResponseText:   "Use parameterized queries instead of string concatenation.",
		DryRun:         dryRun,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return bytes.NewReader(raw)
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t, "")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestStatus(t *testing.T) {
	srv, _ := testServer(t, "")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scribe/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["agent"] != "scribe" {
		t.Errorf("agent = %q, want scribe", body["agent"])
	}
}

func TestEnrich_RequiresToken(t *testing.T) {
	srv, mem := testServer(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/audit/enrich", enrichBody(t, false))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status without token = %d, want 401", rec.Code)
	}
	if len(mem.Entries()) != 0 {
		t.Error("unauthorized request reached the sink")
	}
}

func TestEnrich_Stores(t *testing.T) {
	srv, mem := testServer(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/audit/enrich", enrichBody(t, false))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp EnrichResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Stored || resp.SinkID == "" {
		t.Errorf("Stored = %v, SinkID = %q", resp.Stored, resp.SinkID)
	}
	if resp.Entry == nil || resp.Entry.Facets.Conversation == nil {
		t.Fatal("response entry incomplete")
	}
	if len(mem.Entries()) != 1 {
		t.Errorf("sink holds %d entries, want 1", len(mem.Entries()))
	}
}

func TestEnrich_DryRun(t *testing.T) {
	srv, mem := testServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/audit/enrich", enrichBody(t, true))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp EnrichResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Stored {
		t.Error("dry run reported stored")
	}
	if resp.Entry == nil {
		t.Fatal("dry run returned no entry")
	}
	if len(mem.Entries()) != 0 {
		t.Errorf("dry run appended %d entries", len(mem.Entries()))
	}
}

func TestEnrich_BadJSON(t *testing.T) {
	srv, _ := testServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/audit/enrich", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
