package record

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/facet"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/pricing"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

var fixedTime = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func testAssembler() *Assembler {
	seq := 0
	return NewAssembler(
		func() time.Time { return fixedTime },
		func() string { seq++; return string(rune('a' + seq - 1)) },
	)
}

// allResults runs every default classifier over the interaction.
func allResults(t *testing.T, in exchange.Interaction) []facet.Result {
	t.Helper()
	lex := lexicon.Defaults()
	sig := signal.NewExtractor(lex).Extract(in)
	var out []facet.Result
	for _, ctor := range facet.Defaults() {
		out = append(out, ctor(lex).Classify(in, sig))
	}
	return out
}

func TestAssemble_CompleteEntry(t *testing.T) {
	in := exchange.Interaction{
		MessageText:  "How do I fix this SQL injection bug?",
		ResponseText: "Use parameterized queries instead of string concatenation.",
	}
	m := exchange.Metrics{
		ResponseLatencyMs: 850,
		Tokens:            &exchange.TokenUsage{PromptTokens: 100, CompletionTokens: 50},
		Model:             &exchange.ModelConfig{ModelID: "gpt-4o", Version: "2024-08-06"},
	}
	refs := exchange.Refs{AgentID: "agent-1", UserID: "user-1", ConversationID: "conv-1"}

	entry, err := testAssembler().Assemble(in, allResults(t, in), m, refs, pricing.DefaultTable())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if entry.Kind != KindInteraction {
		t.Errorf("Kind = %q, want %q", entry.Kind, KindInteraction)
	}
	if entry.AgentID != "agent-1" || entry.UserID != "user-1" {
		t.Errorf("refs not stamped: agent=%q user=%q", entry.AgentID, entry.UserID)
	}
	if !entry.CreatedAt.Equal(fixedTime) {
		t.Errorf("CreatedAt = %v, want injected clock value", entry.CreatedAt)
	}
	if entry.SourceHash != Fingerprint(in) {
		t.Errorf("SourceHash = %q, want fingerprint of input", entry.SourceHash)
	}
	if entry.Facets.Conversation.ConversationID != "conv-1" {
		t.Errorf("ConversationID = %q", entry.Facets.Conversation.ConversationID)
	}
	if entry.Facets.Conversation.MessageID == "" {
		t.Error("MessageID not stamped")
	}
	if entry.Facets.Performance.ResponseLatencyMs != 850 {
		t.Errorf("ResponseLatencyMs = %d, want 850", entry.Facets.Performance.ResponseLatencyMs)
	}
	if entry.Summary == "" || entry.Summary == "empty exchange" {
		t.Errorf("Summary = %q", entry.Summary)
	}
}

func TestAssemble_MissingFacetFails(t *testing.T) {
	in := exchange.Interaction{MessageText: "hello"}
	results := allResults(t, in)

	// Drop the emotional slot.
	var trimmed []facet.Result
	for _, r := range results {
		if r.Facet() == facet.NameEmotional {
			continue
		}
		trimmed = append(trimmed, r)
	}

	_, err := testAssembler().Assemble(in, trimmed, exchange.Metrics{}, exchange.Refs{}, pricing.DefaultTable())
	if err == nil {
		t.Fatal("expected schema violation, got nil")
	}
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("error type = %T, want *SchemaViolation", err)
	}
	if len(sv.Missing) != 1 || sv.Missing[0] != facet.NameEmotional {
		t.Errorf("Missing = %v, want [emotional_signal]", sv.Missing)
	}
}

func TestAssemble_TechnicalContext(t *testing.T) {
	tests := []struct {
		name      string
		metrics   exchange.Metrics
		wantModel string
		wantTotal int
		wantCost  float64
	}{
		{
			name: "known model with explicit total",
			metrics: exchange.Metrics{
				Tokens: &exchange.TokenUsage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
				Model:  &exchange.ModelConfig{ModelID: "gpt-4o"},
			},
			wantModel: "gpt-4o",
			wantTotal: 150,
			wantCost:  0.00075,
		},
		{
			name: "total falls back to sum",
			metrics: exchange.Metrics{
				Tokens: &exchange.TokenUsage{PromptTokens: 30, CompletionTokens: 20},
				Model:  &exchange.ModelConfig{ModelID: "claude-sonnet-4-5"},
			},
			wantModel: "claude-sonnet-4-5",
			wantTotal: 50,
			wantCost:  30.0/1e6*3.0 + 20.0/1e6*15.0,
		},
		{
			name: "unknown model costs zero",
			metrics: exchange.Metrics{
				Tokens: &exchange.TokenUsage{PromptTokens: 100, CompletionTokens: 100},
				Model:  &exchange.ModelConfig{ModelID: "mystery-9000"},
			},
			wantModel: "mystery-9000",
			wantTotal: 200,
			wantCost:  0,
		},
		{
			name:      "no metrics at all",
			metrics:   exchange.Metrics{},
			wantModel: "unknown",
			wantTotal: 0,
			wantCost:  0,
		},
	}

	in := exchange.Interaction{MessageText: "hi", ResponseText: "hello"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := testAssembler().Assemble(in, allResults(t, in), tt.metrics, exchange.Refs{}, pricing.DefaultTable())
			if err != nil {
				t.Fatalf("Assemble failed: %v", err)
			}
			tc := entry.Facets.Technical
			if tc.ModelID != tt.wantModel {
				t.Errorf("ModelID = %q, want %q", tc.ModelID, tt.wantModel)
			}
			if tc.TotalTokens != tt.wantTotal {
				t.Errorf("TotalTokens = %d, want %d", tc.TotalTokens, tt.wantTotal)
			}
			if math.Abs(tc.CostUSD-tt.wantCost) > 1e-12 {
				t.Errorf("CostUSD = %v, want %v", tc.CostUSD, tt.wantCost)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	base := exchange.Interaction{
		MessageText:    "hello",
		ResponseText:   "hi there",
		SessionContext: map[string]string{"platform": "web", "timezone": "UTC"},
	}

	if Fingerprint(base) != Fingerprint(base) {
		t.Error("fingerprint not deterministic")
	}

	// Map iteration order must not matter.
	reordered := base
	reordered.SessionContext = map[string]string{"timezone": "UTC", "platform": "web"}
	if Fingerprint(base) != Fingerprint(reordered) {
		t.Error("fingerprint sensitive to map construction order")
	}

	changed := base
	changed.ResponseText = "hi there!"
	if Fingerprint(base) == Fingerprint(changed) {
		t.Error("fingerprint did not change with content")
	}

	if got := Fingerprint(base); len(got) != 16 {
		t.Errorf("fingerprint %q has length %d, want 16", got, len(got))
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		in   exchange.Interaction
		want string
	}{
		{"empty", exchange.Interaction{}, "empty exchange"},
		{"whitespace only", exchange.Interaction{MessageText: "  \n"}, "empty exchange"},
		{"normal", exchange.Interaction{MessageText: "hi", ResponseText: "hello"}, "user: hi | agent: hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarize(tt.in); got != tt.want {
				t.Errorf("summarize = %q, want %q", got, tt.want)
			}
		})
	}
}
