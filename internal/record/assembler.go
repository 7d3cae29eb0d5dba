package record

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/facet"
	"github.com/MikeSquared-Agency/scribe/internal/pricing"
)

const summaryClip = 120

// Assembler merges classifier facets with caller-supplied metrics into one
// Entry. The clock and id generator are injected so assembly is replayable
// in tests and audit verification.
type Assembler struct {
	clock func() time.Time
	newID func() string
}

func NewAssembler(clock func() time.Time, newID func() string) *Assembler {
	return &Assembler{clock: clock, newID: newID}
}

// Assemble builds the entry. It fails with *SchemaViolation when any of the
// nine classifier slots is absent; the tenth slot (TechnicalContext) is
// built here from the metrics and the price table.
func (a *Assembler) Assemble(in exchange.Interaction, results []facet.Result, m exchange.Metrics, refs exchange.Refs, prices pricing.Table) (*Entry, error) {
	var f Facets
	for _, r := range results {
		switch v := r.(type) {
		case *facet.ConversationContext:
			f.Conversation = v
		case *facet.CognitiveState:
			f.Cognitive = v
		case *facet.DecisionProcess:
			f.Decision = v
		case *facet.LearningContext:
			f.Learning = v
		case *facet.EmotionalSignal:
			f.Emotional = v
		case *facet.PerformanceMetrics:
			f.Performance = v
		case *facet.GovernanceContext:
			f.Governance = v
		case *facet.EnvironmentalContext:
			f.Environment = v
		case *facet.ForwardLooking:
			f.Forward = v
		}
	}
	f.Technical = buildTechnical(m, prices)

	if missing := f.missing(); len(missing) > 0 {
		return nil, &SchemaViolation{Missing: missing}
	}

	// Stamp the caller-owned fields the classifiers could not know.
	f.Conversation.MessageID = a.newID()
	f.Conversation.ConversationID = refs.ConversationID
	f.Performance.ResponseLatencyMs = m.ResponseLatencyMs

	return &Entry{
		ID:         a.newID(),
		AgentID:    refs.AgentID,
		UserID:     refs.UserID,
		Kind:       KindInteraction,
		CreatedAt:  a.clock().UTC(),
		Summary:    summarize(in),
		Facets:     f,
		SourceHash: Fingerprint(in),
	}, nil
}

func (f *Facets) missing() []facet.Name {
	var missing []facet.Name
	for _, slot := range []struct {
		name facet.Name
		set  bool
	}{
		{facet.NameConversation, f.Conversation != nil},
		{facet.NameCognitive, f.Cognitive != nil},
		{facet.NameDecision, f.Decision != nil},
		{facet.NameLearning, f.Learning != nil},
		{facet.NameEmotional, f.Emotional != nil},
		{facet.NamePerformance, f.Performance != nil},
		{facet.NameTechnical, f.Technical != nil},
		{facet.NameGovernance, f.Governance != nil},
		{facet.NameEnvironment, f.Environment != nil},
		{facet.NameForward, f.Forward != nil},
	} {
		if !slot.set {
			missing = append(missing, slot.name)
		}
	}
	return missing
}

func buildTechnical(m exchange.Metrics, prices pricing.Table) *facet.TechnicalContext {
	tc := &facet.TechnicalContext{ModelID: "unknown"}
	if m.Model != nil {
		if m.Model.ModelID != "" {
			tc.ModelID = m.Model.ModelID
		}
		tc.ModelVersion = m.Model.Version
		tc.Temperature = m.Model.Temperature
		tc.TopP = m.Model.TopP
		tc.MaxTokens = m.Model.MaxTokens
	}
	if m.Tokens != nil {
		tc.PromptTokens = m.Tokens.PromptTokens
		tc.CompletionTokens = m.Tokens.CompletionTokens
		tc.TotalTokens = m.Tokens.TotalTokens
		if tc.TotalTokens == 0 {
			tc.TotalTokens = tc.PromptTokens + tc.CompletionTokens
		}
		tc.CostUSD = prices.Cost(tc.ModelID, tc.PromptTokens, tc.CompletionTokens)
	}
	return tc
}

// Fingerprint is a fixed-size content hash of the raw interaction, used for
// tamper evidence and replay verification. xxhash is a fingerprint, not an
// adversarial-grade digest — that matches the record's threat model.
func Fingerprint(in exchange.Interaction) string {
	d := xxhash.New()
	sep := []byte{0}

	io.WriteString(d, in.MessageText)
	d.Write(sep)
	io.WriteString(d, in.ResponseText)
	d.Write(sep)
	for _, t := range in.History {
		io.WriteString(d, t.Role)
		d.Write(sep)
		io.WriteString(d, t.Text)
		d.Write(sep)
	}
	writeSortedMap(d, in.SessionContext)
	writeSortedMap(d, in.GovernanceContext)

	return fmt.Sprintf("%016x", d.Sum64())
}

func writeSortedMap(d *xxhash.Digest, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		io.WriteString(d, k)
		d.Write([]byte{1})
		io.WriteString(d, m[k])
		d.Write([]byte{1})
	}
	d.Write([]byte{0})
}

func summarize(in exchange.Interaction) string {
	msg := strings.TrimSpace(in.MessageText)
	resp := strings.TrimSpace(in.ResponseText)
	if msg == "" && resp == "" {
		return "empty exchange"
	}
	return fmt.Sprintf("user: %s | agent: %s", truncate(msg, summaryClip), truncate(resp, summaryClip))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "…"
}
