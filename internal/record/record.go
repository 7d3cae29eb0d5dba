// Package record defines the immutable audit entry and the assembler that
// is the only constructor of one. An entry either carries all ten facets or
// assembly fails — nothing partial ever leaves this package.
package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/scribe/internal/facet"
)

// KindInteraction is the record kind for a single enriched exchange.
const KindInteraction = "interaction_audit"

// Facets holds all ten facet slots of an entry.
type Facets struct {
	Conversation *facet.ConversationContext  `json:"conversation_context"`
	Cognitive    *facet.CognitiveState       `json:"cognitive_state"`
	Decision     *facet.DecisionProcess      `json:"decision_process"`
	Learning     *facet.LearningContext      `json:"learning_context"`
	Emotional    *facet.EmotionalSignal      `json:"emotional_signal"`
	Performance  *facet.PerformanceMetrics   `json:"performance_metrics"`
	Technical    *facet.TechnicalContext     `json:"technical_context"`
	Governance   *facet.GovernanceContext    `json:"governance_context"`
	Environment  *facet.EnvironmentalContext `json:"environmental_context"`
	Forward      *facet.ForwardLooking       `json:"forward_looking"`
}

// Entry is one immutable audit record. Created once per exchange by the
// assembler, handed to the sink, never updated or deleted.
type Entry struct {
	ID         string    `json:"id"`
	AgentID    string    `json:"agent_id"`
	UserID     string    `json:"user_id"`
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"created_at"`
	Summary    string    `json:"interaction_summary"`
	Facets     Facets    `json:"facets"`
	SourceHash string    `json:"source_interaction_hash"`
}

// SchemaViolation reports facet slots missing at assembly. Classifiers are
// total, so this only ever signals an orchestrator defect.
type SchemaViolation struct {
	Missing []facet.Name
}

func (e *SchemaViolation) Error() string {
	names := make([]string, len(e.Missing))
	for i, n := range e.Missing {
		names[i] = string(n)
	}
	return fmt.Sprintf("audit entry schema violation: missing facets: %s", strings.Join(names, ", "))
}
