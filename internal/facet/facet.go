// Package facet derives the ten structured views that compose an audit
// entry. Nine classifiers run over the same extracted signals, one per facet;
// the tenth facet (TechnicalContext) is assembled from caller metrics.
//
// Every classifier is a total function: it never fails for a well-formed
// interaction and never leaves a field unset — each field is either derived
// from a signal rule or filled with a documented default.
package facet

import (
	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// Name identifies one facet slot of an audit entry.
type Name string

const (
	NameConversation Name = "conversation_context"
	NameCognitive    Name = "cognitive_state"
	NameDecision     Name = "decision_process"
	NameLearning     Name = "learning_context"
	NameEmotional    Name = "emotional_signal"
	NamePerformance  Name = "performance_metrics"
	NameTechnical    Name = "technical_context"
	NameGovernance   Name = "governance_context"
	NameEnvironment  Name = "environmental_context"
	NameForward      Name = "forward_looking"
)

// Result is one populated facet. The concrete type is the facet schema.
type Result interface {
	Facet() Name
}

// Classifier derives one facet from the exchange and its signals. Classify
// must not mutate its inputs and must not depend on any other classifier's
// output — that independence is what allows the orchestrator to fan the
// classifiers out concurrently and to add new facets without touching
// existing ones.
type Classifier interface {
	Name() Name
	Classify(in exchange.Interaction, sig signal.Set) Result
}

// Constructor builds a classifier against one lexicon snapshot. Classifiers
// are cheap throwaway values; the orchestrator constructs a fresh set per
// run so a lexicon reload never changes an in-flight run.
type Constructor func(lex *lexicon.Snapshot) Classifier

// Defaults returns the constructors for the nine built-in classifiers.
// Order carries no meaning — results are identical under any permutation.
func Defaults() []Constructor {
	return []Constructor{
		NewConversation,
		NewCognitive,
		NewDecision,
		NewLearning,
		NewEmotional,
		NewPerformance,
		NewGovernance,
		NewEnvironment,
		NewForward,
	}
}
