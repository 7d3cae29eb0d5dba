package facet

import (
	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// cognitiveClassifier estimates the agent's epistemic posture. Defaults:
// confidence=ConfidenceBase (0.8), reasoning mode=exploratory, attention
// focus=["general"] when no topic matched.
type cognitiveClassifier struct {
	lex *lexicon.Snapshot
}

func NewCognitive(lex *lexicon.Snapshot) Classifier {
	return &cognitiveClassifier{lex: lex}
}

func (c *cognitiveClassifier) Name() Name { return NameCognitive }

func (c *cognitiveClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	th := c.lex.Thresholds

	// Certainty outranks hedging when both appear: a response that commits
	// to an answer while noting caveats reads as confident.
	confidence := evaluate([]Rule[float64]{
		{When: cuePresent(lexicon.CueCertainty, responseSide), Value: th.ConfidenceCertain},
		{When: cuePresent(lexicon.CueHedging, responseSide), Value: th.ConfidenceHedged},
	}, in, sig, th.ConfidenceBase)

	mode := evaluate([]Rule[ReasoningMode]{
		{When: cuePresent(lexicon.CueEthics, eitherSide), Value: ModeEthical},
		{When: cuePresent(lexicon.CueCreative, eitherSide), Value: ModeCreative},
		{When: cuePresent(lexicon.CueAnalysis, responseSide), Value: ModeAnalytical},
		{When: func(in exchange.Interaction, sig signal.Set) bool {
			return sig.ResponseCues[lexicon.CueCertainty].Present() && len(sig.Topics) > 0
		}, Value: ModeFactual},
	}, in, sig, ModeExploratory)

	uncertainty := []string{}
	if sig.ResponseCues[lexicon.CueHedging].Present() {
		uncertainty = append(uncertainty, sig.Topics...)
	}

	gaps := []string{}
	if sig.MessageCues[lexicon.CueConfusion].Present() {
		gaps = append(gaps, sig.Topics...)
	}

	focus := sig.Topics
	if len(focus) == 0 {
		focus = []string{"general"}
	}

	return &CognitiveState{
		Confidence:       confidence,
		UncertaintyAreas: uncertainty,
		KnowledgeGaps:    gaps,
		ReasoningMode:    mode,
		CognitiveLoad:    sig.CognitiveLoad,
		AttentionFocus:   focus,
	}
}
