package facet

import (
	"strings"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// emotionalClassifier reads affect cues from both sides. Defaults: both
// affects neutral, empathy=EmpathyBase (0.5), style=conversational.
type emotionalClassifier struct {
	lex *lexicon.Snapshot
}

func NewEmotional(lex *lexicon.Snapshot) Classifier {
	return &emotionalClassifier{lex: lex}
}

func (c *emotionalClassifier) Name() Name { return NameEmotional }

func (c *emotionalClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	th := c.lex.Thresholds

	userAffect := evaluate([]Rule[Affect]{
		{When: cuePresent(lexicon.CueFrustration, messageSide), Value: AffectFrustrated},
		{When: cuePresent(lexicon.CueConfusion, messageSide), Value: AffectConfused},
		{When: cuePresent(lexicon.CueUrgency, messageSide), Value: AffectAnxious},
		{When: cuePresent(lexicon.CueGratitude, messageSide), Value: AffectPositive},
	}, in, sig, AffectNeutral)

	agentAffect := evaluate([]Rule[Affect]{
		{When: cuePresent(lexicon.CueApology, responseSide), Value: AffectApologetic},
		{When: cuePresent(lexicon.CueEmpathy, responseSide), Value: AffectEmpathetic},
		{When: cuePresent(lexicon.CueCertainty, responseSide), Value: AffectConfident},
	}, in, sig, AffectNeutral)

	empathy := evaluate([]Rule[float64]{
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return sig.ResponseCues[lexicon.CueEmpathy].Count >= 2
		}, Value: th.EmpathyHigh},
		{When: cuePresent(lexicon.CueEmpathy, responseSide), Value: th.EmpathyWarm},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			// A frustrated user met with no empathy cue at all.
			return sig.MessageCues[lexicon.CueFrustration].Present()
		}, Value: th.EmpathyCold},
	}, in, sig, th.EmpathyBase)

	style := evaluate([]Rule[CommunicationStyle]{
		{When: func(in exchange.Interaction, _ signal.Set) bool {
			return strings.Contains(in.ResponseText, "`") || strings.Contains(in.ResponseText, "```")
		}, Value: StyleTechnical},
		{When: cuePresent(lexicon.CueInstruction, responseSide), Value: StyleInstructional},
		{When: cuePresent(lexicon.CueEmpathy, responseSide), Value: StyleEmpathetic},
	}, in, sig, StyleConversational)

	return &EmotionalSignal{
		UserAffect:         userAffect,
		AgentAffect:        agentAffect,
		EmpathyLevel:       empathy,
		CommunicationStyle: style,
	}
}
