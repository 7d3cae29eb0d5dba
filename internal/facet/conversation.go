package facet

import (
	"strings"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// conversationClassifier infers intent, tone, and topic placement. Defaults:
// intent=statement, tone=neutral.
type conversationClassifier struct {
	lex *lexicon.Snapshot
}

func NewConversation(lex *lexicon.Snapshot) Classifier {
	return &conversationClassifier{lex: lex}
}

func (c *conversationClassifier) Name() Name { return NameConversation }

func (c *conversationClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	intent := evaluate([]Rule[Intent]{
		{When: func(in exchange.Interaction, sig signal.Set) bool {
			return strings.Contains(in.MessageText, "?") || sig.MessageCues[lexicon.CueQuestion].Present()
		}, Value: IntentQuestion},
		{When: func(in exchange.Interaction, sig signal.Set) bool {
			msg := strings.ToLower(strings.TrimSpace(in.MessageText))
			return strings.HasPrefix(msg, "please ") || strings.HasPrefix(msg, "write ") ||
				strings.HasPrefix(msg, "make ") || strings.HasPrefix(msg, "fix ")
		}, Value: IntentRequest},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return sig.MessageCues[lexicon.CueGratitude].Present() || sig.MessageCues[lexicon.CueFrustration].Present()
		}, Value: IntentFeedback},
	}, in, sig, IntentStatement)

	tone := evaluate([]Rule[Tone]{
		{When: cuePresent(lexicon.CueFrustration, messageSide), Value: ToneFrustrated},
		{When: cuePresent(lexicon.CueUrgency, messageSide), Value: ToneUrgent},
		{When: cuePresent(lexicon.CueGratitude, messageSide), Value: TonePositive},
		{When: cuePresent(lexicon.CueHedging, messageSide), Value: ToneUncertain},
	}, in, sig, ToneNeutral)

	return &ConversationContext{
		TurnSequence: len(in.History) + 1,
		Topics:       emptyIfNil(sig.Topics),
		UserIntent:   intent,
		Tone:         tone,
	}
}

type cueSide int

const (
	messageSide cueSide = iota
	responseSide
	eitherSide
)

// cuePresent builds a rule condition for a cue category on one side of the
// exchange.
func cuePresent(category string, side cueSide) func(exchange.Interaction, signal.Set) bool {
	return func(_ exchange.Interaction, sig signal.Set) bool {
		switch side {
		case messageSide:
			return sig.MessageCues[category].Present()
		case responseSide:
			return sig.ResponseCues[category].Present()
		default:
			return sig.Cue(category).Present()
		}
	}
}
