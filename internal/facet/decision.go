package facet

import (
	"strings"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// decisionClassifier reconstructs the decision surface visible in the
// response. Defaults: risk=low, decision confidence=ConfidenceBase (0.8),
// all lists empty.
type decisionClassifier struct {
	lex *lexicon.Snapshot
}

func NewDecision(lex *lexicon.Snapshot) Classifier {
	return &decisionClassifier{lex: lex}
}

func (c *decisionClassifier) Name() Name { return NameDecision }

func (c *decisionClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	th := c.lex.Thresholds

	risk := evaluate([]Rule[RiskLevel]{
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return sig.Cue(lexicon.CueRisk).Count >= th.RiskFlagCount ||
				(sig.Cue(lexicon.CueRisk).Present() && sig.MessageCues[lexicon.CueUrgency].Present())
		}, Value: RiskHigh},
		{When: cuePresent(lexicon.CueRisk, eitherSide), Value: RiskMedium},
	}, in, sig, RiskLow)

	confidence := evaluate([]Rule[float64]{
		{When: cuePresent(lexicon.CueCertainty, responseSide), Value: th.ConfidenceCertain},
		{When: cuePresent(lexicon.CueHedging, responseSide), Value: th.ConfidenceHedged},
	}, in, sig, th.ConfidenceBase)

	criteria := []string{}
	if sig.ResponseCues[lexicon.CueAnalysis].Present() {
		criteria = append(criteria, "analytical evaluation")
	}
	if sig.Cue(lexicon.CueRisk).Present() {
		criteria = append(criteria, "risk mitigation")
	}
	if sig.MessageCues[lexicon.CueUrgency].Present() {
		criteria = append(criteria, "time sensitivity")
	}

	fallbacks := []string{}
	if sig.ResponseCues[lexicon.CueHedging].Present() {
		fallbacks = append(fallbacks, "ask a clarifying question")
	}
	if risk != RiskLow {
		fallbacks = append(fallbacks, "escalate for review")
	}

	return &DecisionProcess{
		AlternativesConsidered: alternatives(in.ResponseText, c.lex.Cues[lexicon.CueAlternative], th.MaxSuggestions),
		DecisionCriteria:       criteria,
		RiskLevel:              risk,
		EthicalFlags:           emptyIfNil(sig.Cue(lexicon.CueEthics).Matches),
		DecisionConfidence:     confidence,
		FallbackStrategies:     fallbacks,
	}
}

// alternatives returns the response sentences that carry an alternative
// marker, trimmed and capped. The sentences themselves are the best
// deterministic stand-in for "options considered".
func alternatives(response string, markers []string, limit int) []string {
	out := []string{}
	for _, sent := range splitSentences(response) {
		lowerSent := strings.ToLower(sent)
		for _, m := range markers {
			if strings.Contains(lowerSent, m) {
				out = append(out, clip(sent, 120))
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

func splitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "…"
}
