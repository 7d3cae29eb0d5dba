package facet

import (
	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// governanceClassifier runs the lexical compliance review. Defaults:
// review=passed, consent=unknown, policies=["acceptable-use"].
type governanceClassifier struct {
	lex *lexicon.Snapshot
}

func NewGovernance(lex *lexicon.Snapshot) Classifier {
	return &governanceClassifier{lex: lex}
}

func (c *governanceClassifier) Name() Name { return NameGovernance }

func (c *governanceClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	th := c.lex.Thresholds

	review := evaluate([]Rule[ReviewOutcome]{
		{When: cuePresent(lexicon.CueProhibited, eitherSide), Value: ReviewBlocked},
		{When: cuePresent(lexicon.CueEthics, eitherSide), Value: ReviewFlagged},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return sig.Cue(lexicon.CueRisk).Count >= th.RiskFlagCount
		}, Value: ReviewFlagged},
	}, in, sig, ReviewPassed)

	policies := []string{"acceptable-use"}
	if sig.Cue(lexicon.CueRisk).Present() {
		policies = append(policies, "data-protection")
	}
	if sig.Cue(lexicon.CueEthics).Present() {
		policies = append(policies, "responsible-ai")
	}

	// Both scans run unconditionally; record them as such.
	checks := []string{"lexical-risk-scan", "prohibited-term-scan"}

	return &GovernanceContext{
		PoliciesApplied:  policies,
		ComplianceChecks: checks,
		EthicalReview:    review,
		ConsentStatus:    consentFrom(in.GovernanceContext),
	}
}

func consentFrom(ctx map[string]string) ConsentStatus {
	switch ctx["consent_status"] {
	case "granted":
		return ConsentGranted
	case "denied", "revoked":
		return ConsentDenied
	default:
		return ConsentUnknown
	}
}
