package facet

import (
	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// performanceClassifier derives the five quality scores from response shape
// and cue signals. Latency is not derived here — the assembler stamps the
// caller-observed figure. Every score defaults to ScoreBase (0.8) and stays
// within [0,1] by construction (all rule values are threshold constants).
type performanceClassifier struct {
	lex *lexicon.Snapshot
}

func NewPerformance(lex *lexicon.Snapshot) Classifier {
	return &performanceClassifier{lex: lex}
}

func (c *performanceClassifier) Name() Name { return NamePerformance }

func (c *performanceClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	th := c.lex.Thresholds

	emptyResponse := func(_ exchange.Interaction, sig signal.Set) bool {
		return sig.ResponseLen == 0
	}

	accuracy := evaluate([]Rule[float64]{
		{When: emptyResponse, Value: 0},
		{When: cuePresent(lexicon.CueCertainty, responseSide), Value: th.ScoreStrong},
		{When: cuePresent(lexicon.CueHedging, responseSide), Value: th.ScoreWeak},
	}, in, sig, th.ScoreBase)

	helpfulness := evaluate([]Rule[float64]{
		{When: emptyResponse, Value: 0},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return len(sig.SharedTopics()) > 0
		}, Value: th.ScoreStrong},
		{When: cuePresent(lexicon.CueHedging, responseSide), Value: th.ScoreFair},
	}, in, sig, th.ScoreBase)

	clarity := evaluate([]Rule[float64]{
		{When: emptyResponse, Value: 0},
		{When: func(in exchange.Interaction, _ signal.Set) bool {
			return avgSentenceLen(in.ResponseText) > th.LongSentenceLen
		}, Value: th.ScoreFair},
		{When: cuePresent(lexicon.CueInstruction, responseSide), Value: th.ScoreStrong},
	}, in, sig, th.ScoreBase)

	completeness := evaluate([]Rule[float64]{
		{When: emptyResponse, Value: 0},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return sig.ResponseLen >= th.LongResponseLen
		}, Value: th.ScoreStrong},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return sig.ResponseLen < th.ShortResponseLen
		}, Value: th.ScoreWeak},
	}, in, sig, th.ScoreBase)

	relevance := evaluate([]Rule[float64]{
		{When: emptyResponse, Value: 0},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			return len(sig.SharedTopics()) > 0
		}, Value: th.ScoreStrong},
		{When: func(_ exchange.Interaction, sig signal.Set) bool {
			// The user raised topics the response never touched.
			return len(sig.MessageTopics) > 0 && len(sig.ResponseTopics) == 0
		}, Value: th.ScoreWeak},
	}, in, sig, th.ScoreBase)

	return &PerformanceMetrics{
		Accuracy:     accuracy,
		Helpfulness:  helpfulness,
		Clarity:      clarity,
		Completeness: completeness,
		Relevance:    relevance,
	}
}

func avgSentenceLen(text string) int {
	sents := splitSentences(text)
	if len(sents) == 0 {
		return 0
	}
	total := 0
	for _, s := range sents {
		total += len(s)
	}
	return total / len(sents)
}
