package facet

import (
	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// learningClassifier captures what the exchange taught. All fields default
// to the empty list.
type learningClassifier struct {
	lex *lexicon.Snapshot
}

func NewLearning(lex *lexicon.Snapshot) Classifier {
	return &learningClassifier{lex: lex}
}

func (c *learningClassifier) Name() Name { return NameLearning }

func (c *learningClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	newInfo := []string{}
	if sig.MessageCues[lexicon.CueLearning].Present() {
		// The user signalled learning; the topics name what was learned.
		newInfo = append(newInfo, sig.Topics...)
	}

	// A topic echoed on both sides of the exchange counts as reinforced.
	reinforced := sig.SharedTopics()

	skills := []string{}
	if sig.ResponseCues[lexicon.CueAnalysis].Present() {
		skills = append(skills, "analysis")
	}
	if sig.ResponseCues[lexicon.CueCreative].Present() {
		skills = append(skills, "ideation")
	}
	if sig.ResponseCues[lexicon.CueInstruction].Present() {
		skills = append(skills, "instruction")
	}
	for _, topic := range sig.ResponseTopics {
		if skill, ok := c.lex.Skills[topic]; ok {
			skills = append(skills, skill)
		}
	}

	challenges := []string{}
	challenges = append(challenges, sig.MessageCues[lexicon.CueFrustration].Matches...)
	challenges = append(challenges, sig.MessageCues[lexicon.CueConfusion].Matches...)

	improvement := []string{}
	if sig.ResponseCues[lexicon.CueHedging].Present() {
		improvement = append(improvement, sig.Topics...)
	}

	return &LearningContext{
		NewInformation:     newInfo,
		ConceptsReinforced: emptyIfNil(reinforced),
		SkillsApplied:      skills,
		Challenges:         challenges,
		ImprovementAreas:   improvement,
	}
}
