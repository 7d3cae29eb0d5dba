package facet

import (
	"fmt"
	"sort"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// forwardClassifier suggests where the conversation could go next. An empty
// exchange yields empty lists — never a canned suggestion for nothing.
type forwardClassifier struct {
	lex *lexicon.Snapshot
}

func NewForward(lex *lexicon.Snapshot) Classifier {
	return &forwardClassifier{lex: lex}
}

func (c *forwardClassifier) Name() Name { return NameForward }

func (c *forwardClassifier) Classify(in exchange.Interaction, sig signal.Set) Result {
	limit := c.lex.Thresholds.MaxSuggestions

	if sig.MessageLen == 0 && sig.ResponseLen == 0 {
		return &ForwardLooking{
			FollowUps:        []string{},
			RelatedTopics:    []string{},
			SkillSuggestions: []string{},
		}
	}

	followUps := []string{}
	for _, topic := range sig.Topics {
		followUps = append(followUps, fmt.Sprintf("Want to go deeper on %s?", topic))
	}

	relatedSet := make(map[string]bool)
	for _, topic := range sig.Topics {
		for _, r := range c.lex.Related[topic] {
			relatedSet[r] = true
		}
	}
	related := make([]string, 0, len(relatedSet))
	for r := range relatedSet {
		related = append(related, r)
	}
	sort.Strings(related)

	skillSet := make(map[string]bool)
	for _, topic := range sig.Topics {
		if skill, ok := c.lex.Skills[topic]; ok {
			skillSet[skill] = true
		}
	}
	skills := make([]string, 0, len(skillSet))
	for s := range skillSet {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	return &ForwardLooking{
		FollowUps:        capList(followUps, limit),
		RelatedTopics:    capList(related, limit),
		SkillSuggestions: capList(skills, limit),
	}
}
