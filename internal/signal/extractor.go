// Package signal derives the low-level features every facet classifier
// shares: topic keywords, lexical cue matches, and length figures. Extraction
// happens once per exchange; classifiers only read the resulting Set.
package signal

import (
	"sort"
	"strings"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
)

// Cue records how a lexical cue category matched one side of the exchange.
// Matches keeps the matched phrases in lexicon order.
type Cue struct {
	Count   int
	Matches []string
}

// Present reports whether the category matched at all.
func (c Cue) Present() bool { return c.Count > 0 }

// Set is the immutable signal bundle for one exchange. It is owned by the
// pipeline run that extracted it and is never persisted.
type Set struct {
	// Topics is the sorted union of message and response topics.
	Topics         []string
	MessageTopics  []string
	ResponseTopics []string

	MessageLen  int
	ResponseLen int

	// CognitiveLoad is min(1, (messageLen+responseLen)/lengthNorm).
	CognitiveLoad float64

	MessageCues  map[string]Cue
	ResponseCues map[string]Cue
}

// Cue merges the message and response matches for a category.
func (s Set) Cue(category string) Cue {
	m, r := s.MessageCues[category], s.ResponseCues[category]
	merged := Cue{Count: m.Count + r.Count}
	merged.Matches = append(append([]string{}, m.Matches...), r.Matches...)
	return merged
}

// SharedTopics returns the sorted topics present on both sides.
func (s Set) SharedTopics() []string {
	shared := make([]string, 0, len(s.MessageTopics))
	inResponse := make(map[string]bool, len(s.ResponseTopics))
	for _, t := range s.ResponseTopics {
		inResponse[t] = true
	}
	for _, t := range s.MessageTopics {
		if inResponse[t] {
			shared = append(shared, t)
		}
	}
	return shared
}

// Extractor derives a Set from one exchange against a lexicon snapshot.
// Extraction is pure and total: degenerate input yields a zero-valued Set,
// never an error, and identical input always yields an identical Set.
type Extractor struct {
	lex *lexicon.Snapshot
}

func NewExtractor(lex *lexicon.Snapshot) *Extractor {
	return &Extractor{lex: lex}
}

// Extract tokenizes both sides once and matches them against the topic
// vocabularies and cue phrase lists.
func (e *Extractor) Extract(in exchange.Interaction) Set {
	msg := strings.ToLower(in.MessageText)
	resp := strings.ToLower(in.ResponseText)

	s := Set{
		MessageTopics:  e.topics(msg),
		ResponseTopics: e.topics(resp),
		MessageLen:     len(in.MessageText),
		ResponseLen:    len(in.ResponseText),
		MessageCues:    e.cues(msg),
		ResponseCues:   e.cues(resp),
	}
	s.Topics = union(s.MessageTopics, s.ResponseTopics)

	norm := e.lex.Thresholds.LengthNorm
	if norm > 0 {
		load := float64(s.MessageLen+s.ResponseLen) / float64(norm)
		if load > 1 {
			load = 1
		}
		s.CognitiveLoad = load
	}
	return s
}

// topics returns the sorted topics whose vocabulary matches the text.
// Single-word keywords match whole tokens; multi-word keywords match as
// substrings.
func (e *Extractor) topics(text string) []string {
	words := tokenize(text)
	matched := make([]string, 0, 4)
	for topic, vocab := range e.lex.Topics {
		for _, kw := range vocab {
			if keywordMatches(kw, text, words) {
				matched = append(matched, topic)
				break
			}
		}
	}
	sort.Strings(matched)
	return matched
}

func (e *Extractor) cues(text string) map[string]Cue {
	out := make(map[string]Cue, len(e.lex.Cues))
	for category, phrases := range e.lex.Cues {
		var c Cue
		for _, p := range phrases {
			if n := strings.Count(text, p); n > 0 {
				c.Count += n
				c.Matches = append(c.Matches, p)
			}
		}
		if c.Matches == nil {
			c.Matches = []string{}
		}
		out[category] = c
	}
	return out
}

func keywordMatches(kw, text string, words map[string]bool) bool {
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(text, kw)
	}
	return words[kw]
}

// tokenize splits lowercased text into a word set on non-alphanumeric runes.
func tokenize(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	}) {
		words[w] = true
	}
	return words
}

func isWordRune(r rune) bool {
	return r == '-' || r == '\'' ||
		(r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, t := range a {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range b {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
