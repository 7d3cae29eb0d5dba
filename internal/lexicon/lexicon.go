// Package lexicon holds the versioned keyword/pattern tables the facet
// classifiers consult: topic vocabularies, lexical cue phrase lists, related
// topic and skill maps, the classifier thresholds, and the price table.
//
// Tables are plain data, never logic. A Store hands out immutable *Snapshot
// values; Reload swaps the pointer atomically so an in-flight pipeline run
// keeps the snapshot it started with.
package lexicon

import (
	"fmt"
	"sync/atomic"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/MikeSquared-Agency/scribe/internal/pricing"
)

// Lexical cue categories. Each maps to a phrase list in Snapshot.Cues.
const (
	CueHedging     = "hedging"
	CueCertainty   = "certainty"
	CueQuestion    = "question"
	CueFrustration = "frustration"
	CueGratitude   = "gratitude"
	CueConfusion   = "confusion"
	CueUrgency     = "urgency"
	CueRisk        = "risk"
	CueEthics      = "ethics"
	CueLearning    = "learning"
	CueCreative    = "creative"
	CueAnalysis    = "analysis"
	CueEmpathy     = "empathy"
	CueApology     = "apology"
	CueAlternative = "alternative"
	CueInstruction = "instruction"
	CueProhibited  = "prohibited"
)

// Thresholds are the tuning constants of the classifiers. The values carry
// over from the original dashboard implementation and are overridable per
// deployment; none has a documented rationale beyond field experience.
type Thresholds struct {
	// LengthNorm normalizes combined message+response length into the
	// cognitive load ratio. 2000 characters maps to a load of 1.0.
	LengthNorm int `koanf:"length_norm"`

	// Confidence tiers for CognitiveState and DecisionProcess.
	ConfidenceBase    float64 `koanf:"confidence_base"`
	ConfidenceHedged  float64 `koanf:"confidence_hedged"`
	ConfidenceCertain float64 `koanf:"confidence_certain"`

	// RiskFlagCount is the risk-cue count at which governance review
	// escalates from passed to flagged.
	RiskFlagCount int `koanf:"risk_flag_count"`

	// Empathy tiers for EmotionalSignal.
	EmpathyBase float64 `koanf:"empathy_base"`
	EmpathyWarm float64 `koanf:"empathy_warm"`
	EmpathyHigh float64 `koanf:"empathy_high"`
	EmpathyCold float64 `koanf:"empathy_cold"`

	// Quality score tiers for PerformanceMetrics.
	ScoreWeak   float64 `koanf:"score_weak"`
	ScoreFair   float64 `koanf:"score_fair"`
	ScoreBase   float64 `koanf:"score_base"`
	ScoreStrong float64 `koanf:"score_strong"`

	// Response shape cutoffs, in characters.
	LongResponseLen  int `koanf:"long_response_len"`
	ShortResponseLen int `koanf:"short_response_len"`
	LongSentenceLen  int `koanf:"long_sentence_len"`

	// MaxSuggestions caps every ForwardLooking list.
	MaxSuggestions int `koanf:"max_suggestions"`
}

// Snapshot is one immutable version of the lexicon. Callers must not mutate
// its maps; the Store shares a snapshot across concurrent pipeline runs.
type Snapshot struct {
	Version    string              `koanf:"version"`
	Topics     map[string][]string `koanf:"topics"`
	Cues       map[string][]string `koanf:"cues"`
	Related    map[string][]string `koanf:"related"`
	Skills     map[string]string   `koanf:"skills"`
	Thresholds Thresholds          `koanf:"thresholds"`
	Pricing    pricing.Table       `koanf:"pricing"`
}

// Store serves lexicon snapshots. Reload replaces the current snapshot
// without affecting runs that already took one.
type Store struct {
	path string
	cur  atomic.Pointer[Snapshot]
}

// Open loads the lexicon at path over the built-in defaults. An empty path
// serves the defaults alone. A malformed file is a startup error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	snap, err := load(path)
	if err != nil {
		return nil, err
	}
	s.cur.Store(snap)
	return s, nil
}

// Snapshot returns the current lexicon version.
func (s *Store) Snapshot() *Snapshot {
	return s.cur.Load()
}

// Reload re-reads the lexicon file and swaps it in. On error the previous
// snapshot stays active.
func (s *Store) Reload() error {
	snap, err := load(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(snap)
	return nil
}

func load(path string) (*Snapshot, error) {
	snap := Defaults()
	if path == "" {
		return snap, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load lexicon %s: %w", path, err)
	}
	// Unmarshal over the defaults: sections present in the file replace
	// the corresponding default section wholesale.
	if err := k.Unmarshal("", snap); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	if err := snap.validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon %s: %w", path, err)
	}
	return snap, nil
}

func (s *Snapshot) validate() error {
	if s.Version == "" {
		return fmt.Errorf("version is required")
	}
	if s.Thresholds.LengthNorm <= 0 {
		return fmt.Errorf("thresholds.length_norm must be positive, got %d", s.Thresholds.LengthNorm)
	}
	for name, v := range map[string]float64{
		"confidence_base":    s.Thresholds.ConfidenceBase,
		"confidence_hedged":  s.Thresholds.ConfidenceHedged,
		"confidence_certain": s.Thresholds.ConfidenceCertain,
		"empathy_base":       s.Thresholds.EmpathyBase,
		"empathy_warm":       s.Thresholds.EmpathyWarm,
		"empathy_high":       s.Thresholds.EmpathyHigh,
		"empathy_cold":       s.Thresholds.EmpathyCold,
		"score_weak":         s.Thresholds.ScoreWeak,
		"score_fair":         s.Thresholds.ScoreFair,
		"score_base":         s.Thresholds.ScoreBase,
		"score_strong":       s.Thresholds.ScoreStrong,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("thresholds.%s must be within [0,1], got %g", name, v)
		}
	}
	if s.Thresholds.MaxSuggestions < 0 {
		return fmt.Errorf("thresholds.max_suggestions must not be negative")
	}
	return nil
}
