package facet

import (
	"reflect"
	"testing"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

func boolRule(match bool, value string) Rule[string] {
	return Rule[string]{
		When:  func(exchange.Interaction, signal.Set) bool { return match },
		Value: value,
	}
}

func TestEvaluate_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule[string]
		want  string
	}{
		{
			name:  "first of two matches",
			rules: []Rule[string]{boolRule(true, "a"), boolRule(true, "b")},
			want:  "a",
		},
		{
			name:  "skips non-matching",
			rules: []Rule[string]{boolRule(false, "a"), boolRule(true, "b")},
			want:  "b",
		},
		{
			name:  "fallback when nothing matches",
			rules: []Rule[string]{boolRule(false, "a"), boolRule(false, "b")},
			want:  "default",
		},
		{
			name:  "fallback on empty table",
			rules: nil,
			want:  "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluate(tt.rules, exchange.Interaction{}, signal.Set{}, "default")
			if got != tt.want {
				t.Errorf("evaluate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptyIfNil(t *testing.T) {
	if got := emptyIfNil(nil); got == nil || len(got) != 0 {
		t.Errorf("emptyIfNil(nil) = %v, want empty slice", got)
	}
	in := []string{"x"}
	if got := emptyIfNil(in); !reflect.DeepEqual(got, in) {
		t.Errorf("emptyIfNil(%v) = %v", in, got)
	}
}

func TestCapList(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	if got := capList(in, 2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("capList = %v, want [a b]", got)
	}
	if got := capList(in, 10); !reflect.DeepEqual(got, in) {
		t.Errorf("capList under limit = %v, want original", got)
	}
}

func TestDefaults_CoversAllClassifierSlots(t *testing.T) {
	ctors := Defaults()
	if len(ctors) != 9 {
		t.Fatalf("Defaults() returned %d constructors, want 9", len(ctors))
	}

	lex := lexicon.Defaults()
	seen := make(map[Name]bool)
	for _, ctor := range ctors {
		c := ctor(lex)
		if seen[c.Name()] {
			t.Errorf("duplicate classifier for %s", c.Name())
		}
		seen[c.Name()] = true
	}
	for _, name := range []Name{
		NameConversation, NameCognitive, NameDecision, NameLearning,
		NameEmotional, NamePerformance, NameGovernance, NameEnvironment,
		NameForward,
	} {
		if !seen[name] {
			t.Errorf("no constructor for %s", name)
		}
	}
}
