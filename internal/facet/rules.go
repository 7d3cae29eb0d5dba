package facet

import (
	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// Rule binds a condition to the value a field takes when that condition is
// the first to match. Rule order is the tie-break: evaluation walks the
// table top to bottom and stops at the first hit.
type Rule[T any] struct {
	When  func(in exchange.Interaction, sig signal.Set) bool
	Value T
}

// evaluate returns the value of the first matching rule, or fallback when no
// rule matches. The fallback is the facet field's documented default.
func evaluate[T any](rules []Rule[T], in exchange.Interaction, sig signal.Set, fallback T) T {
	for _, r := range rules {
		if r.When(in, sig) {
			return r.Value
		}
	}
	return fallback
}

// emptyIfNil guards list fields: audit consumers read every list as an
// array, never null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// capList truncates a list to at most n entries.
func capList(s []string, n int) []string {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
