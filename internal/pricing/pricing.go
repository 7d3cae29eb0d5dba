// Package pricing computes the monetary cost of an exchange from the token
// counts the caller reports. Prices are USD per 1M tokens and live in the
// lexicon file so finance can adjust them without a deploy.
package pricing

// Price holds per-model pricing in USD per 1M tokens.
type Price struct {
	InputPerMillion  float64 `koanf:"input_per_million" json:"input_per_million"`
	OutputPerMillion float64 `koanf:"output_per_million" json:"output_per_million"`
}

// Table maps model identifiers to their pricing.
type Table map[string]Price

// DefaultTable returns the built-in price table.
func DefaultTable() Table {
	return Table{
		"claude-sonnet-4-5": {InputPerMillion: 3.00, OutputPerMillion: 15.00},
		"claude-haiku-4-5":  {InputPerMillion: 0.80, OutputPerMillion: 4.00},
		"gpt-4o":            {InputPerMillion: 2.50, OutputPerMillion: 10.00},
		"gpt-4o-mini":       {InputPerMillion: 0.15, OutputPerMillion: 0.60},
		"gemini-2.0-flash":  {InputPerMillion: 0.10, OutputPerMillion: 0.40},
	}
}

// Cost returns the cost in USD for the given model and token counts.
// Returns 0 if the model is not in the table.
func (t Table) Cost(model string, promptTokens, completionTokens int) float64 {
	p, ok := t[model]
	if !ok {
		return 0
	}
	inputCost := float64(promptTokens) / 1_000_000.0 * p.InputPerMillion
	outputCost := float64(completionTokens) / 1_000_000.0 * p.OutputPerMillion
	return inputCost + outputCost
}
