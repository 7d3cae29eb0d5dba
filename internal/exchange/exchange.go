// Package exchange defines the input types of the enrichment pipeline: one
// user/agent exchange plus the measurements the caller observed while
// producing it. All types are treated as immutable by the pipeline.
package exchange

// Turn is one prior message in the conversation history.
type Turn struct {
	Role string `json:"role"` // "user" or "agent"
	Text string `json:"text"`
}

// Interaction is a single user/agent exchange. MessageText and ResponseText
// are always present — empty string, never absent.
type Interaction struct {
	MessageText       string            `json:"message_text"`
	ResponseText      string            `json:"response_text"`
	History           []Turn            `json:"history,omitempty"`
	SessionContext    map[string]string `json:"session_context,omitempty"`
	GovernanceContext map[string]string `json:"governance_context,omitempty"`
}

// TokenUsage holds the token counts reported by the model backend.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ModelConfig identifies the model and sampling parameters used.
type ModelConfig struct {
	ModelID     string  `json:"model_id"`
	Version     string  `json:"version"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

// Metrics are measurements supplied by the caller, never derived here.
type Metrics struct {
	ResponseLatencyMs int64        `json:"response_latency_ms"`
	Tokens            *TokenUsage  `json:"token_usage,omitempty"`
	Model             *ModelConfig `json:"model_config,omitempty"`
}

// Refs identifies the parties of the exchange.
type Refs struct {
	AgentID        string `json:"agent_id"`
	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}
