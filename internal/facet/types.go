package facet

// Intent is the inferred purpose of the user's message.
type Intent string

const (
	IntentQuestion  Intent = "question"
	IntentRequest   Intent = "request"
	IntentFeedback  Intent = "feedback"
	IntentStatement Intent = "statement"
)

// Tone is the inferred conversational tone of the user's message.
type Tone string

const (
	ToneNeutral    Tone = "neutral"
	TonePositive   Tone = "positive"
	ToneFrustrated Tone = "frustrated"
	ToneUrgent     Tone = "urgent"
	ToneUncertain  Tone = "uncertain"
)

// ReasoningMode characterizes how the agent reasoned in its response.
type ReasoningMode string

const (
	ModeAnalytical  ReasoningMode = "analytical"
	ModeCreative    ReasoningMode = "creative"
	ModeEthical     ReasoningMode = "ethical"
	ModeFactual     ReasoningMode = "factual"
	ModeExploratory ReasoningMode = "exploratory"
)

// RiskLevel grades the decision surface of the exchange.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Affect is a coarse emotional state attributed to either party.
type Affect string

const (
	AffectNeutral    Affect = "neutral"
	AffectPositive   Affect = "positive"
	AffectFrustrated Affect = "frustrated"
	AffectConfused   Affect = "confused"
	AffectAnxious    Affect = "anxious"
	AffectConfident  Affect = "confident"
	AffectApologetic Affect = "apologetic"
	AffectEmpathetic Affect = "empathetic"
)

// CommunicationStyle characterizes the register of the agent's response.
type CommunicationStyle string

const (
	StyleTechnical      CommunicationStyle = "technical"
	StyleInstructional  CommunicationStyle = "instructional"
	StyleEmpathetic     CommunicationStyle = "empathetic"
	StyleConversational CommunicationStyle = "conversational"
)

// ReviewOutcome is the result of the lexical ethical review.
type ReviewOutcome string

const (
	ReviewPassed  ReviewOutcome = "passed"
	ReviewFlagged ReviewOutcome = "flagged"
	ReviewBlocked ReviewOutcome = "blocked"
)

// ConsentStatus reflects the consent state the caller supplied.
type ConsentStatus string

const (
	ConsentGranted ConsentStatus = "granted"
	ConsentDenied  ConsentStatus = "denied"
	ConsentUnknown ConsentStatus = "unknown"
)

// DeviceClass is the coarse device category of the session.
type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
	DeviceUnknown DeviceClass = "unknown"
)

// ConversationContext situates the exchange within its conversation.
// MessageID and ConversationID are stamped by the assembler.
type ConversationContext struct {
	MessageID      string   `json:"message_id"`
	ConversationID string   `json:"conversation_id"`
	TurnSequence   int      `json:"turn_sequence"`
	Topics         []string `json:"topics"`
	UserIntent     Intent   `json:"user_intent"`
	Tone           Tone     `json:"tone"`
}

func (*ConversationContext) Facet() Name { return NameConversation }

// CognitiveState estimates the agent's epistemic posture.
type CognitiveState struct {
	Confidence       float64       `json:"confidence"`
	UncertaintyAreas []string      `json:"uncertainty_areas"`
	KnowledgeGaps    []string      `json:"knowledge_gaps"`
	ReasoningMode    ReasoningMode `json:"reasoning_mode"`
	CognitiveLoad    float64       `json:"cognitive_load"`
	AttentionFocus   []string      `json:"attention_focus"`
}

func (*CognitiveState) Facet() Name { return NameCognitive }

// DecisionProcess reconstructs the visible decision surface of the response.
type DecisionProcess struct {
	AlternativesConsidered []string  `json:"alternatives_considered"`
	DecisionCriteria       []string  `json:"decision_criteria"`
	RiskLevel              RiskLevel `json:"risk_level"`
	EthicalFlags           []string  `json:"ethical_flags"`
	DecisionConfidence     float64   `json:"decision_confidence"`
	FallbackStrategies     []string  `json:"fallback_strategies"`
}

func (*DecisionProcess) Facet() Name { return NameDecision }

// LearningContext captures what the exchange taught or reinforced.
type LearningContext struct {
	NewInformation     []string `json:"new_information"`
	ConceptsReinforced []string `json:"concepts_reinforced"`
	SkillsApplied      []string `json:"skills_applied"`
	Challenges         []string `json:"challenges"`
	ImprovementAreas   []string `json:"improvement_areas"`
}

func (*LearningContext) Facet() Name { return NameLearning }

// EmotionalSignal captures the affect of both parties.
type EmotionalSignal struct {
	UserAffect         Affect             `json:"user_affect"`
	AgentAffect        Affect             `json:"agent_affect"`
	EmpathyLevel       float64            `json:"empathy_level"`
	CommunicationStyle CommunicationStyle `json:"communication_style"`
}

func (*EmotionalSignal) Facet() Name { return NameEmotional }

// PerformanceMetrics scores the response. Latency is caller-observed and
// stamped by the assembler; the five quality scores are signal-derived,
// each within [0,1].
type PerformanceMetrics struct {
	ResponseLatencyMs int64   `json:"response_latency_ms"`
	Accuracy          float64 `json:"accuracy"`
	Helpfulness       float64 `json:"helpfulness"`
	Clarity           float64 `json:"clarity"`
	Completeness      float64 `json:"completeness"`
	Relevance         float64 `json:"relevance"`
}

func (*PerformanceMetrics) Facet() Name { return NamePerformance }

// TechnicalContext records the model invocation and its cost. Built entirely
// from caller-supplied metrics plus the price table.
type TechnicalContext struct {
	ModelID          string  `json:"model_id"`
	ModelVersion     string  `json:"model_version"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	MaxTokens        int     `json:"max_tokens"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	CostUSD          float64 `json:"cost_usd"`
}

func (*TechnicalContext) Facet() Name { return NameTechnical }

// GovernanceContext records which policies and checks applied.
type GovernanceContext struct {
	PoliciesApplied  []string      `json:"policies_applied"`
	ComplianceChecks []string      `json:"compliance_checks"`
	EthicalReview    ReviewOutcome `json:"ethical_review"`
	ConsentStatus    ConsentStatus `json:"consent_status"`
}

func (*GovernanceContext) Facet() Name { return NameGovernance }

// EnvironmentalContext records where the session ran.
type EnvironmentalContext struct {
	Platform          string      `json:"platform"`
	Device            DeviceClass `json:"device"`
	Timezone          string      `json:"timezone"`
	SessionDurationMs int64       `json:"session_duration_ms"`
}

func (*EnvironmentalContext) Facet() Name { return NameEnvironment }

// ForwardLooking suggests where the conversation could go next.
type ForwardLooking struct {
	FollowUps        []string `json:"follow_ups"`
	RelatedTopics    []string `json:"related_topics"`
	SkillSuggestions []string `json:"skill_suggestions"`
}

func (*ForwardLooking) Facet() Name { return NameForward }
