package lexicon

import "github.com/MikeSquared-Agency/scribe/internal/pricing"

// Defaults returns the built-in lexicon. Each call returns a fresh value so
// file overrides never leak between stores.
func Defaults() *Snapshot {
	return &Snapshot{
		Version: "builtin-2025.08",
		Topics: map[string][]string{
			"security":         {"sql injection", "injection", "vulnerability", "xss", "csrf", "authentication", "encryption", "password", "exploit", "security"},
			"databases":        {"sql", "database", "query", "queries", "schema", "index", "postgres", "migration"},
			"frontend":         {"css", "html", "react", "component", "browser", "layout"},
			"backend":          {"api", "endpoint", "server", "microservice", "cache", "queue"},
			"devops":           {"docker", "kubernetes", "deploy", "terraform", "rollout", "ci"},
			"machine-learning": {"model", "training", "dataset", "embedding", "inference", "llm"},
			"compliance":       {"gdpr", "hipaa", "regulation", "audit", "retention", "policy"},
			"testing":          {"test", "coverage", "mock", "regression", "assertion"},
			"performance":      {"slow", "optimize", "profiling", "throughput", "benchmark", "latency"},
		},
		Cues: map[string][]string{
			CueHedging:     {"maybe", "perhaps", "i think", "i believe", "not sure", "might", "possibly", "it depends", "probably"},
			CueCertainty:   {"definitely", "certainly", "always", "guaranteed", "clearly", "without a doubt", "absolutely"},
			CueQuestion:    {"how do i", "how can i", "what is", "what are", "why does", "can you", "could you", "should i"},
			CueFrustration: {"frustrated", "frustrating", "annoying", "not working", "broken", "keeps failing", "fed up"},
			CueGratitude:   {"thanks", "thank you", "appreciate", "awesome", "great job", "perfect"},
			CueConfusion:   {"confused", "don't understand", "do not understand", "unclear", "what do you mean", "makes no sense"},
			CueUrgency:     {"urgent", "asap", "immediately", "right now", "deadline", "time sensitive"},
			CueRisk:        {"delete", "drop table", "production", "credentials", "password", "secret key", "injection", "vulnerability", "exploit", "breach", "payment", "medical", "legal advice"},
			CueEthics:      {"bias", "biased", "fairness", "privacy", "consent", "discrimination", "surveillance", "harmful"},
			CueLearning:    {"learned", "didn't know", "did not know", "new to me", "first time", "now i understand", "good to know"},
			CueCreative:    {"brainstorm", "imagine", "creative", "story", "design a", "come up with", "invent"},
			CueAnalysis:    {"analyze", "analyse", "compare", "evaluate", "trade-off", "tradeoff", "pros and cons", "because", "therefore"},
			CueEmpathy:     {"i understand", "that sounds", "sorry to hear", "i can see why", "that must be"},
			CueApology:     {"sorry", "apologize", "apologise", "my mistake", "i was wrong"},
			CueAlternative: {"instead", "alternatively", "another option", "you could also", "one option"},
			CueInstruction: {"first,", "then,", "next,", "step 1", "finally,", "follow these"},
			CueProhibited:  {"build malware", "create a weapon", "steal credentials", "launch a ddos", "evade detection"},
		},
		Related: map[string][]string{
			"security":         {"threat modeling", "secure coding"},
			"databases":        {"query optimization", "data modeling"},
			"frontend":         {"accessibility", "state management"},
			"backend":          {"api design", "observability"},
			"devops":           {"infrastructure as code", "release engineering"},
			"machine-learning": {"model evaluation", "prompt engineering"},
			"compliance":       {"data governance", "risk management"},
			"testing":          {"test strategy", "property-based testing"},
			"performance":      {"profiling", "capacity planning"},
		},
		Skills: map[string]string{
			"security":         "secure coding",
			"databases":        "query design",
			"frontend":         "ui engineering",
			"backend":          "service design",
			"devops":           "infrastructure automation",
			"machine-learning": "model literacy",
			"compliance":       "regulatory awareness",
			"testing":          "test design",
			"performance":      "performance tuning",
		},
		Thresholds: Thresholds{
			LengthNorm:        2000,
			ConfidenceBase:    0.8,
			ConfidenceHedged:  0.6,
			ConfidenceCertain: 0.9,
			RiskFlagCount:     3,
			EmpathyBase:       0.5,
			EmpathyWarm:       0.7,
			EmpathyHigh:       0.9,
			EmpathyCold:       0.3,
			ScoreWeak:         0.6,
			ScoreFair:         0.7,
			ScoreBase:         0.8,
			ScoreStrong:       0.9,
			LongResponseLen:   400,
			ShortResponseLen:  100,
			LongSentenceLen:   120,
			MaxSuggestions:    3,
		},
		Pricing: pricing.DefaultTable(),
	}
}
