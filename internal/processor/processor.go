// Package processor drives the enrichment pipeline from the swarm bus: one
// stored exchange in, one appended audit entry out, one announcement after.
package processor

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/hermes"
	"github.com/MikeSquared-Agency/scribe/internal/pipeline"
	"github.com/MikeSquared-Agency/scribe/internal/sink"
)

// ExchangeStoredEvent is the Chronicle event payload for one stored exchange.
type ExchangeStoredEvent struct {
	AgentID           string            `json:"agent_id"`
	UserID            string            `json:"user_id"`
	ConversationID    string            `json:"conversation_id"`
	MessageText       string            `json:"message_text"`
	ResponseText      string            `json:"response_text"`
	History           []exchange.Turn   `json:"history,omitempty"`
	SessionContext    map[string]string `json:"session_context,omitempty"`
	GovernanceContext map[string]string `json:"governance_context,omitempty"`
	Metrics           exchange.Metrics  `json:"metrics"`
}

// Processor wires the pipeline to the bus and the sink. The bus is optional:
// without it Scribe still enriches and appends, it just stays quiet.
type Processor struct {
	pipe   *pipeline.Pipeline
	sink   sink.Sink
	bus    *hermes.Client
	logger *slog.Logger
}

func New(pipe *pipeline.Pipeline, snk sink.Sink, bus *hermes.Client, logger *slog.Logger) *Processor {
	return &Processor{pipe: pipe, sink: snk, bus: bus, logger: logger}
}

// HandleExchangeStored is the NATS handler for swarm.chronicle.exchange.stored.
func (p *Processor) HandleExchangeStored(subject string, data []byte) {
	ctx := context.Background()

	var evt ExchangeStoredEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse exchange event", "error", err)
		return
	}

	in := exchange.Interaction{
		MessageText:       evt.MessageText,
		ResponseText:      evt.ResponseText,
		History:           evt.History,
		SessionContext:    evt.SessionContext,
		GovernanceContext: evt.GovernanceContext,
	}
	refs := exchange.Refs{
		AgentID:        evt.AgentID,
		UserID:         evt.UserID,
		ConversationID: evt.ConversationID,
	}

	entry, err := p.pipe.Process(ctx, in, evt.Metrics, refs)
	if err != nil {
		p.logger.Error("enrichment failed",
			"conversation_id", evt.ConversationID,
			"error", err,
		)
		return
	}

	id, err := p.sink.Append(ctx, entry)
	if err != nil {
		// No partial or corrupt entries are ever persisted; the turn's
		// audit record is simply not recorded.
		p.logger.Error("sink append failed",
			"entry_id", entry.ID,
			"conversation_id", evt.ConversationID,
			"error", err,
		)
		return
	}

	if p.bus != nil {
		if err := p.bus.Publish(hermes.SubjectEntryRecorded, hermes.EntryRecorded{
			EntryID:        id,
			AgentID:        entry.AgentID,
			UserID:         entry.UserID,
			ConversationID: evt.ConversationID,
			SourceHash:     entry.SourceHash,
			CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			p.logger.Error("failed to publish entry recorded", "entry_id", id, "error", err)
		}
	}

	p.logger.Info("audit entry recorded",
		"entry_id", id,
		"conversation_id", evt.ConversationID,
		"review", string(entry.Facets.Governance.EthicalReview),
	)
}
