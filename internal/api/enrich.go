package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/record"
	"github.com/MikeSquared-Agency/scribe/internal/sink"
)

// EnrichRequest is the payload for POST /api/v1/audit/enrich. DryRun returns
// the enriched entry without appending it — the dashboard uses this for
// record previews.
type EnrichRequest struct {
	AgentID           string            `json:"agent_id"`
	UserID            string            `json:"user_id"`
	ConversationID    string            `json:"conversation_id"`
	MessageText       string            `json:"message_text"`
	ResponseText      string            `json:"response_text"`
	History           []exchange.Turn   `json:"history,omitempty"`
	SessionContext    map[string]string `json:"session_context,omitempty"`
	GovernanceContext map[string]string `json:"governance_context,omitempty"`
	Metrics           exchange.Metrics  `json:"metrics"`
	DryRun            bool              `json:"dry_run"`
}

// EnrichResponse returns the assembled entry and whether it was stored.
type EnrichResponse struct {
	Entry  *record.Entry `json:"entry"`
	Stored bool          `json:"stored"`
	SinkID string        `json:"sink_id,omitempty"`
}

func (s *Server) enrich(w http.ResponseWriter, r *http.Request) {
	var req EnrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"invalid JSON: %v"}`, err), http.StatusBadRequest)
		return
	}

	in := exchange.Interaction{
		MessageText:       req.MessageText,
		ResponseText:      req.ResponseText,
		History:           req.History,
		SessionContext:    req.SessionContext,
		GovernanceContext: req.GovernanceContext,
	}
	refs := exchange.Refs{
		AgentID:        req.AgentID,
		UserID:         req.UserID,
		ConversationID: req.ConversationID,
	}

	entry, err := s.pipe.Process(r.Context(), in, req.Metrics, refs)
	if err != nil {
		s.logger.Error("enrich request failed", "conversation_id", req.ConversationID, "error", err)
		http.Error(w, `{"error":"enrichment failed"}`, http.StatusInternalServerError)
		return
	}

	resp := EnrichResponse{Entry: entry}
	if !req.DryRun {
		id, err := s.sink.Append(r.Context(), entry)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, sink.ErrUnavailable) {
				status = http.StatusServiceUnavailable
			}
			s.logger.Error("sink append failed", "entry_id", entry.ID, "error", err)
			http.Error(w, `{"error":"audit entry could not be recorded"}`, status)
			return
		}
		resp.Stored = true
		resp.SinkID = id
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
