// Package pipeline orchestrates enrichment: extract signals once, fan the
// facet classifiers out, assemble the audit entry. Every step is pure and
// in-memory; the only I/O in the system is the sink call at the boundary,
// which belongs to the caller.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/facet"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/record"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// Options override the pipeline's injected collaborators. Zero values pick
// the production defaults; tests inject a fixed clock and id sequence to get
// byte-identical entries.
type Options struct {
	Clock        func() time.Time
	NewID        func() string
	Constructors []facet.Constructor
}

// Pipeline turns one exchange into one audit entry. Safe for concurrent use;
// each Process call is independent and holds the lexicon snapshot it started
// with.
type Pipeline struct {
	lex          *lexicon.Store
	constructors []facet.Constructor
	asm          *record.Assembler
	logger       *slog.Logger
}

func New(lex *lexicon.Store, opts Options, logger *slog.Logger) *Pipeline {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	ctors := opts.Constructors
	if ctors == nil {
		ctors = facet.Defaults()
	}
	return &Pipeline{
		lex:          lex,
		constructors: ctors,
		asm:          record.NewAssembler(clock, newID),
		logger:       logger,
	}
}

// Process runs extraction, the classifiers, and assembly. Classifiers run
// concurrently — they are pure, independent, and share only read-only
// inputs — and all must finish before assembly; a partial facet set is never
// assembled. The only possible error is *record.SchemaViolation (or a
// context already cancelled on entry).
func (p *Pipeline) Process(ctx context.Context, in exchange.Interaction, m exchange.Metrics, refs exchange.Refs) (*record.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := p.lex.Snapshot()
	sig := signal.NewExtractor(snap).Extract(in)

	results := make([]facet.Result, len(p.constructors))
	g := new(errgroup.Group)
	for i, ctor := range p.constructors {
		c := ctor(snap)
		g.Go(func() error {
			results[i] = c.Classify(in, sig)
			return nil
		})
	}
	// Classifiers are total; Wait only synchronizes the fan-out.
	_ = g.Wait()

	entry, err := p.asm.Assemble(in, results, m, refs, snap.Pricing)
	if err != nil {
		p.logger.Error("audit entry assembly failed",
			"conversation_id", refs.ConversationID,
			"error", err,
		)
		return nil, err
	}
	return entry, nil
}
