// Package sink is the append-only persistence boundary for finished audit
// entries. The pipeline depends only on the Append contract; retry policy
// belongs to the deployment's storage client, never to this core.
package sink

import (
	"context"
	"errors"

	"github.com/MikeSquared-Agency/scribe/internal/record"
)

// ErrUnavailable wraps storage failures crossing the pipeline boundary.
// Callers match it with errors.Is.
var ErrUnavailable = errors.New("audit sink unavailable")

// Sink accepts one finished entry and returns its durable id.
type Sink interface {
	Append(ctx context.Context, e *record.Entry) (string, error)
}
