package sink

import (
	"context"
	"sync"

	"github.com/MikeSquared-Agency/scribe/internal/record"
)

// Memory is an in-process sink for tests and dry deployments.
type Memory struct {
	mu      sync.Mutex
	entries []*record.Entry
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Append(_ context.Context, e *record.Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return e.ID, nil
}

// Entries returns a copy of everything appended so far.
func (s *Memory) Entries() []*record.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*record.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
