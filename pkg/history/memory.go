package history

import (
	"context"
	"sort"
	"sync"
)

// MemorySource is an in-memory archive for tests and development.
type MemorySource struct {
	mu       sync.RWMutex
	messages []Message
}

// NewMemorySource creates an empty in-memory archive.
func NewMemorySource() *MemorySource {
	return &MemorySource{}
}

// Add appends messages to the archive.
func (s *MemorySource) Add(msgs ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msgs...)
}

// Messages returns up to limit messages for place, newest first.
func (s *MemorySource) Messages(ctx context.Context, place string, limit int) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Message
	for _, m := range s.messages {
		if m.Place == place {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close is a no-op for the in-memory archive.
func (s *MemorySource) Close(ctx context.Context) error { return nil }
