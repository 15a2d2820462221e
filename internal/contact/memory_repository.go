package contact

import (
	"context"
	"sync"
)

// MemoryRepository keeps contact messages in memory. Tests can inspect what was
// stored through All.
type MemoryRepository struct {
	mu       sync.RWMutex
	messages []Message
}

// NewMemoryRepository builds an in-memory contact store for testing.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, msg Message) error {
	if msg.Name == "" || msg.Email == "" || msg.Phone == "" || msg.Subject == "" || msg.Body == "" {
		return ErrMissingField
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

// All returns a copy of every stored message.
func (r *MemoryRepository) All() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
