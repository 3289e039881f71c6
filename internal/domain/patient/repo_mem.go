package patient

import (
	"context"
	"sync"
)

// MemoryRepository keeps the snapshot in process memory. Used when no
// database is configured; state is lost on restart.
type MemoryRepository struct {
	mu   sync.Mutex
	snap *Snapshot
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(_ context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap, nil
}

func (r *MemoryRepository) Save(_ context.Context, s *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = s
	return nil
}
