package idempotence

import (
	"sync"
)

// MemoryRepository remembers handled ids for the process lifetime only.
// Used with the file store backend, which has no shared database to
// record them in.
type MemoryRepository struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{seen: make(map[string]struct{})}
}

func (r *MemoryRepository) MakeRecord(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[id]; ok {
		return false, nil
	}
	r.seen[id] = struct{}{}
	return true, nil
}
