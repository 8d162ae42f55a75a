package pipeline

import (
	"sync"

	"github.com/google/uuid"
)

// contractLocks serializes processing per contract without blocking: a second
// caller for the same contract is refused immediately rather than queued.
type contractLocks struct {
	mu   sync.Mutex
	held map[uuid.UUID]struct{}
}

func newContractLocks() *contractLocks {
	return &contractLocks{held: make(map[uuid.UUID]struct{})}
}

// tryAcquire reports whether the caller now owns the contract's lock.
func (l *contractLocks) tryAcquire(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.held[id]; busy {
		return false
	}
	l.held[id] = struct{}{}
	return true
}

func (l *contractLocks) release(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, id)
}
