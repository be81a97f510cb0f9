package update_order_status

import (
	"sync"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// InMemoryTracker mutex-guarded status distribution
type InMemoryTracker struct {
	mu   sync.Mutex
	dist domain.StatusDistribution
}

// NewInMemoryTracker creates an empty tracker
func NewInMemoryTracker() *InMemoryTracker {
	return &InMemoryTracker{}
}

// Seed replaces the distribution, typically with a fresh full count
func (t *InMemoryTracker) Seed(dist domain.StatusDistribution) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dist = dist
}

// Shift moves one order between buckets
func (t *InMemoryTracker) Shift(from, to domain.OrderStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dist.Shift(from, to)
}

// Snapshot returns a copy of the current distribution
func (t *InMemoryTracker) Snapshot() domain.StatusDistribution {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dist
}
