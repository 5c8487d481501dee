package repositories

import (
	"sync"
	"time"
)

// IDGenerator hands out clock-based integer ids (milliseconds since epoch,
// matching the ids already present in the seed data). The guard keeps ids
// strictly increasing when two are requested within the same millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	last int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Next() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := int(time.Now().UnixMilli())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
