package impl

import (
	"sync"

	"github.com/google/uuid"
)

// inflightGuard enforces at most one running generation per session.
type inflightGuard struct {
	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[uuid.UUID]struct{})}
}

// acquire claims the session's generation slot, reporting false when a
// generation is already running.
func (g *inflightGuard) acquire(sessionID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[sessionID]; busy {
		return false
	}
	g.active[sessionID] = struct{}{}

	return true
}

func (g *inflightGuard) release(sessionID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, sessionID)
}
