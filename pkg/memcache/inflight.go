package memcache

import "sync"

// InflightGuard tracks trips whose background processing pass is currently
// running, so a duplicate submission for the same trip id is rejected
// instead of racing the first one.
type InflightGuard struct {
	mu   sync.Mutex
	busy map[int64]struct{}
}

func NewInflightGuard() *InflightGuard {
	return &InflightGuard{busy: make(map[int64]struct{})}
}

// TryAcquire reserves tripID and reports whether the reservation was won.
func (g *InflightGuard) TryAcquire(tripID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[tripID]; ok {
		return false
	}
	g.busy[tripID] = struct{}{}
	return true
}

func (g *InflightGuard) Release(tripID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, tripID)
}
