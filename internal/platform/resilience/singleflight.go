package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one
// execution; waiters receive the leader's result. The third return
// value reports whether the result was shared.
type SingleFlight struct {
	mu     sync.Mutex
	flight map[string]*inflight
}

type inflight struct {
	done chan struct{}
	val  any
	err  error
}

func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.flight == nil {
		g.flight = make(map[string]*inflight)
	}
	if existing, ok := g.flight[key]; ok {
		g.mu.Unlock()
		<-existing.done
		return existing.val, existing.err, true
	}

	leader := &inflight{done: make(chan struct{})}
	g.flight[key] = leader
	g.mu.Unlock()

	leader.val, leader.err = fn()

	g.mu.Lock()
	delete(g.flight, key)
	g.mu.Unlock()
	close(leader.done)

	return leader.val, leader.err, false
}
