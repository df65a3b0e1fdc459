package inflight

import (
	"errors"
	"sync"
)

var ErrInFlight = errors.New("request already in flight")

// Guard tracks which user actions currently have a request in flight.
// A second call for the same key is rejected until the first one returns.
type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func New() *Guard {
	return &Guard{
		busy: make(map[string]struct{}),
	}
}

// Do runs fn while holding key. Returns ErrInFlight without calling fn when
// key is already held.
func (g *Guard) Do(key string, fn func() error) error {
	if !g.acquire(key) {
		return ErrInFlight
	}
	defer g.release(key)

	return fn()
}

func (g *Guard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.busy[key]
	return ok
}

func (g *Guard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.busy[key]; ok {
		return false
	}
	g.busy[key] = struct{}{}
	return true
}

func (g *Guard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.busy, key)
}
