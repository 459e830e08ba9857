package usecase

import (
	"context"
	"sync"
	"time"
)

// LocalRunGuard is an in-process port.RunGuard. It is used when no shared
// lease store is configured and only protects a single replica.
type LocalRunGuard struct {
	mu     sync.Mutex
	leases map[string]time.Time
	now    func() time.Time
}

func NewLocalRunGuard() *LocalRunGuard {
	return &LocalRunGuard{leases: make(map[string]time.Time), now: time.Now}
}

// Acquire grants the named lease unless an unexpired one is held.
func (g *LocalRunGuard) Acquire(_ context.Context, name string, ttl time.Duration) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	if until, ok := g.leases[name]; ok && now.Before(until) {
		return nil, false, nil
	}
	until := now.Add(ttl)
	g.leases[name] = until
	var once sync.Once
	release := func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			// only drop the lease we granted; an expired one may have been re-granted
			if g.leases[name].Equal(until) {
				delete(g.leases, name)
			}
		})
	}
	return release, true, nil
}
