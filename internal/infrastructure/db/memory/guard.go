package memory

import (
	"context"
	"sync"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// ActionGuard tracks in-flight logical actions within one process.
type ActionGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewActionGuard() *ActionGuard {
	return &ActionGuard{held: make(map[string]struct{})}
}

// Acquire claims key until the returned release func is called.
func (g *ActionGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, domain.ErrActionInFlight
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
