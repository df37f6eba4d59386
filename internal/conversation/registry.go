package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultIdleTimeout   = time.Hour
	DefaultSweepInterval = 10 * time.Minute
)

var ErrNotFound = errors.New("conversation not found")

// Registry keeps the live conversations of the process. Conversations are
// never persisted; idle ones are dropped by the sweeper.
type Registry struct {
	resolver Resolver
	idle     time.Duration
	logger   *zap.Logger

	mu            sync.RWMutex
	conversations map[string]*Controller
}

func NewRegistry(r Resolver, idle time.Duration, logger *zap.Logger) *Registry {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		resolver:      r,
		idle:          idle,
		logger:        logger,
		conversations: make(map[string]*Controller),
	}
}

// Create opens a new empty conversation.
func (r *Registry) Create() *Controller {
	c := NewController("", r.resolver)
	r.mu.Lock()
	r.conversations[c.ID()] = c
	r.mu.Unlock()
	return c
}

func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.RLock()
	c, ok := r.conversations[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conversations[id]; !ok {
		return ErrNotFound
	}
	delete(r.conversations, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conversations)
}

// Sweep drops conversations idle since before now-idle and returns how many were removed.
// Conversations with a pending reply are kept.
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, c := range r.conversations {
		if c.idleSince(cutoff) {
			delete(r.conversations, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on every tick until ctx is cancelled.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go r.sweepLoop(ctx, interval)
}

func (r *Registry) sweepLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Sweep(now.UTC()); n > 0 {
				r.logger.Info("swept idle conversations", zap.Int("removed", n))
			}
		}
	}
}
