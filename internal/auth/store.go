package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"feebank/internal/models"
	"feebank/internal/redis"
)

// ErrSessionNotFound is returned by a Store for unknown or evicted tokens.
var ErrSessionNotFound = errors.New("session not found")

// Store persists login sessions keyed by token.
type Store interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	logger   *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{sessions: make(map[string]models.Session), logger: logger}
}

func (m *MemoryStore) Save(_ context.Context, session *models.Session) error {
	if session == nil || session.Token == "" {
		return errors.New("session token required")
	}
	m.mu.Lock()
	m.sessions[session.Token] = *session
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Load(_ context.Context, token string) (*models.Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (m *MemoryStore) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for token, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// StartSweeper periodically drops expired sessions until ctx is cancelled.
func (m *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := m.Sweep(now.UTC()); n > 0 {
					m.logger.Info("swept expired sessions", zap.Int("removed", n))
				}
			}
		}
	}()
}

const redisSessionPrefix = "feebank:session:"

// RedisStore keeps sessions in redis; each key expires with its session.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: redisSessionPrefix}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Save(ctx context.Context, session *models.Session) error {
	if session == nil || session.Token == "" {
		return errors.New("session token required")
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	if err := r.client.SetJSON(ctx, r.key(session.Token), sessionRecord{Session: *session, Token: session.Token}, ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, token string) (*models.Session, error) {
	var rec sessionRecord
	if err := r.client.GetJSON(ctx, r.key(token), &rec); err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	session := rec.Session
	session.Token = rec.Token
	return &session, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// sessionRecord carries the token, which models.Session hides from JSON.
type sessionRecord struct {
	models.Session
	Token string `json:"token"`
}
