package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"voyago/internal/models/request_models"
)

const sessionKeyPrefix = "travel_session:"

// SessionStore keeps the in-progress TravelInput keyed by session id while
// the follow-up wizard runs. The core never reaches into it directly.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, input request_models.TravelInput, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (request_models.TravelInput, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID string, input request_models.TravelInput, ttl time.Duration) error {
	data, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, data, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (request_models.TravelInput, bool, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return request_models.TravelInput{}, false, nil
	}
	if err != nil {
		return request_models.TravelInput{}, false, err
	}
	var input request_models.TravelInput
	if err := json.Unmarshal([]byte(data), &input); err != nil {
		return request_models.TravelInput{}, false, err
	}
	return input, true, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// ---------------------------------------------------------------

type sessionEntry struct {
	input     request_models.TravelInput
	expiresAt time.Time
}

type memorySessionStore struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

// NewMemorySessionStore is the single-process fallback used when no Redis
// address is configured.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{data: make(map[string]sessionEntry)}
}

func (s *memorySessionStore) Save(ctx context.Context, sessionID string, input request_models.TravelInput, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		input:     input.Clone(),
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *memorySessionStore) Get(ctx context.Context, sessionID string) (request_models.TravelInput, bool, error) {
	s.mu.RLock()
	entry, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return request_models.TravelInput{}, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.data, sessionID)
		s.mu.Unlock()
		return request_models.TravelInput{}, false, nil
	}
	return entry.input.Clone(), true, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
