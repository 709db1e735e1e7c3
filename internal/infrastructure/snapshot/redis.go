package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cafepos/cafepos-api/internal/domain/payment"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
)

// ErrCorrupt is returned when a slot holds a payload that does not decode.
// Callers treat it the same as an empty slot and fall back.
var ErrCorrupt = errors.New("handoff snapshot is corrupt")

// handoffTTL bounds how long an abandoned handoff lingers
const handoffTTL = 12 * time.Hour

// RedisStore keeps each user's handoff slot in redis so a payment screen can
// pick it up from any terminal
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed snapshot store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, userID uuid.UUID, snap *payment.Source) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal handoff snapshot: %w", err)
	}
	if err := s.client.Set(ctx, slotKey(userID), payload, handoffTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, userID uuid.UUID) (*payment.Source, error) {
	data, err := s.client.Get(ctx, slotKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snap payment.Source
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, ErrCorrupt
	}
	return &snap, nil
}

func (s *RedisStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, slotKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func slotKey(userID uuid.UUID) string {
	return fmt.Sprintf("handoff:%s", userID)
}
