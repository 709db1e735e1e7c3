package snapshot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/payment"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
)

// MemoryStore is the snapshot store for redis-less deploys and tests. Slots
// hold the serialized form so load semantics (including corrupt payloads)
// match the redis store.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[uuid.UUID][]byte
}

// NewMemoryStore creates an in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[uuid.UUID][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, userID uuid.UUID, snap *payment.Source) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[userID] = payload
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, userID uuid.UUID) (*payment.Source, error) {
	s.mu.RLock()
	payload, ok := s.slots[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}

	var snap payment.Source
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, ErrCorrupt
	}
	return &snap, nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, userID)
	return nil
}

// Corrupt overwrites a slot with an undecodable payload. Test hook for the
// fallback path.
func (s *MemoryStore) Corrupt(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[userID] = []byte("{not json")
}
