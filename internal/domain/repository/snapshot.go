package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/payment"
)

// ErrSnapshotNotFound is returned when a user's handoff slot is empty
var ErrSnapshotNotFound = errors.New("handoff snapshot not found")

// SnapshotStore holds the single-slot "proceed to payment" handoff per user:
// the sale screen writes the built cart into the slot, the payment screen
// reads it once, and completion clears it. A save always overwrites.
type SnapshotStore interface {
	Save(ctx context.Context, userID uuid.UUID, snap *payment.Source) error
	// Load returns ErrSnapshotNotFound for an empty slot and a distinct error
	// for a corrupt payload; callers decide whether to fall back
	Load(ctx context.Context, userID uuid.UUID) (*payment.Source, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// FallbackSource supplies the deterministic placeholder order shown when the
// handoff slot is empty or unreadable. Injected at the boundary so production
// can run without one and tests can substitute their own.
type FallbackSource interface {
	SampleOrder() payment.Source
}
