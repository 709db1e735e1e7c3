package snapshot_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafepos/cafepos-api/internal/domain/payment"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/internal/infrastructure/snapshot"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	userID := uuid.New()

	snap := &payment.Source{
		Label: "Hızlı Satış",
		Items: []payment.SourceLine{
			{ID: 1, ProductName: "Çay", Quantity: 2, UnitPrice: 1500, LineTotal: 3000},
		},
		Total: 3000,
	}
	require.NoError(t, store.Save(ctx, userID, snap))

	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	// saves overwrite the single slot
	require.NoError(t, store.Save(ctx, userID, &payment.Source{Label: "MASA 3", Total: 500}))
	loaded, err = store.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "MASA 3", loaded.Label)
}

func TestMemoryStoreEmptySlot(t *testing.T) {
	store := snapshot.NewMemoryStore()
	_, err := store.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, userID, &payment.Source{Total: 100}))
	require.NoError(t, store.Clear(ctx, userID))

	_, err := store.Load(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	// clearing an already empty slot is fine
	assert.NoError(t, store.Clear(ctx, userID))
}

func TestMemoryStoreCorruptPayload(t *testing.T) {
	store := snapshot.NewMemoryStore()
	userID := uuid.New()
	store.Corrupt(userID)

	_, err := store.Load(context.Background(), userID)
	assert.ErrorIs(t, err, snapshot.ErrCorrupt)
}

func TestSampleFallbackIsDeterministic(t *testing.T) {
	fb := snapshot.NewSampleFallback()
	first := fb.SampleOrder()
	second := fb.SampleOrder()

	assert.Equal(t, first, second)
	assert.Equal(t, "MASA 12", first.Label)

	var total int64
	for _, item := range first.Items {
		assert.Equal(t, int64(item.Quantity)*item.UnitPrice, item.LineTotal)
		total += item.LineTotal
	}
	assert.Equal(t, total, first.Total)
}
