package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/internal/infrastructure/snapshot"
	"github.com/cafepos/cafepos-api/pkg/apperror"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeProductRepo) List(ctx context.Context, cafeID uuid.UUID, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func cartFixture(t *testing.T) (*CartService, *snapshot.MemoryStore, uuid.UUID, uuid.UUID, *fakeProductRepo) {
	t.Helper()
	cafeID := uuid.New()
	userID := uuid.New()
	products := &fakeProductRepo{products: map[uuid.UUID]*entity.Product{}}
	store := snapshot.NewMemoryStore()
	svc := NewCartService(nil, products, nil, store)
	return svc, store, cafeID, userID, products
}

func seedProduct(products *fakeProductRepo, cafeID uuid.UUID, name string, price int64, available bool) uuid.UUID {
	id := uuid.New()
	products.products[id] = &entity.Product{
		ID:        id,
		CafeID:    cafeID,
		Name:      name,
		Price:     price,
		Available: available,
	}
	return id
}

func TestCommitForPaymentWritesSlot(t *testing.T) {
	svc, store, cafeID, userID, products := cartFixture(t)
	teaID := seedProduct(products, cafeID, "Çay", 1500, true)
	toastID := seedProduct(products, cafeID, "Tost", 7500, true)

	committed, err := svc.CommitForPayment(context.Background(), cafeID, userID, &CommitInput{
		Label: "MASA 3",
		Items: []CartLineInput{
			{ProductID: teaID, Quantity: 2},
			{ProductID: toastID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, committed)

	source, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "MASA 3", source.Label)
	assert.Equal(t, int64(2*1500+7500), source.Total)
	require.Len(t, source.Items, 2)
	assert.Equal(t, "Çay", source.Items[0].ProductName)
	assert.Equal(t, 2, source.Items[0].Quantity)
	assert.Equal(t, int64(3000), source.Items[0].LineTotal)
}

func TestCommitForPaymentEmptyCartIsNoOp(t *testing.T) {
	svc, store, cafeID, userID, products := cartFixture(t)
	teaID := seedProduct(products, cafeID, "Çay", 1500, true)

	// An earlier handoff sits in the slot
	committed, err := svc.CommitForPayment(context.Background(), cafeID, userID, &CommitInput{
		Label: "MASA 1",
		Items: []CartLineInput{{ProductID: teaID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.True(t, committed)

	// Committing an empty cart neither errors nor overwrites it
	committed, err = svc.CommitForPayment(context.Background(), cafeID, userID, &CommitInput{
		Label: "MASA 2",
		Items: nil,
	})
	require.NoError(t, err)
	assert.False(t, committed)

	source, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "MASA 1", source.Label)
}

func TestCommitForPaymentDropsNonPositiveQuantities(t *testing.T) {
	svc, store, cafeID, userID, products := cartFixture(t)
	teaID := seedProduct(products, cafeID, "Çay", 1500, true)

	committed, err := svc.CommitForPayment(context.Background(), cafeID, userID, &CommitInput{
		Items: []CartLineInput{{ProductID: teaID, Quantity: 0}},
	})
	require.NoError(t, err)
	assert.False(t, committed)

	_, err = store.Load(context.Background(), userID)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestCommitForPaymentUnknownProduct(t *testing.T) {
	svc, _, cafeID, userID, _ := cartFixture(t)

	_, err := svc.CommitForPayment(context.Background(), cafeID, userID, &CommitInput{
		Items: []CartLineInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCommitForPaymentUnavailableProduct(t *testing.T) {
	svc, store, cafeID, userID, products := cartFixture(t)
	soupID := seedProduct(products, cafeID, "Mercimek", 5000, false)

	_, err := svc.CommitForPayment(context.Background(), cafeID, userID, &CommitInput{
		Items: []CartLineInput{{ProductID: soupID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = store.Load(context.Background(), userID)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestCommitForPaymentCrossCafeProductHidden(t *testing.T) {
	svc, _, cafeID, userID, products := cartFixture(t)
	otherCafe := uuid.New()
	foreignID := seedProduct(products, otherCafe, "Çay", 1500, true)

	_, err := svc.CommitForPayment(context.Background(), cafeID, userID, &CommitInput{
		Items: []CartLineInput{{ProductID: foreignID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
