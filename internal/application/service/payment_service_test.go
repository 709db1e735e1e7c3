package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/payment"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/internal/infrastructure/snapshot"
	"github.com/cafepos/cafepos-api/pkg/apperror"
)

// --- fakes ---

type fakeCafeRepo struct {
	cafe *entity.Cafe
}

func (f *fakeCafeRepo) Create(ctx context.Context, cafe *entity.Cafe) error { return nil }
func (f *fakeCafeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	if f.cafe != nil && f.cafe.ID == id {
		return f.cafe, nil
	}
	return nil, nil
}
func (f *fakeCafeRepo) GetBySlug(ctx context.Context, slug string) (*entity.Cafe, error) {
	return nil, nil
}
func (f *fakeCafeRepo) Update(ctx context.Context, cafe *entity.Cafe) error { return nil }

type fakeOrderRepo struct {
	created *entity.Order
	items   []entity.OrderItem
	tenders []entity.OrderTender
}

func (f *fakeOrderRepo) CreateWithDetails(ctx context.Context, order *entity.Order, items []entity.OrderItem, tenders []entity.OrderTender) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.created = order
	f.items = items
	f.tenders = tenders
	return nil
}
func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.created != nil && f.created.ID == id {
		return f.created, nil
	}
	return nil, nil
}
func (f *fakeOrderRepo) List(ctx context.Context, cafeID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}

var _ repository.CafeRepository = (*fakeCafeRepo)(nil)
var _ repository.OrderRepository = (*fakeOrderRepo)(nil)
var _ repository.SnapshotStore = (*snapshot.MemoryStore)(nil)

// --- helpers ---

func testCafe() *entity.Cafe {
	return &entity.Cafe{
		ID:   uuid.New(),
		Name: "Test Cafe",
		Settings: entity.CafeSettings{
			DecimalSeparator: ",",
		},
	}
}

func testSource(totalCents int64) payment.Source {
	return payment.Source{
		Label: "MASA 3",
		Items: []payment.SourceLine{
			{ID: 1, ProductName: "Çay", Quantity: 2, UnitPrice: totalCents / 4, LineTotal: totalCents / 2},
			{ID: 2, ProductName: "Tost", Quantity: 1, UnitPrice: totalCents / 2, LineTotal: totalCents / 2},
		},
		Total: totalCents,
	}
}

type paymentFixture struct {
	svc    *PaymentService
	store  *snapshot.MemoryStore
	orders *fakeOrderRepo
	cafe   *entity.Cafe
	userID uuid.UUID
}

func newPaymentFixture(t *testing.T, withFallback bool) *paymentFixture {
	t.Helper()

	cafe := testCafe()
	store := snapshot.NewMemoryStore()
	orders := &fakeOrderRepo{}

	var fallback repository.FallbackSource
	if withFallback {
		fallback = snapshot.NewSampleFallback()
	}

	return &paymentFixture{
		svc:    NewPaymentService(store, fallback, orders, &fakeCafeRepo{cafe: cafe}, nil),
		store:  store,
		orders: orders,
		cafe:   cafe,
		userID: uuid.New(),
	}
}

func (f *paymentFixture) start(t *testing.T, source payment.Source) *SessionView {
	t.Helper()
	require.NoError(t, f.store.Save(context.Background(), f.userID, &source))
	view, err := f.svc.StartSession(context.Background(), f.userID, f.cafe.ID)
	require.NoError(t, err)
	return view
}

func (f *paymentFixture) typeDigits(t *testing.T, digits string) {
	t.Helper()
	for _, r := range digits {
		_, err := f.svc.PressKey(f.userID, string(r))
		require.NoError(t, err)
	}
}

func (f *paymentFixture) selectTender(t *testing.T, name string) {
	t.Helper()
	_, err := f.svc.Select(f.userID, &SelectInput{Tender: &name})
	require.NoError(t, err)
}

// --- tests ---

func TestFullPaymentInTwoTenders(t *testing.T) {
	f := newPaymentFixture(t, false)
	f.start(t, testSource(10000)) // 100,00

	f.selectTender(t, "cash")
	f.typeDigits(t, "60")
	view, err := f.svc.AddTender(f.userID)
	require.NoError(t, err)
	assert.Equal(t, "60", view.Paid)
	assert.Equal(t, "40", view.Remaining)
	assert.Equal(t, "0", view.Buffer)
	assert.Empty(t, view.Selection)
	assert.False(t, view.CanComplete)

	f.selectTender(t, "card")
	f.typeDigits(t, "40")
	view, err = f.svc.AddTender(f.userID)
	require.NoError(t, err)
	assert.Equal(t, "0", view.Remaining)
	assert.True(t, view.CanComplete)

	order, err := f.svc.Complete(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), order.Total)
	assert.Equal(t, int64(10000), order.Paid)
	assert.Equal(t, "MASA 3", order.SourceLabel)
	require.Len(t, f.orders.tenders, 2)
	assert.Equal(t, "Nakit", f.orders.tenders[0].Label)
	assert.Equal(t, "Kart", f.orders.tenders[1].Label)

	// slot cleared, session dropped
	_, err = f.store.Load(context.Background(), f.userID)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	_, err = f.svc.GetSession(f.userID)
	assert.Error(t, err)
}

func TestPartialPaymentBlocksCompletion(t *testing.T) {
	f := newPaymentFixture(t, false)
	f.start(t, testSource(10000))

	f.selectTender(t, "cash")
	f.typeDigits(t, "30")
	_, err := f.svc.AddTender(f.userID)
	require.NoError(t, err)

	_, err = f.svc.Complete(context.Background(), f.userID)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, appErr.Message, "70")

	// nothing persisted, slot untouched, session still live
	assert.Nil(t, f.orders.created)
	_, err = f.store.Load(context.Background(), f.userID)
	assert.NoError(t, err)
	view, err := f.svc.GetSession(f.userID)
	require.NoError(t, err)
	assert.Equal(t, "70", view.Remaining)
}

func TestOverpaymentRejected(t *testing.T) {
	f := newPaymentFixture(t, false)
	f.start(t, testSource(10000))

	f.selectTender(t, "cash")
	f.typeDigits(t, "150")
	_, err := f.svc.AddTender(f.userID)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	// ledger untouched
	view, err := f.svc.GetSession(f.userID)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)
	assert.Equal(t, "100", view.Remaining)
}

func TestAddTenderWithoutSelection(t *testing.T) {
	f := newPaymentFixture(t, false)
	f.start(t, testSource(5000))

	f.typeDigits(t, "50")
	_, err := f.svc.AddTender(f.userID)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestDiscountPercentAgainstRemaining(t *testing.T) {
	f := newPaymentFixture(t, false)
	f.start(t, testSource(20000)) // 200,00

	f.selectTender(t, "cash")
	f.typeDigits(t, "100")
	_, err := f.svc.AddTender(f.userID)
	require.NoError(t, err)

	mode := "percent"
	_, err = f.svc.Select(f.userID, &SelectInput{Discount: &mode})
	require.NoError(t, err)
	f.typeDigits(t, "10") // 10% of remaining 100,00 = 10,00
	view, err := f.svc.AddTender(f.userID)
	require.NoError(t, err)
	assert.Equal(t, "90", view.Remaining)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, "10", view.Entries[1].Amount)
}

func TestDiscountRecordedOnOrder(t *testing.T) {
	f := newPaymentFixture(t, false)
	f.start(t, testSource(10000))

	mode := "amount"
	_, err := f.svc.Select(f.userID, &SelectInput{Discount: &mode})
	require.NoError(t, err)
	f.typeDigits(t, "20")
	_, err = f.svc.AddTender(f.userID)
	require.NoError(t, err)

	f.selectTender(t, "cash")
	f.typeDigits(t, "80")
	_, err = f.svc.AddTender(f.userID)
	require.NoError(t, err)

	_, err = f.svc.Complete(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, f.orders.tenders, 2)
	assert.True(t, f.orders.tenders[0].IsDiscount)
	assert.False(t, f.orders.tenders[1].IsDiscount)
}

func TestClickLineOverflowLeavesBuffer(t *testing.T) {
	source := payment.Source{
		Label: "MASA 1",
		Items: []payment.SourceLine{
			{ID: 1, ProductName: "Latte", Quantity: 1, UnitPrice: 1500, LineTotal: 1500},
		},
		Total: 1500,
	}
	f := newPaymentFixture(t, false)
	f.start(t, source)

	// pay down to a remaining smaller than the unit price
	f.selectTender(t, "cash")
	f.typeDigits(t, "5")
	_, err := f.svc.AddTender(f.userID)
	require.NoError(t, err)

	_, err = f.svc.ClickLine(f.userID, 1)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	view, err := f.svc.GetSession(f.userID)
	require.NoError(t, err)
	assert.Equal(t, "0", view.Buffer)
}

func TestClickLineBoundedByQuantity(t *testing.T) {
	source := payment.Source{
		Label: "MASA 1",
		Items: []payment.SourceLine{
			{ID: 1, ProductName: "Çay", Quantity: 2, UnitPrice: 500, LineTotal: 1000},
		},
		Total: 1000,
	}
	f := newPaymentFixture(t, false)
	f.start(t, source)

	for i := 0; i < 2; i++ {
		_, err := f.svc.ClickLine(f.userID, 1)
		require.NoError(t, err)
	}
	view, err := f.svc.GetSession(f.userID)
	require.NoError(t, err)
	assert.Equal(t, "10", view.Buffer)

	_, err = f.svc.ClickLine(f.userID, 1)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestStartSessionFallsBackOnEmptySlot(t *testing.T) {
	f := newPaymentFixture(t, true)

	view, err := f.svc.StartSession(context.Background(), f.userID, f.cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, "MASA 12", view.Label)
	assert.NotEmpty(t, view.Items)
}

func TestStartSessionFallsBackOnCorruptSlot(t *testing.T) {
	f := newPaymentFixture(t, true)
	source := testSource(10000)
	require.NoError(t, f.store.Save(context.Background(), f.userID, &source))
	f.store.Corrupt(f.userID)

	view, err := f.svc.StartSession(context.Background(), f.userID, f.cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, "MASA 12", view.Label)
}

func TestStartSessionWithoutFallbackErrors(t *testing.T) {
	f := newPaymentFixture(t, false)

	_, err := f.svc.StartSession(context.Background(), f.userID, f.cafe.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUndoRequiresConfirmation(t *testing.T) {
	f := newPaymentFixture(t, false)
	f.start(t, testSource(10000))

	f.selectTender(t, "cash")
	f.typeDigits(t, "40")
	_, err := f.svc.AddTender(f.userID)
	require.NoError(t, err)

	view, err := f.svc.UndoLast(f.userID, false)
	require.NoError(t, err)
	assert.Len(t, view.Entries, 1)

	view, err = f.svc.UndoLast(f.userID, true)
	require.NoError(t, err)
	assert.Empty(t, view.Entries)
	assert.Equal(t, "100", view.Remaining)
}

// blockingOrderRepo stalls persistence until released, standing in for a
// slow database during completion.
type blockingOrderRepo struct {
	fakeOrderRepo
	entered chan struct{}
	release chan struct{}
}

func (b *blockingOrderRepo) CreateWithDetails(ctx context.Context, order *entity.Order, items []entity.OrderItem, tenders []entity.OrderTender) error {
	close(b.entered)
	<-b.release
	return b.fakeOrderRepo.CreateWithDetails(ctx, order, items, tenders)
}

func TestCompleteDoesNotBlockOtherSessions(t *testing.T) {
	cafe := testCafe()
	store := snapshot.NewMemoryStore()
	orders := &blockingOrderRepo{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewPaymentService(store, nil, orders, &fakeCafeRepo{cafe: cafe}, nil)

	payer := uuid.New()
	other := uuid.New()

	source := testSource(10000)
	require.NoError(t, store.Save(context.Background(), payer, &source))
	otherSource := testSource(5000)
	require.NoError(t, store.Save(context.Background(), other, &otherSource))

	_, err := svc.StartSession(context.Background(), payer, cafe.ID)
	require.NoError(t, err)
	_, err = svc.StartSession(context.Background(), other, cafe.ID)
	require.NoError(t, err)

	cash := "cash"
	_, err = svc.Select(payer, &SelectInput{Tender: &cash})
	require.NoError(t, err)
	for _, r := range "100" {
		_, err = svc.PressKey(payer, string(r))
		require.NoError(t, err)
	}
	_, err = svc.AddTender(payer)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Complete(context.Background(), payer)
		done <- err
	}()

	select {
	case <-orders.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("completion never reached the order repository")
	}

	// Persistence is stalled; the other user's keypad must still respond
	keyed := make(chan error, 1)
	go func() {
		_, err := svc.PressKey(other, "5")
		keyed <- err
	}()
	select {
	case err := <-keyed:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("keypad stalled behind an in-flight completion")
	}

	close(orders.release)
	require.NoError(t, <-done)
	assert.NotNil(t, orders.created)
}

func TestDuplicateCompleteRejectedWhileInFlight(t *testing.T) {
	cafe := testCafe()
	store := snapshot.NewMemoryStore()
	orders := &blockingOrderRepo{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewPaymentService(store, nil, orders, &fakeCafeRepo{cafe: cafe}, nil)

	userID := uuid.New()
	source := testSource(10000)
	require.NoError(t, store.Save(context.Background(), userID, &source))
	_, err := svc.StartSession(context.Background(), userID, cafe.ID)
	require.NoError(t, err)

	cash := "cash"
	_, err = svc.Select(userID, &SelectInput{Tender: &cash})
	require.NoError(t, err)
	for _, r := range "100" {
		_, err = svc.PressKey(userID, string(r))
		require.NoError(t, err)
	}
	_, err = svc.AddTender(userID)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Complete(context.Background(), userID)
		done <- err
	}()

	select {
	case <-orders.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("completion never reached the order repository")
	}

	// The double-tap lands while the first completion is persisting
	_, err = svc.Complete(context.Background(), userID)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	close(orders.release)
	require.NoError(t, <-done)

	// The session is gone once the first completion settles
	_, err = svc.GetSession(userID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
