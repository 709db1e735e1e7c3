package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/internal/domain/payment"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
	"github.com/cafepos/cafepos-api/pkg/money"
	"github.com/cafepos/cafepos-api/pkg/utils"
)

// PaymentService owns the live payment sessions, one per user. A session is
// created from the handoff slot when the payment screen opens and dropped
// when the payment completes or is abandoned.
type PaymentService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*liveSession

	snapshots  repository.SnapshotStore
	fallback   repository.FallbackSource // optional
	orderRepo  repository.OrderRepository
	cafeRepo   repository.CafeRepository
	printerSvc *PrinterService // optional, best-effort receipt on completion
}

type liveSession struct {
	sess   *payment.Session
	cafeID uuid.UUID
	// completing is set while persistence runs outside the service lock so
	// a racing duplicate Complete cannot settle the same session twice
	completing bool
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	snapshots repository.SnapshotStore,
	fallback repository.FallbackSource,
	orderRepo repository.OrderRepository,
	cafeRepo repository.CafeRepository,
	printerSvc *PrinterService,
) *PaymentService {
	return &PaymentService{
		sessions:   make(map[uuid.UUID]*liveSession),
		snapshots:  snapshots,
		fallback:   fallback,
		orderRepo:  orderRepo,
		cafeRepo:   cafeRepo,
		printerSvc: printerSvc,
	}
}

// SessionView is the payment screen's state, amounts pre-formatted
type SessionView struct {
	Label        string            `json:"label"`
	Items        []SessionItemView `json:"items"`
	Total        string            `json:"total"`
	Paid         string            `json:"paid"`
	Remaining    string            `json:"remaining"`
	Buffer       string            `json:"buffer"`
	Selection    string            `json:"selection,omitempty"`
	Entries      []SessionEntry    `json:"entries"`
	QuickAmounts []int             `json:"quick_amounts"`
	CanComplete  bool              `json:"can_complete"`
}

// SessionItemView is one order line on the payment screen
type SessionItemView struct {
	ID          int64  `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// SessionEntry is one committed row of the tender ledger
type SessionEntry struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

func viewOf(s *payment.Session) *SessionView {
	source := s.Source()
	view := &SessionView{
		Label:        source.Label,
		Total:        money.Format(source.Total),
		Paid:         money.Format(s.PaidAmount()),
		Remaining:    money.Format(s.RemainingAmount()),
		Buffer:       s.Keypad().Value(),
		Entries:      []SessionEntry{},
		QuickAmounts: payment.QuickAmounts,
		CanComplete:  s.CanComplete(),
	}
	if !s.Selection().IsNone() {
		view.Selection = s.Selection().Label()
	}
	for _, item := range source.Items {
		view.Items = append(view.Items, SessionItemView{
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   money.Format(item.UnitPrice),
			LineTotal:   money.Format(item.LineTotal),
		})
	}
	for _, e := range s.Entries() {
		view.Entries = append(view.Entries, SessionEntry{
			Label:  e.Label,
			Amount: money.Format(e.Amount),
		})
	}
	return view
}

// StartSession loads the user's handoff slot and opens a payment session,
// replacing any session the user already had. A missing or unreadable slot
// falls back to the injected sample order; without a fallback it is an error.
func (s *PaymentService) StartSession(ctx context.Context, userID, cafeID uuid.UUID) (*SessionView, error) {
	cafe, err := s.cafeRepo.GetByID(ctx, cafeID)
	if err != nil {
		return nil, err
	}
	if cafe == nil {
		return nil, apperror.NewNotFoundError("Cafe")
	}

	source, err := s.snapshots.Load(ctx, userID)
	if err != nil {
		if s.fallback == nil {
			if errors.Is(err, repository.ErrSnapshotNotFound) {
				return nil, apperror.NewNotFoundError("Payment handoff")
			}
			return nil, err
		}
		sample := s.fallback.SampleOrder()
		source = &sample
	}

	sess := payment.NewSession(*source, cafe.Settings.Separator())

	s.mu.Lock()
	s.sessions[userID] = &liveSession{sess: sess, cafeID: cafeID}
	s.mu.Unlock()

	return viewOf(sess), nil
}

// get returns the user's live session; the caller must hold s.mu
func (s *PaymentService) get(userID uuid.UUID) (*liveSession, error) {
	live, ok := s.sessions[userID]
	if !ok {
		return nil, apperror.NewNotFoundError("Payment session")
	}
	return live, nil
}

// GetSession returns the current session state
func (s *PaymentService) GetSession(userID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	return viewOf(live.sess), nil
}

// PressKey feeds one keypad key into the buffer
func (s *PaymentService) PressKey(userID uuid.UUID, key string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	live.sess.Keypad().Press(key)
	return viewOf(live.sess), nil
}

// PressPreset replaces the buffer with a quick amount
func (s *PaymentService) PressPreset(userID uuid.UUID, value int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	live.sess.Keypad().Preset(value)
	return viewOf(live.sess), nil
}

// SelectInput picks either a tender type or a discount mode
type SelectInput struct {
	Tender   *string
	Discount *string
}

// Select registers the pending tender or discount choice. Choosing one kind
// clears the other; selecting nothing clears both.
func (s *PaymentService) Select(userID uuid.UUID, input *SelectInput) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	switch {
	case input.Tender != nil:
		t, err := enum.ParseTenderType(*input.Tender)
		if err != nil {
			return nil, apperror.NewBadRequestError("Unknown tender type: " + *input.Tender)
		}
		live.sess.Select(payment.SelectTender(t))
	case input.Discount != nil:
		m, err := enum.ParseDiscountMode(*input.Discount)
		if err != nil {
			return nil, apperror.NewBadRequestError("Unknown discount mode: " + *input.Discount)
		}
		live.sess.Select(payment.SelectDiscount(m))
	default:
		live.sess.Select(payment.NoSelection())
	}

	return viewOf(live.sess), nil
}

// AddTender commits the keypad buffer against the current selection
func (s *PaymentService) AddTender(userID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	if _, err := live.sess.AddTender(); err != nil {
		return nil, mapSessionError(err)
	}
	return viewOf(live.sess), nil
}

// RemoveTender deletes one ledger row by position
func (s *PaymentService) RemoveTender(userID uuid.UUID, index int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	if _, err := live.sess.RemoveTender(index); err != nil {
		return nil, apperror.NewBadRequestError("No tender at that position")
	}
	return viewOf(live.sess), nil
}

// UndoLast removes the most recent ledger row once the cashier confirms
func (s *PaymentService) UndoLast(userID uuid.UUID, confirmed bool) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	live.sess.UndoLast(confirmed)
	return viewOf(live.sess), nil
}

// ClickLine adds one unit of an order line into the keypad buffer
func (s *PaymentService) ClickLine(userID uuid.UUID, lineID int64) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	if err := live.sess.ClickLine(lineID); err != nil {
		return nil, mapSessionError(err)
	}
	return viewOf(live.sess), nil
}

// Abandon drops the session without touching the handoff slot, so reopening
// the payment screen starts over from the same snapshot
func (s *PaymentService) Abandon(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Complete settles the session: the ledger must cover the total. On success
// the order is persisted with its tender breakdown, the handoff slot is
// cleared, a receipt is printed best-effort and the session is dropped.
func (s *PaymentService) Complete(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	// Capture the settled ledger under the lock, then persist and print
	// without it so a slow database or printer does not stall other users'
	// keypad and tender calls.
	s.mu.Lock()
	live, err := s.get(userID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if live.completing {
		s.mu.Unlock()
		return nil, apperror.NewUnprocessableError("Payment completion already in progress")
	}

	if err := live.sess.CompleteGuard(); err != nil {
		s.mu.Unlock()
		return nil, mapSessionError(err)
	}

	live.completing = true
	cafeID := live.cafeID
	source := live.sess.Source()
	paid := live.sess.PaidAmount()
	entries := live.sess.Entries()
	s.mu.Unlock()

	cafe, err := s.cafeRepo.GetByID(ctx, cafeID)
	if err != nil {
		s.abortCompletion(userID)
		return nil, err
	}

	invoiceNo := utils.GenerateOrderNo()
	if cafe != nil && cafe.Settings.InvoicePrefix != "" {
		invoiceNo = cafe.Settings.InvoicePrefix + "-" + invoiceNo[4:]
	}

	order := &entity.Order{
		CafeID:      cafeID,
		UserID:      userID,
		InvoiceNo:   invoiceNo,
		Status:      enum.OrderStatusCompleted,
		SourceLabel: source.Label,
		Total:       source.Total,
		Paid:        paid,
	}

	items := make([]entity.OrderItem, 0, len(source.Items))
	for _, line := range source.Items {
		items = append(items, entity.OrderItem{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}

	tenders := make([]entity.OrderTender, 0, len(entries))
	for _, e := range entries {
		row := entity.OrderTender{
			Label:  e.Label,
			Amount: e.Amount,
		}
		if t, ok := e.Selection.Tender(); ok {
			row.TenderType = t
		} else {
			row.IsDiscount = true
		}
		tenders = append(tenders, row)
	}

	if err := s.orderRepo.CreateWithDetails(ctx, order, items, tenders); err != nil {
		s.abortCompletion(userID)
		return nil, err
	}

	if err := s.snapshots.Clear(ctx, userID); err != nil {
		log.Printf("payment: failed to clear handoff slot for %s: %v", userID, err)
	}

	if s.printerSvc != nil {
		if _, err := s.printerSvc.PrintOrderReceipt(ctx, cafeID, order.ID); err != nil {
			log.Printf("payment: receipt print failed for order %s: %v", order.ID, err)
		}
	}

	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
	return order, nil
}

// abortCompletion reopens the session for another attempt after a failed
// persistence step
func (s *PaymentService) abortCompletion(userID uuid.UUID) {
	s.mu.Lock()
	if live, ok := s.sessions[userID]; ok {
		live.completing = false
	}
	s.mu.Unlock()
}

// mapSessionError translates domain rejections into transient 4xx notices
func mapSessionError(err error) error {
	var over *payment.OverpaymentError
	if errors.As(err, &over) {
		return apperror.NewUnprocessableError("Amount exceeds remaining balance of " + money.Format(over.Remaining))
	}

	var incomplete *payment.IncompleteError
	if errors.As(err, &incomplete) {
		return apperror.NewUnprocessableError("Payment incomplete: " + money.Format(incomplete.Remaining) + " remaining")
	}

	switch {
	case errors.Is(err, payment.ErrNoSelection):
		return apperror.NewUnprocessableError("Select a payment type or discount first")
	case errors.Is(err, payment.ErrInvalidTenderAmount):
		return apperror.NewUnprocessableError("Enter an amount first")
	case errors.Is(err, payment.ErrLineQuantityExceeded):
		return apperror.NewUnprocessableError("All units of this item are already counted")
	case errors.Is(err, payment.ErrUnknownLine):
		return apperror.NewNotFoundError("Order line")
	default:
		return err
	}
}
