package payment

import (
	"errors"
	"fmt"
	"math"

	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/pkg/money"
)

var (
	// ErrNoSelection is returned when a tender commit is attempted with
	// nothing selected
	ErrNoSelection = errors.New("no tender type or discount mode selected")
	// ErrInvalidTenderAmount is returned when the keypad amount is zero,
	// negative or unparseable at commit time
	ErrInvalidTenderAmount = errors.New("tender amount must be greater than zero")
	// ErrLineQuantityExceeded is returned when a catalog line is clicked more
	// times than its quantity
	ErrLineQuantityExceeded = errors.New("line clicked more times than its quantity")
	// ErrUnknownLine is returned for a click on a line not in the source order
	ErrUnknownLine = errors.New("line not found in order")
)

// OverpaymentError rejects an entry that would push the paid total past the
// order total. Remaining is the balance at the moment of rejection.
type OverpaymentError struct {
	Remaining int64
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("amount exceeds remaining balance of %s", money.Format(e.Remaining))
}

// IncompleteError rejects completion while a balance remains
type IncompleteError struct {
	Remaining int64
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("remaining balance %s must be settled before completion", money.Format(e.Remaining))
}

// SourceLine is one line of the order under payment, as loaded from the
// handoff snapshot
type SourceLine struct {
	ID          int64  `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"` // cents
	LineTotal   int64  `json:"line_total"` // cents
}

// Source is the immutable order a payment session settles against. Label is
// the screen heading ("Hızlı Satış" or a table name).
type Source struct {
	Label string       `json:"label"`
	Items []SourceLine `json:"items"`
	Total int64        `json:"total"` // cents, declared by the handoff
}

// Entry is one committed row of the payment ledger: a tender of some type, or
// an applied discount
type Entry struct {
	Selection Selection
	Label     string
	Amount    int64 // cents
}

// Session drives one payment screen: the source order, the ledger of applied
// tenders, the keypad, and the selection register. It has exactly one writer
// (the cashier's input) and is not safe for concurrent use; callers serialize.
type Session struct {
	source     Source
	entries    []Entry
	keypad     *Keypad
	selection  Selection
	lineClicks map[int64]int
}

// NewSession starts a payment session over the given source order
func NewSession(source Source, separator string) *Session {
	return &Session{
		source:     source,
		keypad:     NewKeypad(separator),
		lineClicks: make(map[int64]int),
	}
}

// Source returns the order under payment
func (s *Session) Source() Source {
	return s.source
}

// Keypad exposes the input buffer
func (s *Session) Keypad() *Keypad {
	return s.keypad
}

// Select overwrites the selection register. Selecting a tender clears any
// pending discount mode and vice versa; NoSelection clears both.
func (s *Session) Select(sel Selection) {
	s.selection = sel
}

// Selection returns the current register contents
func (s *Session) Selection() Selection {
	return s.selection
}

// Entries returns the applied ledger rows in commit order
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// PaidAmount is the sum of all applied entries
func (s *Session) PaidAmount() int64 {
	var paid int64
	for i := range s.entries {
		paid += s.entries[i].Amount
	}
	return paid
}

// RemainingAmount is the source total minus the paid amount
func (s *Session) RemainingAmount() int64 {
	return s.source.Total - s.PaidAmount()
}

// AddTender commits the keypad amount against the current selection. The
// operation is atomic: on any rejection the ledger, keypad and selection are
// all left untouched. On success the entry is appended, the keypad resets to
// zero and the selection clears so the next tender must be re-selected.
func (s *Session) AddTender() (Entry, error) {
	if s.selection.IsNone() {
		return Entry{}, ErrNoSelection
	}

	amount, err := s.keypad.Amount()
	if err != nil || amount <= 0 {
		return Entry{}, ErrInvalidTenderAmount
	}

	if mode, ok := s.selection.Discount(); ok && mode == enum.DiscountPercent {
		// the keypad holds a percentage; convert against the open balance
		amount = int64(math.Round(float64(s.RemainingAmount()) * float64(amount) / 10000))
		if amount <= 0 {
			return Entry{}, ErrInvalidTenderAmount
		}
	}

	if remaining := s.RemainingAmount(); amount > remaining {
		return Entry{}, &OverpaymentError{Remaining: remaining}
	}

	entry := Entry{
		Selection: s.selection,
		Label:     s.selection.Label(),
		Amount:    amount,
	}
	s.entries = append(s.entries, entry)
	s.keypad.Clear()
	s.selection = NoSelection()
	return entry, nil
}

// RemoveTender removes the ledger row at index. Any index is removable, not
// just the most recent.
func (s *Session) RemoveTender(index int) (Entry, error) {
	if index < 0 || index >= len(s.entries) {
		return Entry{}, fmt.Errorf("no payment at index %d", index)
	}
	entry := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return entry, nil
}

// UndoLast removes the most recent ledger row, gated behind an explicit
// confirmation from the caller. Returns false on an empty ledger or when
// unconfirmed.
func (s *Session) UndoLast(confirmed bool) (Entry, bool) {
	if !confirmed || len(s.entries) == 0 {
		return Entry{}, false
	}
	entry, _ := s.RemoveTender(len(s.entries) - 1)
	return entry, true
}

// ClickLine adds the clicked line's unit price into the keypad value, the
// payment-screen shortcut for "this item is being paid now". The click is
// rejected once the per-line count reaches the line's quantity, or when the
// resulting value would pass the remaining balance; in both cases the buffer
// is left untouched.
func (s *Session) ClickLine(lineID int64) error {
	var line *SourceLine
	for i := range s.source.Items {
		if s.source.Items[i].ID == lineID {
			line = &s.source.Items[i]
			break
		}
	}
	if line == nil {
		return ErrUnknownLine
	}

	if s.lineClicks[lineID] >= line.Quantity {
		return ErrLineQuantityExceeded
	}

	current, err := s.keypad.Amount()
	if err != nil {
		current = 0
	}
	next := current + line.UnitPrice
	if remaining := s.RemainingAmount(); next > remaining {
		return &OverpaymentError{Remaining: remaining}
	}

	s.lineClicks[lineID]++
	s.keypad.SetAmount(next)
	return nil
}

// CanComplete reports whether the balance is settled
func (s *Session) CanComplete() bool {
	return s.RemainingAmount() <= 0
}

// CompleteGuard returns nil when completion may proceed, or an
// IncompleteError carrying the open balance
func (s *Session) CompleteGuard() error {
	if remaining := s.RemainingAmount(); remaining > 0 {
		return &IncompleteError{Remaining: remaining}
	}
	return nil
}
