package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/internal/domain/payment"
)

func sampleSource() payment.Source {
	return payment.Source{
		Label: "Hızlı Satış",
		Items: []payment.SourceLine{
			{ID: 1, ProductName: "Kinder Chocolate 4'lü 50gr", Quantity: 2, UnitPrice: 1550, LineTotal: 3100},
			{ID: 2, ProductName: "Ruffles Originals Super", Quantity: 1, UnitPrice: 1650, LineTotal: 1650},
			{ID: 3, ProductName: "Oreo Bisküvi 220gr", Quantity: 1, UnitPrice: 3600, LineTotal: 3600},
		},
		Total: 8350,
	}
}

func typeAmount(s *payment.Session, digits string) {
	s.Keypad().Press(payment.KeyClear)
	for _, r := range digits {
		s.Keypad().Press(string(r))
	}
}

func addTender(t *testing.T, s *payment.Session, kind enum.TenderType, digits string) payment.Entry {
	t.Helper()
	s.Select(payment.SelectTender(kind))
	typeAmount(s, digits)
	entry, err := s.AddTender()
	require.NoError(t, err)
	return entry
}

func TestAddTenderRejectsWithoutSelection(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	typeAmount(s, "20")

	_, err := s.AddTender()
	assert.ErrorIs(t, err, payment.ErrNoSelection)
	assert.Empty(t, s.Entries())
	// a rejected commit leaves the buffer alone
	assert.Equal(t, "20", s.Keypad().Value())
}

func TestAddTenderRejectsZeroAmount(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	s.Select(payment.SelectTender(enum.TenderCash))

	_, err := s.AddTender()
	assert.ErrorIs(t, err, payment.ErrInvalidTenderAmount)
	assert.Empty(t, s.Entries())
	// selection survives the rejection
	assert.False(t, s.Selection().IsNone())
}

func TestAddTenderCommitsAndResets(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	entry := addTender(t, s, enum.TenderCash, "20")

	assert.Equal(t, int64(2000), entry.Amount)
	assert.Equal(t, "Nakit", entry.Label)
	assert.Equal(t, int64(2000), s.PaidAmount())
	assert.Equal(t, int64(6350), s.RemainingAmount())
	assert.Equal(t, "0", s.Keypad().Value())
	assert.True(t, s.Selection().IsNone())
}

func TestAddTenderRejectsOverpayment(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	s.Select(payment.SelectTender(enum.TenderCard))
	typeAmount(s, "100")

	_, err := s.AddTender()
	var over *payment.OverpaymentError
	require.ErrorAs(t, err, &over)
	assert.Equal(t, int64(8350), over.Remaining)
	assert.Empty(t, s.Entries())
}

func TestLedgerAlgebra(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	addTender(t, s, enum.TenderCash, "30")
	addTender(t, s, enum.TenderCard, "25")
	addTender(t, s, enum.TenderVoucher, "10")
	assert.Equal(t, int64(6500), s.PaidAmount())

	// removing an arbitrary (non-last) entry is allowed
	removed, err := s.RemoveTender(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), removed.Amount)
	assert.Equal(t, int64(4000), s.PaidAmount())
	assert.Equal(t, int64(4350), s.RemainingAmount())

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Nakit", entries[0].Label)
	assert.Equal(t, "Ticket", entries[1].Label)

	_, err = s.RemoveTender(5)
	assert.Error(t, err)
}

func TestUndoLast(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	addTender(t, s, enum.TenderCash, "30")
	before := s.PaidAmount()

	// unconfirmed undo is a no-op
	_, ok := s.UndoLast(false)
	assert.False(t, ok)
	assert.Equal(t, before, s.PaidAmount())

	entry, ok := s.UndoLast(true)
	assert.True(t, ok)
	assert.Equal(t, int64(3000), entry.Amount)
	assert.Zero(t, s.PaidAmount())

	// undo on an empty ledger is a no-op too
	_, ok = s.UndoLast(true)
	assert.False(t, ok)

	// re-adding the same tender restores the prior paid amount
	addTender(t, s, enum.TenderCash, "30")
	assert.Equal(t, before, s.PaidAmount())
}

func TestDiscountAmount(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	s.Select(payment.SelectDiscount(enum.DiscountAmount))
	typeAmount(s, "10")

	entry, err := s.AddTender()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), entry.Amount)
	assert.Equal(t, "İndirim", entry.Label)
	assert.Equal(t, int64(7350), s.RemainingAmount())
}

func TestDiscountPercent(t *testing.T) {
	s := payment.NewSession(payment.Source{Total: 10000}, ".")
	s.Select(payment.SelectDiscount(enum.DiscountPercent))
	typeAmount(s, "10")

	entry, err := s.AddTender()
	require.NoError(t, err)
	// 10% of the open 100,00 balance
	assert.Equal(t, int64(1000), entry.Amount)
	assert.Equal(t, int64(9000), s.RemainingAmount())

	// percent over 100 would overshoot the balance
	s.Select(payment.SelectDiscount(enum.DiscountPercent))
	typeAmount(s, "150")
	_, err = s.AddTender()
	var over *payment.OverpaymentError
	assert.ErrorAs(t, err, &over)
}

func TestFullPaymentScenario(t *testing.T) {
	s := payment.NewSession(payment.Source{Total: 10000}, ".")
	addTender(t, s, enum.TenderCash, "60")
	addTender(t, s, enum.TenderCard, "40")

	assert.Zero(t, s.RemainingAmount())
	assert.True(t, s.CanComplete())
	assert.NoError(t, s.CompleteGuard())
}

func TestPartialPaymentScenario(t *testing.T) {
	s := payment.NewSession(payment.Source{Total: 10000}, ".")
	addTender(t, s, enum.TenderCash, "30")

	err := s.CompleteGuard()
	var incomplete *payment.IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, int64(7000), incomplete.Remaining)

	// the rejected completion changed nothing
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3000), entries[0].Amount)
}

func TestClickLineAccumulates(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")

	require.NoError(t, s.ClickLine(1))
	assert.Equal(t, "15.50", s.Keypad().Value())

	require.NoError(t, s.ClickLine(1))
	assert.Equal(t, "31", s.Keypad().Value())

	// the line has quantity 2; a third click is rejected, buffer untouched
	err := s.ClickLine(1)
	assert.ErrorIs(t, err, payment.ErrLineQuantityExceeded)
	assert.Equal(t, "31", s.Keypad().Value())
}

func TestClickLineOverpaymentGuard(t *testing.T) {
	source := payment.Source{
		Items: []payment.SourceLine{
			{ID: 1, ProductName: "Oreo Bisküvi 220gr", Quantity: 1, UnitPrice: 1500, LineTotal: 1500},
		},
		Total: 1500,
	}
	s := payment.NewSession(source, ".")
	addTender(t, s, enum.TenderCash, "5")

	// remaining is 10,00; the 15,00 line cannot be clicked in
	err := s.ClickLine(1)
	var over *payment.OverpaymentError
	require.ErrorAs(t, err, &over)
	assert.Equal(t, int64(1000), over.Remaining)
	assert.Equal(t, "0", s.Keypad().Value())
}

func TestClickLineUnknown(t *testing.T) {
	s := payment.NewSession(sampleSource(), ".")
	assert.ErrorIs(t, s.ClickLine(99), payment.ErrUnknownLine)
}
