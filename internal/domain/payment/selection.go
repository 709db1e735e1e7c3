package payment

import (
	"github.com/cafepos/cafepos-api/internal/domain/enum"
)

type selectionKind int

const (
	selectionNone selectionKind = iota
	selectionTender
	selectionDiscount
)

// Selection is the flat single-selection register on the payment screen: at
// any moment either nothing, one tender type, or one discount mode is active.
// There is one slot, and selecting anything overwrites whatever was there.
type Selection struct {
	kind     selectionKind
	tender   enum.TenderType
	discount enum.DiscountMode
}

// NoSelection is the empty register
func NoSelection() Selection {
	return Selection{}
}

// SelectTender returns a selection holding a tender type
func SelectTender(t enum.TenderType) Selection {
	return Selection{kind: selectionTender, tender: t}
}

// SelectDiscount returns a selection holding a discount mode
func SelectDiscount(m enum.DiscountMode) Selection {
	return Selection{kind: selectionDiscount, discount: m}
}

// IsNone reports whether nothing is selected
func (s Selection) IsNone() bool {
	return s.kind == selectionNone
}

// Tender returns the selected tender type, if one is selected
func (s Selection) Tender() (enum.TenderType, bool) {
	return s.tender, s.kind == selectionTender
}

// Discount returns the selected discount mode, if one is selected
func (s Selection) Discount() (enum.DiscountMode, bool) {
	return s.discount, s.kind == selectionDiscount
}

// Label returns the display name used on the ledger and receipts
func (s Selection) Label() string {
	switch s.kind {
	case selectionTender:
		return s.tender.DisplayName()
	case selectionDiscount:
		if s.discount == enum.DiscountPercent {
			return "İndirim %"
		}
		return "İndirim"
	}
	return ""
}
