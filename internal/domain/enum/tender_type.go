package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TenderType identifies how a single payment toward an order was made
type TenderType int

const (
	TenderCash TenderType = iota
	TenderCard
	TenderHouseAccount
	TenderNonPayable
	TenderVoucher
	TenderMealCard
)

var tenderTypeNames = [...]string{"cash", "card", "house-account", "non-payable", "voucher", "meal-card"}

// IsValid reports whether t is one of the known tender types
func (t TenderType) IsValid() bool {
	return t >= TenderCash && t <= TenderMealCard
}

func (t TenderType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("TenderType(%d)", int(t))
	}
	return tenderTypeNames[t]
}

// DisplayName returns the label shown on receipts and the payment screen
func (t TenderType) DisplayName() string {
	switch t {
	case TenderCash:
		return "Nakit"
	case TenderCard:
		return "Kart"
	case TenderHouseAccount:
		return "Cari"
	case TenderNonPayable:
		return "Ödenmez"
	case TenderVoucher:
		return "Ticket"
	case TenderMealCard:
		return "Yemek Kartı"
	}
	return t.String()
}

// ParseTenderType converts a wire name into a TenderType
func ParseTenderType(s string) (TenderType, error) {
	for i, name := range tenderTypeNames {
		if name == s {
			return TenderType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tender type %q", s)
}

func (t TenderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TenderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TenderType(i)
		return nil
	}
	parsed, err := ParseTenderType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TenderType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TenderType) Scan(value interface{}) error {
	if value == nil {
		*t = TenderCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TenderType(v)
	case int:
		*t = TenderType(v)
	}
	return nil
}
