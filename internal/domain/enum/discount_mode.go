package enum

import (
	"encoding/json"
	"fmt"
)

// DiscountMode distinguishes a fixed-amount discount from a percentage one
type DiscountMode int

const (
	DiscountAmount DiscountMode = iota
	DiscountPercent
)

var discountModeNames = [...]string{"amount", "percent"}

func (m DiscountMode) IsValid() bool {
	return m == DiscountAmount || m == DiscountPercent
}

func (m DiscountMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("DiscountMode(%d)", int(m))
	}
	return discountModeNames[m]
}

// ParseDiscountMode converts a wire name into a DiscountMode
func ParseDiscountMode(s string) (DiscountMode, error) {
	for i, name := range discountModeNames {
		if name == s {
			return DiscountMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown discount mode %q", s)
}

func (m DiscountMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *DiscountMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = DiscountMode(i)
		return nil
	}
	parsed, err := ParseDiscountMode(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
