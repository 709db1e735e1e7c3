package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the lifecycle state of a persisted order
type OrderStatus int

const (
	OrderStatusActive OrderStatus = iota
	OrderStatusCompleted
	OrderStatusCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCompleted:
		return "completed"
	case OrderStatusCancelled:
		return "cancelled"
	}
	return "active"
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "active":
		*s = OrderStatusActive
	case "completed":
		*s = OrderStatusCompleted
	case "cancelled":
		*s = OrderStatusCancelled
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
