package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TableStatus represents the occupancy state of a floor table
type TableStatus int

const (
	TableAvailable TableStatus = iota
	TableOccupied
	TableReserved
)

func (s TableStatus) String() string {
	switch s {
	case TableOccupied:
		return "occupied"
	case TableReserved:
		return "reserved"
	}
	return "available"
}

// ParseTableStatus converts a wire name into a TableStatus
func ParseTableStatus(s string) (TableStatus, error) {
	switch s {
	case "available":
		return TableAvailable, nil
	case "occupied":
		return TableOccupied, nil
	case "reserved":
		return TableReserved, nil
	}
	return TableAvailable, fmt.Errorf("unknown table status %q", s)
}

func (s TableStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TableStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TableStatus(i)
		return nil
	}
	switch str {
	case "available":
		*s = TableAvailable
	case "occupied":
		*s = TableOccupied
	case "reserved":
		*s = TableReserved
	}
	return nil
}

func (s TableStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TableStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TableAvailable
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TableStatus(v)
	case int:
		*s = TableStatus(v)
	}
	return nil
}
