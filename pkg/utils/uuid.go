package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateOrderNo generates a unique order number, e.g. "ORD-3F9A21BC"
func GenerateOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
