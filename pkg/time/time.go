package time

import (
	"time"
)

// FormatCreatedAt is the reservation timestamp layout persisted in the store
const FormatCreatedAt = time.RFC3339

// NowCreatedAt returns the current instant in UTC in the store layout
func NowCreatedAt() string {
	return time.Now().UTC().Format(FormatCreatedAt)
}
