package dto

import (
	"fmt"
	"time"
)

// ParseDate accepts either a plain calendar date or a full RFC3339
// timestamp, the two shapes the UI sends. An empty string means no date.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q", s)
}
