package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidateRequiredString validates required string fields
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateUUID validates and parses an entity identifier from a path param.
func ValidateUUID(idStr string, fieldName string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", fieldName)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is not a valid id", fieldName)
	}
	return id, nil
}

// ParseDate parses date strings accepted on booking payloads. Full RFC3339
// timestamps and bare YYYY-MM-DD dates are both allowed.
func ParseDate(value, fieldName string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", fieldName)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD or RFC3339", fieldName)
	}
	return t, nil
}

// DayWindow returns the local-day bounds [00:00:00, 23:59:59.999999999]
// around ref, used for the dashboard's "today" counters.
func DayWindow(ref time.Time) (time.Time, time.Time) {
	year, month, day := ref.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
