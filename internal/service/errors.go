package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"swimtrack-be/pkg/utils"
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrImmutableField = errors.New("field cannot be changed")
)

func parseDate(field, raw string) (time.Time, error) {
	t, err := utils.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrInvalidDate, field, raw)
	}
	return t, nil
}

// parseOptionalDate maps "" to nil.
func parseOptionalDate(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := parseDate(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func checkDateOrder(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return fmt.Errorf("%w: end_date before start_date", ErrInvalidDate)
	}
	return nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// now is swapped in tests that depend on the calendar.
var now = time.Now

func ageOf(birth *time.Time) *int {
	if birth == nil {
		return nil
	}
	age := utils.AgeOn(*birth, now())
	return &age
}
