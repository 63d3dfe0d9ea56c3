package utils

import (
	"fmt"
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
)

// FormatDisplayDate renders a time in the client's DD/MM/YYYY wire format.
func FormatDisplayDate(t time.Time) string {
	return t.Format(domain.DisplayDateLayout)
}

// ParseDisplayDate parses a DD/MM/YYYY date string.
func ParseDisplayDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DisplayDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY: %w", s, err)
	}
	return t, nil
}

// IsDateStrictlyAfter reports whether the DD/MM/YYYY date s falls on a
// later calendar day than ref. A malformed date is never after anything.
func IsDateStrictlyAfter(s string, ref time.Time) bool {
	t, err := ParseDisplayDate(s)
	if err != nil {
		return false
	}
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return t.After(refDay)
}
