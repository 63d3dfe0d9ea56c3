package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayDate(t *testing.T) {
	ts := time.Date(2023, time.April, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "10/04/2023", FormatDisplayDate(ts))
}

func TestParseDisplayDate(t *testing.T) {
	parsed, err := ParseDisplayDate("30/05/2023")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.May, 30, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDisplayDate("2023-05-30")
	assert.Error(t, err)
}

func TestIsDateStrictlyAfter(t *testing.T) {
	ref := time.Date(2023, time.May, 15, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsDateStrictlyAfter("16/05/2023", ref))
	assert.False(t, IsDateStrictlyAfter("15/05/2023", ref), "same day is not after")
	assert.False(t, IsDateStrictlyAfter("14/05/2023", ref))
	assert.False(t, IsDateStrictlyAfter("not-a-date", ref))
}
