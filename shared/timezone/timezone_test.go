package timezone_test

import (
	"resort/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	loc := timezone.Location()
	require.NotNil(t, loc)
	assert.Equal(t, loc, timezone.Now().Location())
}

func TestParseDate(t *testing.T) {
	day, err := timezone.ParseDate("2026-07-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.Location(), day.Location())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, "2026-07-01", timezone.Format(day, "2006-01-02"))

	_, err = timezone.ParseDate("01/07/2026")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	today := timezone.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.False(t, today.After(timezone.Now()))
}

func TestDaysBetween(t *testing.T) {
	checkIn, err := timezone.ParseDate("2026-07-01")
	require.NoError(t, err)
	checkOut, err := timezone.ParseDate("2026-07-04")
	require.NoError(t, err)

	assert.Equal(t, 3, timezone.DaysBetween(checkIn, checkOut))
	assert.Equal(t, 0, timezone.DaysBetween(checkIn, checkIn))
	assert.Equal(t, 3, timezone.DaysBetween(checkIn, checkOut.Add(5*time.Hour)))
}
