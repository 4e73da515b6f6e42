package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// withLocation pins the resort timezone for one test.
func withLocation(t *testing.T, loc *time.Location) {
	t.Helper()

	once.Do(func() {})

	previous := location
	location = loc

	t.Cleanup(func() { location = previous })
}

func TestStayDatesIgnoreNegativeOffset(t *testing.T) {
	withLocation(t, time.FixedZone("EST", -5*60*60))

	// lib/pq scans DATE columns as midnight UTC.
	checkIn := time.Date(2099, time.March, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2099, time.March, 13, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2099-03-10", FormatDate(checkIn))
	assert.Equal(t, "2099-03-13", FormatDate(checkOut))
	assert.Equal(t, 3, DaysBetween(checkIn, checkOut))

	local := Date(checkIn)
	assert.Equal(t, Location(), local.Location())
	assert.Equal(t, "2099-03-10", FormatDate(local))
	assert.Equal(t, "2099-03-10", Format(local, "2006-01-02"))
}

func TestStayDatesIgnorePositiveOffset(t *testing.T) {
	withLocation(t, time.FixedZone("WITA", 8*60*60))

	parsed, err := ParseDate("2099-03-10")
	assert.NoError(t, err)

	stored := time.Date(2099, time.March, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2099-03-10", FormatDate(parsed))
	assert.Equal(t, 2, DaysBetween(parsed, stored))
}
