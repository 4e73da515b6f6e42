// Package timezone pins every stay date and metadata timestamp to the
// resort's configured location (APP_TIMEZONE, IANA name). The location is
// resolved on first use and falls back to UTC when it cannot be loaded.
package timezone

import (
	"resort/config"
	"resort/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	once     sync.Once
	location = time.UTC
)

func resolve() {
	name := config.Get().App.Timezone
	if name == constant.Empty {
		log.Warn().Msg("APP_TIMEZONE not set, stay dates use UTC")
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, stay dates use UTC")
		return
	}

	location = loc
	log.Debug().Str("timezone", loc.String()).Msg("resort timezone loaded")
}

// Location returns the resort timezone.
func Location() *time.Location {
	once.Do(resolve)
	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today is midnight of the current resort day.
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay truncates t to midnight in the resort timezone.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.In(Location()).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, Location())
}

// ParseDate reads a YYYY-MM-DD stay date as resort local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateOnlyFormat, value, Location())
}

// Format renders t in the resort timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// Date rebuilds a stay date at resort midnight from t's own calendar
// fields. Postgres DATE values scan as UTC midnight and must not be
// shifted into the resort timezone.
func Date(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, Location())
}

// FormatDate renders a stay date as YYYY-MM-DD without zone conversion.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateOnlyFormat)
}

// DaysBetween counts calendar days from one stay date to another, so a
// DST shift inside the range does not lose a night.
func DaysBetween(from, to time.Time) int {
	ay, am, ad := from.Date()
	by, bm, bd := to.Date()
	days := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC).Sub(time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC))
	return int(days.Hours() / 24)
}
