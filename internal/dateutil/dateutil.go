package dateutil

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical day key format. Every map of per-day data in the
// planner is keyed by this layout, always derived from local time so that two
// times on the same calendar day map to the same key.
const KeyLayout = "2006-01-02"

// DateKey formats t as the canonical zero-padded YYYY-MM-DD key in local time.
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseDateKey parses a canonical day key back into local midnight of that day.
// The round trip DateKey(ParseDateKey(k)) == k holds for every valid key.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil: parse day key %q: %w", key, err)
	}
	return t, nil
}

// HumanLabel renders a long display label for t, e.g. "Monday, Jan 2, 2006".
// Display only; never used as a map key.
func HumanLabel(t time.Time) string {
	return t.Format("Monday, Jan 2, 2006")
}

// ShortLabel renders a compact weekday+date label for list headers, e.g. "Mon, Jan 2".
func ShortLabel(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// MonthLabel renders the month cursor header, e.g. "January 2006".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}
