// Package datekey defines the canonical key identifying a calendar day.
package datekey

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO = "2006-01-02"
	// layoutLegacy matches unpadded keys written by older clients,
	// e.g. "2025-6-15". Accepted on read, never written.
	layoutLegacy = "2006-1-2"
)

// Key identifies a calendar day as "YYYY-MM-DD". Keys sort chronologically.
type Key string

// Format returns the key for the day containing t.
func Format(t time.Time) Key {
	return Key(t.Format(layoutISO))
}

// New builds a key from its parts. Out-of-range days normalize the way
// time.Date does (day 0 of March is the last day of February).
func New(year int, month time.Month, day int) Key {
	return Format(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the key for the current local day.
func Today() Key {
	return Format(time.Now())
}

// Parse reads a key in canonical form. Legacy unpadded keys are upgraded to
// the canonical form so documents written by older clients keep working.
func Parse(raw string) (Key, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(layoutISO, raw); err == nil {
		return Format(t), nil
	}
	t, err := time.Parse(layoutLegacy, raw)
	if err != nil {
		return "", fmt.Errorf("datekey: invalid day key %q: %w", raw, err)
	}
	return Format(t), nil
}

// Time returns midnight UTC of the keyed day, or the zero time for a
// malformed key.
func (k Key) Time() time.Time {
	t, err := time.Parse(layoutISO, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k Key) String() string {
	return string(k)
}
