package model

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Status enumerates the availability of an artist on a calendar date.
// Dates with no ledger entry are implicitly StatusAvailable; absence is
// never treated as a third state.
type Status string

const (
	// StatusAvailable marks a date as bookable.  This is also the
	// default returned for dates with no explicit entry.
	StatusAvailable Status = "available"
	// StatusUnavailable marks a date as blocked for booking.
	StatusUnavailable Status = "unavailable"
)

// DefaultStatus is the status assumed for any date absent from the
// ledger map.
const DefaultStatus = StatusAvailable

// ErrInvalidStatus is returned by ParseStatus for unknown labels.
var ErrInvalidStatus = errors.New("invalid availability status")

// ErrInvalidDate is returned when a calendar date is not a valid
// ISO YYYY-MM-DD string.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// DateLayout is the calendar date format used as ledger keys.  Dates
// carry local calendar semantics and no timezone component.
const DateLayout = "2006-01-02"

// ParseStatus checks a status label against the enumeration.  Labels
// are case-sensitive, matching the stored lowercase values; only the
// two enumeration values are accepted.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusUnavailable:
		return StatusUnavailable, nil
	}
	return "", ErrInvalidStatus
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Ledger is one artist's per-date availability map, keyed by ISO date.
// At most one status per date; the last write wins.  The map is stored
// as a single JSON document in the artist_availability table and is
// always replaced wholesale under an optimistic version check.
type Ledger map[string]Status

// Status returns the entry for date, or DefaultStatus when no entry
// exists.
func (l Ledger) Status(date string) Status {
	if s, ok := l[date]; ok {
		return s
	}
	return DefaultStatus
}

// Entry is a single (date, status) pair from a ledger, used for
// schedule listings.
type Entry struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

// Entries returns the ledger's explicit entries sorted by date
// ascending.  ISO dates sort chronologically as plain strings.
func (l Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l))
	for d, s := range l {
		out = append(out, Entry{Date: d, Status: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
