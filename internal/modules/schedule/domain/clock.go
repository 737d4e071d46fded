package domain

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformedClock is returned for tokens that are neither HH:MM nor Online.
var ErrMalformedClock = errors.New("malformed clock token")

// UnscheduledSortKey orders Online and unparsable starts after every real time.
const UnscheduledSortKey = 99999

// ParseClock converts an "HH:MM" token into minutes since midnight.
// Empty and Online tokens report ok=false without an error.
func ParseClock(token string) (minutes int, ok bool, err error) {
	if token == "" || token == OnlineToken {
		return 0, false, nil
	}
	hh, mm, found := strings.Cut(token, ":")
	if !found {
		return 0, false, ErrMalformedClock
	}
	if i := strings.IndexByte(mm, ':'); i >= 0 {
		mm = mm[:i]
	}
	h, err := clockPart(hh)
	if err != nil {
		return 0, false, ErrMalformedClock
	}
	m, err := clockPart(mm)
	if err != nil {
		return 0, false, ErrMalformedClock
	}
	return h*60 + m, true, nil
}

func clockPart(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// SortKey is the start-time ordering key used by every agenda.
func SortKey(token string) int {
	minutes, ok, _ := ParseClock(token)
	if !ok {
		return UnscheduledSortKey
	}
	return minutes
}

// Span is a session's [start, end) interval in minutes. Valid is false when
// either endpoint is Online, empty or malformed.
type Span struct {
	Start int
	End   int
	Valid bool
}

func SpanOf(start, end string) Span {
	s, okS, _ := ParseClock(start)
	e, okE, _ := ParseClock(end)
	if !okS || !okE {
		return Span{}
	}
	return Span{Start: s, End: e, Valid: true}
}

// Overlaps is a half-open interval test: back-to-back spans do not overlap and
// an invalid span overlaps nothing.
func Overlaps(a, b Span) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	return max(a.Start, b.Start) < min(a.End, b.End)
}

func (s Session) Span() Span {
	return SpanOf(s.Start, s.End)
}
