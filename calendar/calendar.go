// Package calendar defines the external collaborator that maps between
// wall-clock timestamps and the (date key, intraday offset) pairs the
// day and container packages operate on.
//
// The core pipeline never infers time zones, session hours, or holiday
// calendars itself: it calls a Calendar at its public boundary and works
// only with the resulting uint32 pair from that point on. FixedSession
// is the one implementation this module ships, covering a plain
// fixed-hours trading session; a real
// deployment with holiday/half-day handling would supply its own
// Calendar without touching day or container.
package calendar

import (
	"fmt"
	"time"

	"github.com/arloliu/daytick/errs"
	"github.com/arloliu/daytick/format"
)

// Calendar converts between a wall-clock instant and the day/offset pair
// the core's encode pipeline consumes, and back.
type Calendar interface {
	// ToOffset maps t to a date key and an intraday millisecond offset.
	// It returns errs.ErrDomainRange if t falls outside the calendar's
	// session window for its date.
	ToOffset(t time.Time) (dateKey uint32, offsetMS uint32, err error)

	// FromOffset is the inverse of ToOffset: given a date key and an
	// intraday offset previously produced by ToOffset, it reconstructs
	// the original instant.
	FromOffset(dateKey uint32, offsetMS uint32) (time.Time, error)
}

// FixedSession is a Calendar with a constant daily session window
// (SessionStart, inclusive, to SessionStart+format.SessionDurationMS,
// exclusive) in a fixed time.Location, with no holiday or half-day
// awareness. DateKey is the session date encoded as (year*10000 +
// month*100 + day), decimal for readability in debuggers and logs.
type FixedSession struct {
	// Location is the time zone the session window is defined in.
	Location *time.Location
	// SessionStart is the time the session opens, measured from local
	// midnight.
	SessionStart time.Duration
}

// NewFixedSession returns a FixedSession opening at sessionStart
// (measured from local midnight) in loc, spanning
// format.SessionDurationMS milliseconds.
func NewFixedSession(loc *time.Location, sessionStart time.Duration) FixedSession {
	return FixedSession{Location: loc, SessionStart: sessionStart}
}

// NewUSEquitySession returns the standard 09:30–16:00 US equity session
// in loc.
func NewUSEquitySession(loc *time.Location) FixedSession {
	return NewFixedSession(loc, 9*time.Hour+30*time.Minute)
}

func (c FixedSession) ToOffset(t time.Time) (uint32, uint32, error) {
	t = t.In(c.Location)
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, c.Location)
	start := midnight.Add(c.SessionStart)
	offset := t.Sub(start)

	if offset < 0 || offset >= time.Duration(format.SessionDurationMS)*time.Millisecond {
		return 0, 0, fmt.Errorf("%w: %s not within session window starting %s", errs.ErrDomainRange, t, start)
	}

	return dateKey(y, m, d), uint32(offset.Milliseconds()), nil
}

func (c FixedSession) FromOffset(key uint32, offsetMS uint32) (time.Time, error) {
	if offsetMS >= format.SessionDurationMS {
		return time.Time{}, fmt.Errorf("%w: offset %d ms >= session duration", errs.ErrDomainRange, offsetMS)
	}

	y, m, d := splitDateKey(key)
	midnight := time.Date(y, time.Month(m), d, 0, 0, 0, 0, c.Location)
	start := midnight.Add(c.SessionStart)

	return start.Add(time.Duration(offsetMS) * time.Millisecond), nil
}

// MapDay applies cal to every timestamp in timestamps and validates the
// domain mapping contract: the sequence must be sorted
// non-decreasing and every timestamp must map to the same date key. It
// returns the shared date key and the resulting offset array, or
// errs.ErrDomainOrder / errs.ErrDomainSpan if either invariant is
// violated (errs.ErrDomainRange propagates unchanged from cal.ToOffset).
//
// An empty timestamps slice is valid and returns dateKey, an empty
// offsets slice, and a nil error; dateKey must be supplied by the
// caller in that case since there is no timestamp to derive it from,
// so MapDay accepts it as a parameter rather than a return value for
// N=0 callers; see container.Container.AppendTimestamps, the one
// caller that needs this boundary case.
func MapDay(cal Calendar, dateKeyHint uint32, timestamps []time.Time) (uint32, []uint32, error) {
	if len(timestamps) == 0 {
		return dateKeyHint, nil, nil
	}

	offsets := make([]uint32, len(timestamps))
	var key uint32
	var prevOffset uint32

	for i, ts := range timestamps {
		k, off, err := cal.ToOffset(ts)
		if err != nil {
			return 0, nil, err
		}

		if i == 0 {
			key = k
		} else if k != key {
			return 0, nil, fmt.Errorf("%w: timestamp at index %d maps to a different date", errs.ErrDomainSpan, i)
		} else if off < prevOffset {
			return 0, nil, fmt.Errorf("%w: offset at index %d (%d) precedes previous offset (%d)", errs.ErrDomainOrder, i, off, prevOffset)
		}

		offsets[i] = off
		prevOffset = off
	}

	return key, offsets, nil
}

func dateKey(y int, m time.Month, d int) uint32 {
	return uint32(y)*10000 + uint32(m)*100 + uint32(d)
}

func splitDateKey(key uint32) (year, month, day int) {
	year = int(key / 10000)
	month = int((key / 100) % 100)
	day = int(key % 100)
	return
}
