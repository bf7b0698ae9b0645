package container

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/daytick/calendar"
	"github.com/arloliu/daytick/internal/options"
)

// errNoCalendar is returned by AppendTimestamps/GetTimestamps when the
// container was not constructed with WithCalendar.
var errNoCalendar = errors.New("daytick: no calendar configured")

// WithCalendar sets the default Calendar used by AppendTimestamps and
// GetTimestamps. It has no effect on AppendDay/GetDay, which stay
// calendar-agnostic: a Calendar is consulted only at this public
// boundary, never inside the encode/decode pipeline.
func WithCalendar(cal calendar.Calendar) Option {
	return options.NoError(func(c *Container) { c.calendar = cal })
}

// AppendTimestamps maps timestamps to a (date key, offsets) pair using
// the container's configured Calendar and appends the resulting day via
// AppendDay. It fails if no Calendar was configured via WithCalendar,
// and otherwise surfaces MapDay's
// validation errors (errs.ErrDomainRange/ErrDomainOrder/ErrDomainSpan)
// unchanged.
//
// An empty timestamps slice still appends an empty day under dateKey,
// matching AppendDay's own N=0 boundary case.
func (c *Container) AppendTimestamps(dateKey uint32, timestamps []time.Time) (DayIndex, error) {
	if c.calendar == nil {
		return 0, fmt.Errorf("%w: AppendTimestamps requires container.WithCalendar", errNoCalendar)
	}

	key, offsets, err := calendar.MapDay(c.calendar, dateKey, timestamps)
	if err != nil {
		return 0, err
	}

	return c.AppendDay(key, offsets)
}

// GetTimestamps is GetDay followed by the inverse calendar mapping: it
// returns day i's date key and the reconstructed wall-clock instants
// instead of raw millisecond offsets.
func (c *Container) GetTimestamps(i DayIndex) (dateKey uint32, timestamps []time.Time, err error) {
	if c.calendar == nil {
		return 0, nil, fmt.Errorf("%w: GetTimestamps requires container.WithCalendar", errNoCalendar)
	}

	key, offsets, err := c.GetDay(i)
	if err != nil {
		return 0, nil, err
	}

	timestamps = make([]time.Time, len(offsets))
	for idx, off := range offsets {
		ts, err := c.calendar.FromOffset(key, off)
		if err != nil {
			return 0, nil, err
		}
		timestamps[idx] = ts
	}

	return key, timestamps, nil
}
