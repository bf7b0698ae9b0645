// Package daytick provides a compact binary container for intraday
// financial timestamp sequences.
//
// One trading day's sorted, millisecond-precision timestamps are mapped to
// 32-bit offsets from the session open, split into fixed-size blocks,
// delta-coded lane-wise, and bit-packed at the block's minimum sufficient
// width; a short residual tail is varint-coded. Many days accumulate in a
// single append-only Container addressed by a directory, so one container
// can hold a whole calendar quarter's worth of sessions at a few bytes per
// timestamp.
//
// # Basic usage
//
//	c, _ := daytick.NewContainer()
//	idx, err := c.AppendDay(20260803, offsets)
//	dateKey, offsets, err := c.GetDay(idx)
//
//	blob := c.Serialize()
//	restored, err := daytick.Deserialize(blob)
//
// Calendar-aware callers can skip the manual timestamp-to-offset mapping
// entirely:
//
//	c, _ := daytick.NewContainer(daytick.WithCalendar(daytick.NewUSEquityCalendar(time.Local)))
//	idx, err := c.AppendTimestamps(20260803, timestamps)
//	dateKey, timestamps, err := c.GetTimestamps(idx)
//
// # Package structure
//
// This package is a thin top-level convenience layer over package
// container (the append-only day directory), package day (the per-day
// byte layout), package delta and package bitpack (the compression
// pipeline), package varint (the tail coder), and package calendar (the
// timestamp/offset mapping collaborator). Advanced callers needing direct
// control over any one stage should use those packages rather than this
// one.
package daytick

import (
	"time"

	"github.com/arloliu/daytick/calendar"
	"github.com/arloliu/daytick/container"
	"github.com/arloliu/daytick/format"
)

// Container holds zero or more encoded trading days; see package
// container for its full state-machine and concurrency contract.
type Container = container.Container

// DayIndex identifies one appended day within a Container, assigned in
// append order starting at 0.
type DayIndex = container.DayIndex

// Option configures a Container at construction time.
type Option = container.Option

// NewContainer creates an empty, mutable Container with the given
// options applied. With no options, it stores days uncompressed and
// without a capacity limit.
func NewContainer(opts ...Option) (*Container, error) {
	return container.NewContainer(opts...)
}

// Deserialize parses a Container previously produced by Container.Serialize.
// The returned Container is frozen; call Reopen to resume appending to it.
func Deserialize(data []byte) (*Container, error) {
	return container.Deserialize(data)
}

// WithCapacity limits a Container's payload buffer to maxBytes; an
// AppendDay that would exceed it fails with errs.ErrCapacity. The
// default, 0, is unlimited.
func WithCapacity(maxBytes uint64) Option {
	return container.WithCapacity(maxBytes)
}

// WithCompression compresses each day's encoded bytes with t before
// appending them to a Container's payload buffer. The bit-pack pipeline
// itself always operates on uncompressed residues; this is a whole-day
// post-pass.
func WithCompression(t CompressionType) Option {
	return container.WithCompression(t)
}

// WithCalendar sets the Calendar a Container uses for AppendTimestamps
// and GetTimestamps. AppendDay and GetDay remain calendar-agnostic
// regardless of this option.
func WithCalendar(cal Calendar) Option {
	return container.WithCalendar(cal)
}

// CompressionType selects the codec used to compress an assembled day's
// bytes before it is appended to a container's payload buffer.
type CompressionType = format.CompressionType

// Compression codec selectors for WithCompression.
const (
	CompressionNone = format.CompressionNone
	CompressionZstd = format.CompressionZstd
	CompressionS2   = format.CompressionS2
	CompressionLZ4  = format.CompressionLZ4
)

// Calendar converts between a wall-clock instant and the (date key,
// intraday millisecond offset) pair the core pipeline consumes, and back.
// See package calendar for the full contract and the FixedSession
// reference implementation.
type Calendar = calendar.Calendar

// NewUSEquityCalendar returns a Calendar for the standard 09:30-16:00 US
// equity session in loc, with no holiday or half-day awareness. Callers
// with exchange-calendar requirements (holidays, early closes) should
// supply their own Calendar implementation instead.
func NewUSEquityCalendar(loc *time.Location) Calendar {
	return calendar.NewUSEquitySession(loc)
}

// NewFixedSessionCalendar returns a Calendar with a constant daily
// session window opening at sessionStart (measured from local midnight)
// in loc and spanning the fixed session duration.
func NewFixedSessionCalendar(loc *time.Location, sessionStart time.Duration) Calendar {
	return calendar.NewFixedSession(loc, sessionStart)
}
