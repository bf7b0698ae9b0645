// Package container implements the day directory: an append-only byte
// buffer holding one or more encoded days (package day) plus a parallel
// directory of per-day byte offsets, supporting O(1) retrieval by day
// index and whole-container serialize/deserialize.
package container

import (
	"fmt"

	"github.com/arloliu/daytick/calendar"
	"github.com/arloliu/daytick/compress"
	"github.com/arloliu/daytick/day"
	"github.com/arloliu/daytick/errs"
	"github.com/arloliu/daytick/format"
	"github.com/arloliu/daytick/internal/hash"
	"github.com/arloliu/daytick/internal/options"
	"github.com/arloliu/daytick/internal/pool"
)

// DayIndex identifies one appended day within a Container, assigned in
// append order starting at 0.
type DayIndex uint64

// Container holds zero or more encoded trading days. It starts mutable
// (accepts AppendDay) and becomes frozen once Serialize or Deserialize
// has produced or consumed it: a frozen Container still answers
// GetDay/DayCount/Serialize, but AppendDay fails with
// errs.ErrContainerFrozen. Reopen creates a mutable copy.
//
// A Container is not safe for concurrent use; callers provide their own
// mutual exclusion across a single instance. Independent Containers may
// be used from independent goroutines freely.
type Container struct {
	directory    []directoryEntry
	dateKeyIndex map[uint32]DayIndex
	payload      []byte
	frozen       bool

	capacity        uint64 // 0 means unlimited
	compressionType format.CompressionType
	codec           compress.Codec
	calendar        calendar.Calendar

	// cumulative pre/post-compression byte totals across appends
	originalBytes   uint64
	compressedBytes uint64
}

// Option configures a Container at construction time (capacity limit,
// compression codec, calendar).
type Option = options.Option[*Container]

// NewContainer creates an empty, mutable Container with the given
// options applied.
func NewContainer(opts ...Option) (*Container, error) {
	c := &Container{
		dateKeyIndex:    make(map[uint32]DayIndex),
		compressionType: format.CompressionNone,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.codec == nil {
		codec, err := compress.CreateCodec(format.CompressionNone, "container")
		if err != nil {
			return nil, err
		}
		c.codec = codec
	}

	return c, nil
}

// AppendDay validates, encodes, and appends one day's sorted intraday
// offsets to the container, returning its assigned DayIndex.
//
// AppendDay is atomic: on any error neither the payload buffer nor the
// directory is modified. It fails with
// errs.ErrContainerFrozen if the container is frozen, with
// errs.ErrDomainRange/ErrDomainOrder if offsets violate the domain
// contract (propagated from package day), and with errs.ErrCapacity if
// appending would exceed the container's configured byte limit.
func (c *Container) AppendDay(dateKey uint32, offsets []uint32) (DayIndex, error) {
	if c.frozen {
		return 0, errs.ErrContainerFrozen
	}

	encoded, err := day.Encode(dateKey, offsets)
	if err != nil {
		return 0, err
	}

	contentHash := hash.Bytes(encoded)

	stored := encoded
	if c.compressionType != format.CompressionNone {
		stored, err = c.codec.Compress(encoded)
		if err != nil {
			return 0, fmt.Errorf("compressing day %d: %w", dateKey, err)
		}
	}

	if c.capacity > 0 && uint64(len(c.payload)+len(stored)) > c.capacity {
		return 0, fmt.Errorf("%w: appending day %d would grow payload to %d bytes (limit %d)",
			errs.ErrCapacity, dateKey, len(c.payload)+len(stored), c.capacity)
	}

	idx := DayIndex(len(c.directory))
	c.directory = append(c.directory, directoryEntry{
		Offset:      uint64(len(c.payload)),
		ContentHash: contentHash,
	})
	c.payload = appendPayload(c.payload, stored)
	c.originalBytes += uint64(len(encoded))
	c.compressedBytes += uint64(len(stored))

	if _, exists := c.dateKeyIndex[dateKey]; !exists {
		c.dateKeyIndex[dateKey] = idx
	}

	return idx, nil
}

// GetDay locates day i via the directory, decodes it fully, and returns
// its date key and reconstructed offsets. It fails with
// errs.ErrOutOfRange if i >= DayCount(), and with errs.ErrCorrupt or
// errs.ErrTruncated if the stored bytes violate a day-layout invariant
// (propagated from package day.Decode).
func (c *Container) GetDay(i DayIndex) (dateKey uint32, offsets []uint32, err error) {
	if uint64(i) >= uint64(len(c.directory)) {
		return 0, nil, fmt.Errorf("%w: day index %d, have %d days", errs.ErrOutOfRange, i, len(c.directory))
	}

	start, end := c.dayBounds(int(i))
	raw := c.payload[start:end]

	if c.compressionType != format.CompressionNone {
		raw, err = c.codec.Decompress(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("decompressing day %d: %w", i, err)
		}
	}

	dateKey, offsets, consumed, err := day.Decode(raw)
	if err != nil {
		return 0, nil, err
	}
	if consumed != len(raw) {
		return 0, nil, fmt.Errorf("%w: day %d decoded %d of %d bytes", errs.ErrCorrupt, i, consumed, len(raw))
	}

	return dateKey, offsets, nil
}

// DayCount returns the number of appended days.
func (c *Container) DayCount() uint64 {
	return uint64(len(c.directory))
}

// Stats reports cumulative compression effectiveness across every day
// appended (or loaded) so far. With CompressionNone the ratio is 1.0
// for a non-empty container.
func (c *Container) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      c.compressionType,
		OriginalSize:   int64(c.originalBytes),
		CompressedSize: int64(c.compressedBytes),
	}
}

// DuplicateOf reports whether dateKey has already been appended to this
// container, and if so the DayIndex of its first occurrence. Callers use
// this to catch ingestion-replay bugs (the same trading day submitted
// twice) without decoding and byte-comparing every prior day; each
// directory entry's ContentHash is populated for exactly this kind of
// cheap equality check (see SameContent).
func (c *Container) DuplicateOf(dateKey uint32) (DayIndex, bool) {
	idx, ok := c.dateKeyIndex[dateKey]
	return idx, ok
}

// SameContent reports whether days i and j encoded to byte-identical
// content, using the stored xxHash64 fingerprints instead of decoding
// and comparing either day's offsets.
func (c *Container) SameContent(i, j DayIndex) bool {
	return c.directory[i].ContentHash == c.directory[j].ContentHash
}

// Reopen returns a new mutable Container holding a copy of this
// Container's days, leaving the receiver untouched. Use this to resume
// appending to a Container obtained from Deserialize, since a frozen
// view is never mutated in place.
func (c *Container) Reopen() *Container {
	cp := &Container{
		directory:       append([]directoryEntry(nil), c.directory...),
		dateKeyIndex:    make(map[uint32]DayIndex, len(c.dateKeyIndex)),
		payload:         append([]byte(nil), c.payload...),
		compressionType: c.compressionType,
		codec:           c.codec,
		capacity:        c.capacity,
		calendar:        c.calendar,
		originalBytes:   c.originalBytes,
		compressedBytes: c.compressedBytes,
	}
	for k, v := range c.dateKeyIndex {
		cp.dateKeyIndex[k] = v
	}

	return cp
}

// buildPayloadBuffer drains a pooled scratch buffer sized for one
// container's worth of bytes, mirroring package day's use of
// pool.GetDayBuffer for block scratch space.
func buildPayloadBuffer() (*pool.ByteBuffer, func()) {
	bb := pool.GetContainerBuffer()
	return bb, func() { pool.PutContainerBuffer(bb) }
}

// appendPayload appends day to payload, growing capacity by at least
// 1.5x when it runs out so a long run of appends costs amortized
// constant copying.
func appendPayload(payload, day []byte) []byte {
	need := len(payload) + len(day)
	if need > cap(payload) {
		newCap := cap(payload) + cap(payload)/2
		if newCap < need {
			newCap = need
		}
		grown := make([]byte, len(payload), newCap)
		copy(grown, payload)
		payload = grown
	}

	return append(payload, day...)
}
