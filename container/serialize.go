package container

import (
	"fmt"
	"hash/crc32"

	"github.com/arloliu/daytick/compress"
	"github.com/arloliu/daytick/day"
	"github.com/arloliu/daytick/endian"
	"github.com/arloliu/daytick/errs"
	"github.com/arloliu/daytick/format"
	"github.com/arloliu/daytick/internal/hash"
)

var engine = endian.GetLittleEndianEngine()

const (
	trailerSize = 4 // crc32
	// headerSize is magic + version + flags + day_count, before the
	// variable-length directory and payload sections.
	headerSize = 4 + 2 + 2 + 8
)

// Serialize encodes the container's directory and payload into the
// wire layout (little-endian throughout):
//
//	magic(4) version(2) flags(2) day_count(8)
//	directory: day_count x u64 byte offsets
//	payload_length(8) payload
//	trailer: crc32(4) over everything preceding
//
// flags' low byte carries the container's format.CompressionType so
// Deserialize can pick the matching codec back up; the rest of flags is
// reserved, the same way day headers reserve their own flags field.
//
// Serializing freezes the container: subsequent AppendDay calls fail
// with errs.ErrContainerFrozen. Call Reopen first if further appends
// are needed.
func (c *Container) Serialize() []byte {
	n := len(c.directory)
	total := headerSize + n*8 + 8 + len(c.payload) + trailerSize

	bb, release := buildPayloadBuffer()
	defer release()
	bb.Reset()
	bb.Grow(total)

	dst := bb.Bytes()[:0]
	dst = engine.AppendUint32(dst, format.Magic)
	dst = engine.AppendUint16(dst, format.Version)
	dst = engine.AppendUint16(dst, uint16(c.compressionType))
	dst = engine.AppendUint64(dst, uint64(n))

	for _, e := range c.directory {
		dst = engine.AppendUint64(dst, e.Offset)
	}

	dst = engine.AppendUint64(dst, uint64(len(c.payload)))
	dst = append(dst, c.payload...)
	dst = engine.AppendUint32(dst, crc32.ChecksumIEEE(dst))

	c.frozen = true

	out := make([]byte, len(dst))
	copy(out, dst)

	return out
}

// Deserialize parses a container serialized by Serialize. It validates
// the magic, version, CRC32 trailer, and that every directory entry
// points to a well-formed day (header parses, width stays within
// [0, format.MaxBitWidth], and the footer length matches the bytes
// actually consumed); any violation fails with errs.ErrCorrupt and
// constructs nothing. The returned Container is frozen; call Reopen to
// resume appending.
func Deserialize(data []byte) (*Container, error) {
	if len(data) < headerSize+8+trailerSize {
		return nil, fmt.Errorf("%w: container too short for header/payload-length/trailer", errs.ErrCorrupt)
	}

	if engine.Uint32(data[0:4]) != format.Magic {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrCorrupt)
	}
	if engine.Uint16(data[4:6]) != format.Version {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrCorrupt, engine.Uint16(data[4:6]))
	}
	compressionType := format.CompressionType(engine.Uint16(data[6:8]))

	trailerStart := len(data) - trailerSize
	wantCRC := engine.Uint32(data[trailerStart:])
	gotCRC := crc32.ChecksumIEEE(data[:trailerStart])
	if wantCRC != gotCRC {
		return nil, fmt.Errorf("%w: crc32 mismatch", errs.ErrCorrupt)
	}

	pos := 8 // past magic+version+flags
	n := engine.Uint64(data[pos : pos+8])
	pos += 8

	dirEnd := pos + int(n)*8
	if dirEnd+8 > trailerStart {
		return nil, fmt.Errorf("%w: directory overruns payload-length field", errs.ErrCorrupt)
	}

	offsets := make([]uint64, n)
	for i := range offsets {
		offsets[i] = engine.Uint64(data[pos : pos+8])
		pos += 8
	}

	payloadLen := engine.Uint64(data[pos : pos+8])
	pos += 8

	payloadStart := pos
	if uint64(payloadStart)+payloadLen != uint64(trailerStart) {
		return nil, fmt.Errorf("%w: payload_length %d disagrees with framing", errs.ErrCorrupt, payloadLen)
	}
	payload := data[payloadStart:trailerStart]

	codec, err := compress.CreateCodec(compressionType, "container")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCorrupt, err)
	}

	c := &Container{
		directory:       make([]directoryEntry, n),
		dateKeyIndex:    make(map[uint32]DayIndex, n),
		payload:         append([]byte(nil), payload...),
		frozen:          true,
		compressionType: compressionType,
		codec:           codec,
	}

	for i := uint64(0); i < n; i++ {
		start := int(offsets[i])
		var end int
		if i+1 < n {
			end = int(offsets[i+1])
		} else {
			end = len(c.payload)
		}
		if start < 0 || end > len(c.payload) || start > end {
			return nil, fmt.Errorf("%w: day %d directory offset out of bounds", errs.ErrCorrupt, i)
		}

		stored := c.payload[start:end]
		raw := stored
		if compressionType != format.CompressionNone {
			raw, err = codec.Decompress(stored)
			if err != nil {
				return nil, fmt.Errorf("%w: day %d decompression: %v", errs.ErrCorrupt, i, err)
			}
		}

		dateKey, _, consumed, err := day.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: day %d: %v", errs.ErrCorrupt, i, err)
		}
		if consumed != len(raw) {
			return nil, fmt.Errorf("%w: day %d decoded %d of %d bytes", errs.ErrCorrupt, i, consumed, len(raw))
		}

		c.directory[i] = directoryEntry{
			Offset:      offsets[i],
			ContentHash: hash.Bytes(raw),
		}
		c.originalBytes += uint64(len(raw))
		c.compressedBytes += uint64(len(stored))
		if _, exists := c.dateKeyIndex[dateKey]; !exists {
			c.dateKeyIndex[dateKey] = DayIndex(i)
		}
	}

	return c, nil
}
