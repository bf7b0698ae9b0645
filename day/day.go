// Package day implements the day assembler: encoding one trading day's
// sorted intraday millisecond offsets into the concatenated
// header + blocks + tail + footer byte layout the container package
// appends to its payload buffer, and decoding that layout back into the
// original offsets.
//
// This package never talks to a calendar or a container directly; it
// is the pure byte-layout layer sitting on top of package delta (the
// lane-wise delta coder) and package bitpack (bit-width selection and
// packing), with package varint covering the residual tail.
package day

import (
	"fmt"

	"github.com/arloliu/daytick/bitpack"
	"github.com/arloliu/daytick/delta"
	"github.com/arloliu/daytick/endian"
	"github.com/arloliu/daytick/errs"
	"github.com/arloliu/daytick/format"
	"github.com/arloliu/daytick/internal/pool"
	"github.com/arloliu/daytick/varint"
)

var engine = endian.GetLittleEndianEngine()

const residuesPerBlock = format.BlockSize - format.LaneWidth

// Encode assembles dateKey and offsets into an encoded day. offsets
// must already be validated by the caller (package calendar's MapDay,
// or a container caller that trusts its own input) to be sorted
// non-decreasing and within [0, format.SessionDurationMS); Encode
// re-validates both, since a day's bytes must never be unrecoverable
// from data that violates the pipeline's core assumptions.
func Encode(dateKey uint32, offsets []uint32) ([]byte, error) {
	if err := validateOffsets(offsets); err != nil {
		return nil, err
	}

	n := len(offsets)
	h := header{
		DateKey:    dateKey,
		BlockCount: uint32(n / format.BlockSize),
		TailLen:    uint16(n % format.BlockSize),
	}

	return encode(h, offsets)
}

// encode performs the actual assembly; split from Encode so the public
// entry point keeps the validation and header bookkeeping separate from
// the byte-layout walk. Assembly scratch space comes from the pooled
// day buffer (package internal/pool), mirroring the way
// container.Serialize drains pool.GetContainerBuffer/PutContainerBuffer
// for its own payload assembly: the buffer is borrowed for the
// duration of this call and the returned bytes are a fresh caller-owned
// copy, so no returned slice ever aliases pooled memory.
func encode(h header, offsets []uint32) ([]byte, error) {
	n := len(offsets)
	tail := offsets[int(h.BlockCount)*format.BlockSize:]

	bb := pool.GetDayBuffer()
	defer pool.PutDayBuffer(bb)
	bb.Reset()
	bb.Grow(estimateSize(n, tail))

	dst := bb.Bytes()[:0]
	dst = h.appendTo(dst)

	var residueScratch []uint32
	var packed []byte
	for b := 0; b < int(h.BlockCount); b++ {
		block := offsets[b*format.BlockSize : (b+1)*format.BlockSize]
		seed, residues := delta.EncodeBlock(block, residueScratch)
		residueScratch = residues

		for _, v := range seed {
			dst = engine.AppendUint32(dst, v)
		}

		w := bitpack.Width(delta.MaxResidue(residues))
		dst = append(dst, byte(w))

		packed = bitpack.Pack(w, residues, packed[:0])
		dst = append(dst, packed...)
	}

	if len(tail) > 0 {
		dst = varint.Put(dst, uint32(len(tail)))
		dst = varint.PutAll(dst, tail)
	}

	dst = engine.AppendUint32(dst, uint32(len(dst)+FooterSize))

	out := make([]byte, len(dst))
	copy(out, dst)

	return out, nil
}

// Decode parses one encoded day from the front of data and returns its
// date key, reconstructed offsets, and the number of bytes consumed
// (data may hold more than one day back to back; package container
// uses the directory rather than this return value to locate days, but
// Decode still reports it so callers can cross-check framing).
//
// Decode returns errs.ErrTruncated if data ends before a structurally
// required byte, and errs.ErrCorrupt if the footer length disagrees
// with the bytes actually consumed or a block's width exceeds
// format.MaxBitWidth.
func Decode(data []byte) (dateKey uint32, offsets []uint32, consumed int, err error) {
	if len(data) < HeaderSize {
		return 0, nil, 0, fmt.Errorf("%w: day header", errs.ErrTruncated)
	}

	h := parseHeader(data)
	pos := HeaderSize

	total := int(h.BlockCount)*format.BlockSize + int(h.TailLen)
	offsets = make([]uint32, 0, total)

	residueBuf, releaseResidueBuf := pool.GetUint32Slice(residuesPerBlock)
	defer releaseResidueBuf()

	for b := uint32(0); b < h.BlockCount; b++ {
		if pos+format.LaneWidth*4+1 > len(data) {
			return 0, nil, 0, fmt.Errorf("%w: block %d seed+width", errs.ErrTruncated, b)
		}

		var seed [format.LaneWidth]uint32
		for i := range seed {
			seed[i] = engine.Uint32(data[pos : pos+4])
			pos += 4
		}

		w := data[pos]
		pos++
		if w > format.MaxBitWidth {
			return 0, nil, 0, fmt.Errorf("%w: block %d width %d", errs.ErrCorrupt, b, w)
		}

		payloadLen := bitpack.PayloadLen(residuesPerBlock, w)
		if pos+payloadLen > len(data) {
			return 0, nil, 0, fmt.Errorf("%w: block %d residue payload", errs.ErrTruncated, b)
		}

		residueBuf = bitpack.Unpack(w, data[pos:pos+payloadLen], residuesPerBlock, residueBuf)
		pos += payloadLen

		block := delta.DecodeBlock(seed, residueBuf, nil)
		offsets = append(offsets, block...)
	}

	if h.TailLen > 0 {
		if pos >= len(data) {
			return 0, nil, 0, fmt.Errorf("%w: tail count", errs.ErrTruncated)
		}
		count, n := varint.Get(data[pos:])
		if n == 0 {
			return 0, nil, 0, fmt.Errorf("%w: tail count", errs.ErrTruncated)
		}
		if count != uint32(h.TailLen) {
			return 0, nil, 0, fmt.Errorf("%w: tail count %d disagrees with header %d", errs.ErrCorrupt, count, h.TailLen)
		}
		pos += n

		tail := make([]uint32, count)
		consumedTail := varint.GetAll(data[pos:], tail, int(count))
		if consumedTail == 0 {
			return 0, nil, 0, fmt.Errorf("%w: tail values", errs.ErrTruncated)
		}
		pos += consumedTail
		offsets = append(offsets, tail...)
	}

	if pos+FooterSize > len(data) {
		return 0, nil, 0, fmt.Errorf("%w: day footer", errs.ErrTruncated)
	}
	footerLen := engine.Uint32(data[pos : pos+FooterSize])
	pos += FooterSize

	if footerLen != uint32(pos) {
		return 0, nil, 0, fmt.Errorf("%w: footer length %d disagrees with consumed %d bytes", errs.ErrCorrupt, footerLen, pos)
	}

	return h.DateKey, offsets, pos, nil
}

func validateOffsets(offsets []uint32) error {
	var prev uint32
	for i, v := range offsets {
		if v >= format.SessionDurationMS {
			return fmt.Errorf("%w: offset at index %d (%d)", errs.ErrDomainRange, i, v)
		}
		if i > 0 && v < prev {
			return fmt.Errorf("%w: offset at index %d (%d) precedes previous (%d)", errs.ErrDomainOrder, i, v, prev)
		}
		prev = v
	}
	return nil
}

// estimateSize pre-sizes the pooled day buffer before assembly, so the
// common case never reallocates mid-encode. The per-block term is a
// worst-case bound (every block packed at the maximum width); the tail
// term is exact, via varint.Len/LenAll, since the tail values are
// already known at this point.
func estimateSize(n int, tail []uint32) int {
	blocks := n / format.BlockSize
	tailSize := 0
	if len(tail) > 0 {
		tailSize = varint.Len(uint32(len(tail))) + varint.LenAll(tail)
	}
	return HeaderSize + blocks*(format.LaneWidth*4+1+bitpack.PayloadLen(residuesPerBlock, format.MaxBitWidth)) + tailSize + FooterSize
}
