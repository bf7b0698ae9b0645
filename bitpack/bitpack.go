// Package bitpack implements the per-block bit-width selection and
// binary packing stage: the residues a block's delta coder (package
// delta) produces are packed into w bits each, lane-interleaved to match
// a 256-bit vector load.
//
// Residues are grouped by lane (lane l owns every format.LaneWidth-th
// residue, the same grouping package delta used to compute them).
// Within a lane, residues are concatenated LSB-first into a bitstream
// and that bitstream is cut into 32-bit little-endian words. Word k of
// every lane is emitted together, so a decoder reading the next
// format.LaneWidth 32-bit words in sequence has exactly one word per
// lane, the "256-bit vector" load the format is shaped around. Because
// every lane holds the same residue count and the same width, this
// layout always lands on a multiple of 32 bytes with no special-casing,
// matching the padding rule in the day assembler.
package bitpack

import (
	"math/bits"

	"github.com/arloliu/daytick/errs"
	"github.com/arloliu/daytick/format"
)

// Width computes the minimum bit-width w such that 1<<w > max, the
// bit-width selector from the day assembler's per-block contract.
// Width(0) is 0: an all-zero block needs no residue bytes.
func Width(max uint32) uint8 {
	return uint8(bits.Len32(max))
}

// PayloadLen returns the exact number of residue payload bytes Pack
// will produce for n residues packed at width w, already rounded up to
// the next 32-byte boundary.
func PayloadLen(n int, w uint8) int {
	if w == 0 || n == 0 {
		return 0
	}
	l := format.LaneWidth
	perLane := n / l
	bitsPerLane := perLane * int(w)
	wordsPerLane := (bitsPerLane + 31) / 32
	return wordsPerLane * 4 * l
}

// Pack packs n residues (n must be a multiple of format.LaneWidth) at
// bit-width w into dst, growing or reusing it as needed, and returns the
// result. Every residue must fit in w bits; values that do not are
// silently truncated to their low w bits, so callers must select w with
// Width over the block's maximum residue first. Pack panics if
// w > format.MaxBitWidth, an internal invariant violation rather than a
// caller input error.
//
// Pack(0, residues, dst) returns dst unchanged (trimmed to its original
// length): a width of zero emits no residue bytes.
func Pack(w uint8, residues []uint32, dst []byte) []byte {
	if w > format.MaxBitWidth {
		panic(errs.ErrInvalidBitWidth)
	}
	if w == 0 || len(residues) == 0 {
		return dst
	}
	if len(residues)%format.LaneWidth != 0 {
		panic("bitpack: residue count must be a multiple of format.LaneWidth")
	}

	fn := packDispatch[w]
	return fn(residues, dst)
}

// Unpack reconstructs n residues packed at bit-width w from packed,
// writing into dst (growing or reusing it as needed) and returning the
// result. n must be a multiple of format.LaneWidth. Unpack(0, ...,
// n, dst) returns n zeros, matching Pack's "width zero, no bytes"
// convention.
func Unpack(w uint8, packed []byte, n int, dst []uint32) []uint32 {
	if w > format.MaxBitWidth {
		panic(errs.ErrInvalidBitWidth)
	}
	if n%format.LaneWidth != 0 {
		panic("bitpack: residue count must be a multiple of format.LaneWidth")
	}

	dst = growUint32(dst, n)
	if w == 0 || n == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return dst
	}

	fn := unpackDispatch[w]
	fn(packed, dst)
	return dst
}

func growUint32(dst []uint32, n int) []uint32 {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]uint32, n)
}

func growByte(dst []byte, n int) []byte {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]byte, n)
}
