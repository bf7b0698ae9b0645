// Package delta implements the lane-wise vector delta coder applied to
// each fixed-size block of a day's intraday offsets.
//
// A block holds exactly format.BlockSize (256) non-decreasing uint32
// offsets. The coder treats the block as format.LaneWidth (8) parallel
// lanes of a 256-bit SIMD vector: lane l owns every 8th element starting
// at index l. The first 8 values (one element per lane) are the seed and
// are stored verbatim; every later value is replaced by its difference
// from the value 8 positions earlier in the same lane. Because offsets
// are sorted non-decreasing, every residue is non-negative and fits in
// uint32, which keeps the bit-pack stage (package bitpack) working on an
// unsigned field without a zig-zag step.
//
// The arithmetic here is scalar: Go has no portable 256-bit SIMD
// intrinsic, so this is the "scalar fallback producing bit-identical
// output" the lane layout already accommodates (the layout is what makes
// a true vector implementation possible later, in assembly or via a
// library like ajroetker/go-highway, without changing the wire format).
package delta

import "github.com/arloliu/daytick/format"

// SeedLen is the number of verbatim seed values at the front of a block,
// one per lane.
const SeedLen = format.LaneWidth

// EncodeBlock splits a full block of format.BlockSize non-decreasing
// offsets into its per-lane seed and residues. The returned seed has
// length SeedLen; the returned residues slice has length
// format.BlockSize - SeedLen and aliases dst if dst has sufficient
// capacity (dst may be nil).
//
// EncodeBlock panics if block does not have exactly format.BlockSize
// elements; callers (package day) are responsible for only invoking it
// on full blocks, routing any remainder to the varint tail coder
// instead.
func EncodeBlock(block []uint32, dst []uint32) (seed [SeedLen]uint32, residues []uint32) {
	if len(block) != format.BlockSize {
		panic("delta: EncodeBlock requires exactly format.BlockSize elements")
	}

	copy(seed[:], block[:SeedLen])

	residues = growUint32(dst, format.BlockSize-SeedLen)
	for i := SeedLen; i < format.BlockSize; i++ {
		residues[i-SeedLen] = block[i] - block[i-SeedLen]
	}

	return seed, residues
}

// DecodeBlock reconstructs a full block from a seed and its residues,
// writing format.BlockSize values into dst (reused if it has sufficient
// capacity, otherwise a new slice is allocated; dst may be nil) and
// returning the resulting slice.
//
// DecodeBlock panics if residues does not have exactly
// format.BlockSize - SeedLen elements.
func DecodeBlock(seed [SeedLen]uint32, residues []uint32, dst []uint32) []uint32 {
	if len(residues) != format.BlockSize-SeedLen {
		panic("delta: DecodeBlock requires exactly format.BlockSize-SeedLen residues")
	}

	block := growUint32(dst, format.BlockSize)
	copy(block[:SeedLen], seed[:])

	for i := SeedLen; i < format.BlockSize; i++ {
		block[i] = block[i-SeedLen] + residues[i-SeedLen]
	}

	return block
}

// MaxResidue returns the largest residue in a decoded residues slice,
// the value package bitpack's width selector needs. It returns 0 for an
// empty slice (an all-zero block needs a zero bit width).
func MaxResidue(residues []uint32) uint32 {
	var max uint32
	for _, r := range residues {
		if r > max {
			max = r
		}
	}
	return max
}

func growUint32(dst []uint32, n int) []uint32 {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]uint32, n)
}
