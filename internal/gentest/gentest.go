// Package gentest generates deterministic synthetic offset blocks for
// package day's tests, so any residue bit-width from 0 to 32 can be
// produced on demand without waiting on math/rand to happen to produce
// it.
//
// This is test-only infrastructure: it has no production caller and is
// not part of the public API.
package gentest

import (
	"math/rand"

	"github.com/arloliu/daytick/format"
)

// Block generates a sorted block of blockLen uint32 values (blockLen
// must be a positive multiple of format.LaneWidth) whose lane-wise
// deltas (v[i] - v[i-format.LaneWidth]) never exceed bitLen bits, with
// the first lane group's delta pinned to the maximum so the block needs
// exactly bitLen bits. The block starts at zero. seed makes the
// sequence reproducible across test runs.
//
// Construction: the seed group is all zeros and every later group adds
// one shared per-group delta to each lane. Values are then constant
// within a group and non-decreasing across groups, so the block is
// globally sorted and every lane-wise delta equals its group's delta
// exactly; no clamping or fixups are needed. Additions saturate at the
// uint32 maximum, which can only shrink a delta, never grow it.
//
// Block panics if blockLen is not a positive multiple of
// format.LaneWidth or bitLen > format.MaxBitWidth.
func Block(blockLen int, bitLen uint8, seed int64) []uint32 {
	if blockLen <= 0 || blockLen%format.LaneWidth != 0 {
		panic("gentest: blockLen must be a positive multiple of format.LaneWidth")
	}
	if bitLen > format.MaxBitWidth {
		panic("gentest: bitLen exceeds format.MaxBitWidth")
	}

	blk := make([]uint32, blockLen)
	if bitLen == 0 {
		return blk
	}

	deltaMax := uint32(1)<<bitLen - 1 // all ones at bitLen == 32

	l := format.LaneWidth
	rng := rand.New(rand.NewSource(seed))
	groups := blockLen / l

	for g := 1; g < groups; g++ {
		delta := deltaMax
		if g > 1 {
			delta = uint32(rng.Int63n(int64(deltaMax) + 1))
		}
		for lane := 0; lane < l; lane++ {
			blk[g*l+lane] = saturatingAdd(blk[(g-1)*l+lane], delta)
		}
	}

	return blk
}

// BoundedBlock is Block with every value kept below bound, for tests
// that feed generated blocks through the intraday-offset validation
// path. It panics if bound cannot accommodate the requested bit-width's
// pinned first delta.
func BoundedBlock(blockLen int, bitLen uint8, bound uint32, seed int64) []uint32 {
	blk := Block(blockLen, bitLen, seed)
	if blk[len(blk)-1] < bound {
		return blk
	}
	if bitLen > 0 && uint64(1)<<bitLen-1 >= uint64(bound) {
		panic("gentest: bound too small for the pinned maximum delta")
	}

	for i, v := range blk {
		if v >= bound {
			blk[i] = bound - 1
		}
	}
	return blk
}

func saturatingAdd(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		return ^uint32(0)
	}
	return sum
}
