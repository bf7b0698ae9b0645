package day

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/arloliu/daytick/errs"
	"github.com/arloliu/daytick/format"
	"github.com/arloliu/daytick/internal/gentest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEmptyDay(t *testing.T) {
	encoded, err := Encode(20260305, nil)
	require.NoError(t, err)

	key, offsets, consumed, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, uint32(20260305), key)
	assert.Empty(t, offsets)
	assert.Equal(t, len(encoded), consumed)
}

func TestEncodeDecodeSingleTimestamp(t *testing.T) {
	encoded, err := Encode(1, []uint32{0})
	require.NoError(t, err)

	_, offsets, consumed, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, offsets)
	assert.Equal(t, len(encoded), consumed)
}

func TestEncodeDecodeOneFullBlockOfZeros(t *testing.T) {
	offsets := make([]uint32, format.BlockSize)
	encoded, err := Encode(2, offsets)
	require.NoError(t, err)

	_, got, _, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, offsets, got)
}

func TestEncodeDecodeUniformStep(t *testing.T) {
	offsets := make([]uint32, format.BlockSize)
	for i := range offsets {
		offsets[i] = uint32(i) * 100
	}

	encoded, err := Encode(3, offsets)
	require.NoError(t, err)

	_, got, _, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, offsets, got)
}

func TestEncodeDecodeBlockPlusTail(t *testing.T) {
	offsets := make([]uint32, format.BlockSize+16)
	for i := range offsets {
		offsets[i] = uint32(i)
	}

	encoded, err := Encode(4, offsets)
	require.NoError(t, err)

	_, got, consumed, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, offsets, got)
	assert.Equal(t, len(encoded), consumed)
}

func TestEncodeDecodeGeneratedBlocksAllWidths(t *testing.T) {
	// Residues within a bounded session never need more than 25 bits
	// (the largest possible lane delta is SessionDurationMS-1); widths
	// up to 24 are coverable with a pinned maximum delta that still
	// fits the session window, and the remaining widths are exercised
	// directly by the bitpack package tests.
	for w := uint8(0); w <= 24; w++ {
		blk := gentest.BoundedBlock(format.BlockSize, w, format.SessionDurationMS, int64(w)+1)

		encoded, err := Encode(5, blk)
		require.NoError(t, err, "width=%d", w)

		_, got, _, err := Decode(encoded)
		require.NoError(t, err, "width=%d", w)
		assert.Equal(t, blk, got, "width=%d", w)
	}
}

func TestEncodeDecodeRandomSortedDay(t *testing.T) {
	const total = 10_000 // 39 full blocks plus a 16-value tail

	rng := rand.New(rand.NewSource(1))
	raw := make([]uint32, total)
	for i := range raw {
		raw[i] = uint32(rng.Int63n(format.SessionDurationMS))
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i] < raw[j] })

	encoded, err := Encode(6, raw)
	require.NoError(t, err)
	assert.Less(t, len(encoded), 4*total)

	_, got, _, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestEncodeRejectsOutOfRangeOffset(t *testing.T) {
	_, err := Encode(1, []uint32{format.SessionDurationMS})
	assert.ErrorIs(t, err, errs.ErrDomainRange)
}

func TestEncodeRejectsUnsortedOffsets(t *testing.T) {
	_, err := Encode(1, []uint32{5, 3})
	assert.ErrorIs(t, err, errs.ErrDomainOrder)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, _, _, err := Decode([]byte{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDecodeCorruptFooter(t *testing.T) {
	encoded, err := Encode(1, []uint32{1, 2, 3})
	require.NoError(t, err)

	encoded[len(encoded)-1] ^= 0xFF
	_, _, _, err = Decode(encoded)
	assert.ErrorIs(t, err, errs.ErrCorrupt)
}

func TestDecodeRejectsInvalidWidth(t *testing.T) {
	offsets := make([]uint32, format.BlockSize)
	encoded, err := Encode(1, offsets)
	require.NoError(t, err)

	// the width byte immediately follows the 32-byte seed
	encoded[HeaderSize+format.LaneWidth*4] = format.MaxBitWidth + 1
	_, _, _, err = Decode(encoded)
	assert.ErrorIs(t, err, errs.ErrCorrupt)
}
