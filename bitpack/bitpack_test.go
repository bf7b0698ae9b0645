package bitpack

import (
	"math"
	"testing"

	"github.com/arloliu/daytick/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const n = format.BlockSize - format.LaneWidth // 248, a full block's residue count

func TestWidth(t *testing.T) {
	cases := []struct {
		max uint32
		w   uint8
	}{
		{0, 0},
		{1, 1},
		{3, 2},
		{4, 3},
		{255, 8},
		{256, 9},
		{65535, 16},
		{65536, 17},
		{math.MaxUint32, 32},
	}
	for _, c := range cases {
		assert.Equal(t, c.w, Width(c.max), "max=%d", c.max)
	}
}

func allWidthsToTest() []uint8 {
	ws := make([]uint8, 0, 33)
	for w := 0; w <= format.MaxBitWidth; w++ {
		ws = append(ws, uint8(w))
	}
	return ws
}

func residuesAtWidth(w uint8) []uint32 {
	residues := make([]uint32, n)
	if w == 0 {
		return residues
	}
	mask := uint32(1)<<w - 1 // all ones at w == 32
	for i := range residues {
		// multiplicative scramble so high lanes see high bits too
		residues[i] = (uint32(i) * 2654435761) & mask
	}
	return residues
}

func TestPackUnpackRoundTripAllWidths(t *testing.T) {
	for _, w := range allWidthsToTest() {
		residues := residuesAtWidth(w)

		packed := Pack(w, residues, nil)
		assert.Len(t, packed, PayloadLen(n, w))

		got := Unpack(w, packed, n, nil)
		require.Equal(t, residues, got, "width=%d", w)
	}
}

// TestGeneratedMatchesReferenceAllWidths pins every generated
// specialization to the width-parameterized reference routines in
// generic.go: identical packed bytes, and a clean inverse through the
// opposite side's implementation.
func TestGeneratedMatchesReferenceAllWidths(t *testing.T) {
	for _, w := range allWidthsToTest() {
		if w == 0 {
			continue
		}
		residues := residuesAtWidth(w)

		generated := Pack(w, residues, nil)
		reference := packGeneric(w, residues, nil)
		require.Equal(t, reference, generated, "width=%d", w)

		fromGenerated := make([]uint32, n)
		unpackGeneric(w, generated, fromGenerated)
		assert.Equal(t, residues, fromGenerated, "width=%d", w)

		fromReference := Unpack(w, reference, n, nil)
		assert.Equal(t, residues, fromReference, "width=%d", w)
	}
}

func TestPayloadLenMultipleOf32(t *testing.T) {
	for w := 0; w <= format.MaxBitWidth; w++ {
		l := PayloadLen(n, uint8(w))
		assert.Zero(t, l%32, "width=%d len=%d", w, l)
	}
}

func TestPackZeroWidthEmitsNoBytes(t *testing.T) {
	residues := make([]uint32, n)
	packed := Pack(0, residues, nil)
	assert.Empty(t, packed)
}

func TestUnpackZeroWidthProducesZeros(t *testing.T) {
	got := Unpack(0, nil, n, nil)
	for _, v := range got {
		assert.Zero(t, v)
	}
}

func TestPackInvalidWidthPanics(t *testing.T) {
	assert.Panics(t, func() {
		Pack(33, make([]uint32, n), nil)
	})
}

func TestMaxWidthValue(t *testing.T) {
	residues := make([]uint32, n)
	for i := range residues {
		residues[i] = math.MaxUint32
	}
	packed := Pack(32, residues, nil)
	got := Unpack(32, packed, n, nil)
	assert.Equal(t, residues, got)
}
