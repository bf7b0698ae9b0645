package delta

import (
	"testing"

	"github.com/arloliu/daytick/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedBlock(n int, step uint32) []uint32 {
	block := make([]uint32, n)
	var v uint32
	for i := range block {
		block[i] = v
		v += step
	}
	return block
}

func TestEncodeDecodeBlockRoundTrip(t *testing.T) {
	block := sortedBlock(format.BlockSize, 37)

	seed, residues := EncodeBlock(block, nil)
	require.Len(t, residues, format.BlockSize-SeedLen)
	assert.Equal(t, block[:SeedLen], seed[:])

	got := DecodeBlock(seed, residues, nil)
	assert.Equal(t, block, got)
}

func TestEncodeDecodeAllZeroBlock(t *testing.T) {
	block := make([]uint32, format.BlockSize)

	seed, residues := EncodeBlock(block, nil)
	assert.Equal(t, uint32(0), MaxResidue(residues))

	got := DecodeBlock(seed, residues, nil)
	assert.Equal(t, block, got)
}

func TestEncodeDecodeUniformStep(t *testing.T) {
	block := sortedBlock(format.BlockSize, 1)

	seed, residues := EncodeBlock(block, nil)
	for _, r := range residues {
		assert.Equal(t, uint32(SeedLen), r)
	}

	got := DecodeBlock(seed, residues, nil)
	assert.Equal(t, block, got)
}

func TestEncodeBlockWrongLengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		EncodeBlock(make([]uint32, format.BlockSize-1), nil)
	})
}

func TestDecodeBlockWrongLengthPanics(t *testing.T) {
	var seed [SeedLen]uint32
	assert.Panics(t, func() {
		DecodeBlock(seed, make([]uint32, 1), nil)
	})
}

func TestMaxResidueEmpty(t *testing.T) {
	assert.Equal(t, uint32(0), MaxResidue(nil))
}

func TestEncodeBlockReusesDst(t *testing.T) {
	block := sortedBlock(format.BlockSize, 5)
	dst := make([]uint32, 0, format.BlockSize)

	_, residues := EncodeBlock(block, dst)
	assert.Equal(t, cap(dst), cap(residues))
}
