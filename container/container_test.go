package container

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/arloliu/daytick/errs"
	"github.com/arloliu/daytick/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedOffsets(rng *rand.Rand, n int) []uint32 {
	offs := make([]uint32, n)
	for i := range offs {
		offs[i] = uint32(rng.Int63n(format.SessionDurationMS))
	}
	sort.Slice(offs, func(i, j int) bool { return offs[i] < offs[j] })

	return offs
}

func TestAppendGetDayRoundTrip(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	offs := sortedOffsets(rand.New(rand.NewSource(1)), 2500)
	idx, err := c.AppendDay(20260101, offs)
	require.NoError(t, err)
	assert.Equal(t, DayIndex(0), idx)

	key, got, err := c.GetDay(idx)
	require.NoError(t, err)
	assert.Equal(t, uint32(20260101), key)
	assert.Equal(t, offs, got)
}

func TestMultiDayContainerSerializeDeserialize(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	const days = 5
	dateKeys := make([]uint32, days)
	allOffsets := make([][]uint32, days)

	for d := 0; d < days; d++ {
		dateKeys[d] = uint32(20260101 + d)
		allOffsets[d] = sortedOffsets(rng, 1000)

		idx, err := c.AppendDay(dateKeys[d], allOffsets[d])
		require.NoError(t, err)
		assert.Equal(t, DayIndex(d), idx)
	}
	require.Equal(t, uint64(days), c.DayCount())

	serialized := c.Serialize()

	loaded, err := Deserialize(serialized)
	require.NoError(t, err)
	require.Equal(t, uint64(days), loaded.DayCount())

	for d := 0; d < days; d++ {
		key, offs, err := loaded.GetDay(DayIndex(d))
		require.NoError(t, err)
		assert.Equal(t, dateKeys[d], key)
		assert.Equal(t, allOffsets[d], offs)
	}
}

func TestContainerSerializeWithCompressionRoundTrip(t *testing.T) {
	c, err := NewContainer(WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	offs := sortedOffsets(rng, 4000)
	_, err = c.AppendDay(20260202, offs)
	require.NoError(t, err)

	serialized := c.Serialize()
	loaded, err := Deserialize(serialized)
	require.NoError(t, err)

	key, got, err := loaded.GetDay(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(20260202), key)
	assert.Equal(t, offs, got)
}

func TestEmptyContainerSerializeDeserialize(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	serialized := c.Serialize()
	loaded, err := Deserialize(serialized)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), loaded.DayCount())
}

func TestAppendDayRejectsOutOfRangeOffset(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, []uint32{format.SessionDurationMS})
	assert.ErrorIs(t, err, errs.ErrDomainRange)
}

func TestGetDayRejectsOutOfRangeIndex(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, _, err = c.GetDay(0)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestFrozenContainerRejectsAppend(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, []uint32{10, 20})
	require.NoError(t, err)

	c.Serialize()

	_, err = c.AppendDay(2, []uint32{30})
	assert.ErrorIs(t, err, errs.ErrContainerFrozen)
}

func TestReopenAllowsFurtherAppends(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, []uint32{10, 20})
	require.NoError(t, err)
	c.Serialize()

	reopened := c.Reopen()
	idx, err := reopened.AppendDay(2, []uint32{30})
	require.NoError(t, err)
	assert.Equal(t, DayIndex(1), idx)

	// the original frozen container is untouched
	assert.Equal(t, uint64(1), c.DayCount())
}

func TestDuplicateOf(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	idx, err := c.AppendDay(20260101, []uint32{1, 2, 3})
	require.NoError(t, err)

	dup, found := c.DuplicateOf(20260101)
	require.True(t, found)
	assert.Equal(t, idx, dup)

	_, found = c.DuplicateOf(99999999)
	assert.False(t, found)
}

func TestSameContent(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	i1, err := c.AppendDay(1, []uint32{1, 2, 3})
	require.NoError(t, err)
	i2, err := c.AppendDay(2, []uint32{1, 2, 3})
	require.NoError(t, err)
	i3, err := c.AppendDay(3, []uint32{9, 9, 9})
	require.NoError(t, err)

	assert.True(t, c.SameContent(i1, i2))
	assert.False(t, c.SameContent(i1, i3))
}

func TestStatsTracksCompression(t *testing.T) {
	c, err := NewContainer(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	// runs of equal offsets compress well
	offs := make([]uint32, 3000)
	_, err = c.AppendDay(20260101, offs)
	require.NoError(t, err)

	s := c.Stats()
	assert.Equal(t, format.CompressionS2, s.Algorithm)
	assert.Positive(t, s.OriginalSize)
	assert.Less(t, s.CompressedSize, s.OriginalSize)
	assert.Less(t, s.CompressionRatio(), 1.0)

	loaded, err := Deserialize(c.Serialize())
	require.NoError(t, err)
	assert.Equal(t, s, loaded.Stats())
}

func TestStatsUncompressedRatioIsOne(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	_, err = c.AppendDay(1, []uint32{1, 2, 3})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, c.Stats().CompressionRatio(), 1e-9)
}

func TestDeserializeRejectsBadMagic(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)
	_, err = c.AppendDay(1, []uint32{1})
	require.NoError(t, err)

	serialized := c.Serialize()
	serialized[0] ^= 0xFF

	_, err = Deserialize(serialized)
	assert.ErrorIs(t, err, errs.ErrCorrupt)
}

func TestDeserializeRejectsCorruptCRC(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)
	_, err = c.AppendDay(1, []uint32{1})
	require.NoError(t, err)

	serialized := c.Serialize()
	serialized[len(serialized)-1] ^= 0xFF

	_, err = Deserialize(serialized)
	assert.ErrorIs(t, err, errs.ErrCorrupt)
}

func TestWithCapacityRejectsOversizedAppend(t *testing.T) {
	c, err := NewContainer(WithCapacity(8))
	require.NoError(t, err)

	_, err = c.AppendDay(1, make([]uint32, 500))
	assert.ErrorIs(t, err, errs.ErrCapacity)
}
