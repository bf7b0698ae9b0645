package daytick

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewContainerAppendGetDayRoundTrip verifies the top-level
// convenience wrappers delegate correctly to package container.
func TestNewContainerAppendGetDayRoundTrip(t *testing.T) {
	c, err := NewContainer()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	offs := make([]uint32, 1200)
	for i := range offs {
		offs[i] = uint32(rng.Int63n(23_400_000))
	}
	sort.Slice(offs, func(i, j int) bool { return offs[i] < offs[j] })

	idx, err := c.AppendDay(20260803, offs)
	require.NoError(t, err)
	assert.Equal(t, DayIndex(0), idx)

	key, got, err := c.GetDay(idx)
	require.NoError(t, err)
	assert.Equal(t, uint32(20260803), key)
	assert.Equal(t, offs, got)
}

// TestNewContainerWithOptionsSerializeDeserialize exercises
// WithCompression and WithCapacity through the top-level re-exports.
func TestNewContainerWithOptionsSerializeDeserialize(t *testing.T) {
	c, err := NewContainer(WithCompression(CompressionZstd), WithCapacity(1<<20))
	require.NoError(t, err)

	_, err = c.AppendDay(20260101, []uint32{0, 100, 200, 200, 300})
	require.NoError(t, err)

	blob := c.Serialize()

	loaded, err := Deserialize(blob)
	require.NoError(t, err)
	require.Equal(t, uint64(1), loaded.DayCount())

	key, offs, err := loaded.GetDay(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(20260101), key)
	assert.Equal(t, []uint32{0, 100, 200, 200, 300}, offs)
}

// TestUSEquityCalendarAppendGetTimestamps exercises the calendar-aware
// AppendTimestamps/GetTimestamps path through NewUSEquityCalendar.
func TestUSEquityCalendarAppendGetTimestamps(t *testing.T) {
	loc := time.UTC
	c, err := NewContainer(WithCalendar(NewUSEquityCalendar(loc)))
	require.NoError(t, err)

	day := time.Date(2026, time.August, 3, 0, 0, 0, 0, loc)
	open := day.Add(9*time.Hour + 30*time.Minute)
	timestamps := []time.Time{
		open,
		open.Add(90 * time.Second),
		open.Add(6*time.Hour + 29*time.Minute),
	}

	idx, err := c.AppendTimestamps(20260803, timestamps)
	require.NoError(t, err)

	_, got, err := c.GetTimestamps(idx)
	require.NoError(t, err)
	require.Len(t, got, len(timestamps))
	for i, ts := range timestamps {
		assert.True(t, ts.Equal(got[i]), "timestamp %d: want %s got %s", i, ts, got[i])
	}
}

// TestNewFixedSessionCalendar verifies a custom session window round-trips
// through ToOffset/FromOffset via AppendTimestamps/GetTimestamps.
func TestNewFixedSessionCalendar(t *testing.T) {
	loc := time.UTC
	cal := NewFixedSessionCalendar(loc, 8*time.Hour)
	c, err := NewContainer(WithCalendar(cal))
	require.NoError(t, err)

	day := time.Date(2026, time.March, 2, 8, 0, 1, 0, loc)
	idx, err := c.AppendTimestamps(20260302, []time.Time{day})
	require.NoError(t, err)

	_, got, err := c.GetTimestamps(idx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, day.Equal(got[0]))
}
