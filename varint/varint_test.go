package varint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenBoundaries(t *testing.T) {
	cases := []struct {
		v   uint32
		len int
	}{
		{0, 1},
		{1, 1},
		{1<<7 - 1, 1},
		{1 << 7, 2},
		{1<<(2*7) - 1, 2},
		{1 << (2 * 7), 3},
		{1<<(3*7) - 1, 3},
		{1 << (3 * 7), 4},
		{1<<(4*7) - 1, 4},
		{1 << (4 * 7), 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.len, Len(c.v), "v=%d", c.v)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16384, 2097152, 4294967295}
	for _, v := range values {
		buf := Put(nil, v)
		assert.Len(t, buf, Len(v))

		got, n := Get(buf)
		require.NotZero(t, n, "v=%d", v)
		assert.Equal(t, v, got)
		assert.Equal(t, Len(v), n)
	}
}

func TestGetTruncated(t *testing.T) {
	buf := Put(nil, 1<<20)
	_, n := Get(buf[:len(buf)-1])
	assert.Zero(t, n)

	_, n = Get(nil)
	assert.Zero(t, n)
}

func TestPutAllGetAllRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 128, 16384, 2097152}
	assert.Equal(t, 11, LenAll(values))

	buf := PutAll(nil, values)
	assert.Len(t, buf, LenAll(values))

	dst := make([]uint32, len(values))
	n := GetAll(buf, dst, len(values))
	assert.Equal(t, len(buf), n)
	assert.Equal(t, values, dst)
}

func TestPutAllGetAllEmpty(t *testing.T) {
	buf := PutAll(nil, nil)
	assert.Empty(t, buf)

	n := GetAll(buf, nil, 0)
	assert.Zero(t, n)
}

func TestGetAllTruncated(t *testing.T) {
	values := []uint32{1, 2, 3}
	buf := PutAll(nil, values)
	dst := make([]uint32, len(values))

	n := GetAll(buf[:len(buf)-1], dst, len(values))
	assert.Zero(t, n)
}
