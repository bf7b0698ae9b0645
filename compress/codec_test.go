package compress

import (
	"testing"

	"github.com/arloliu/daytick/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionZstd: NewZstdCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
}

func TestCodecRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		{},
		[]byte("a"),
		make([]byte, 4096),
		[]byte("the quick brown fox jumps over the lazy dog, repeated, repeated, repeated"),
	}

	for ct, codec := range allCodecs() {
		for i, payload := range payloads {
			t.Run(ct.String(), func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err, "payload %d", i)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err, "payload %d", i)

				if len(payload) == 0 {
					assert.Empty(t, decompressed)
				} else {
					assert.Equal(t, payload, decompressed)
				}
			})
		}
	}
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "container")
		require.NoError(t, err)
		assert.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "container")
	assert.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	assert.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0xFF))
	assert.Error(t, err)
}

func TestCompressionStats(t *testing.T) {
	s := CompressionStats{OriginalSize: 1000, CompressedSize: 400}
	assert.InDelta(t, 0.4, s.CompressionRatio(), 1e-9)
	assert.InDelta(t, 60.0, s.SpaceSavings(), 1e-9)

	empty := CompressionStats{}
	assert.Equal(t, 0.0, empty.CompressionRatio())
}

func TestNoOpCompressorIsPassthrough(t *testing.T) {
	data := []byte("day payload bytes")
	c := NewNoOpCompressor()

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}
