//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses one day payload as a Zstandard frame at level 3,
// the speed/ratio knee for bit-packed payloads.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a day payload from a Zstandard frame.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
