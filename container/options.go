package container

import (
	"github.com/arloliu/daytick/compress"
	"github.com/arloliu/daytick/format"
	"github.com/arloliu/daytick/internal/options"
)

// WithCapacity limits the container's payload buffer to maxBytes; an
// AppendDay that would exceed it fails with errs.ErrCapacity. A limit of
// 0 (the default) means unlimited.
func WithCapacity(maxBytes uint64) Option {
	return options.NoError(func(c *Container) { c.capacity = maxBytes })
}

// WithCompression compresses each day's encoded bytes with t before
// appending them to the payload buffer: directory offsets and GetDay's
// decompression step both account for the compressed length
// transparently. The bit-pack pipeline itself always operates on
// uncompressed residues, compression is a whole-day-bytes post-pass
// only.
func WithCompression(t format.CompressionType) Option {
	return options.New(func(c *Container) error {
		codec, err := compress.CreateCodec(t, "container")
		if err != nil {
			return err
		}
		c.compressionType = t
		c.codec = codec

		return nil
	})
}
