// Package compress provides optional compression codecs applied to an
// assembled day's encoded bytes before it is appended to a container's
// payload buffer.
//
// Compression here is a second, independent stage on top of the bit-pack
// pipeline (domain mapping, block segmentation, lane delta, bit-pack,
// varint tail): the bit-pack codec already exploits the structure of
// intraday timestamp residues, and general-purpose compression mops up
// whatever redundancy remains across a whole day (repeated headers,
// runs of identical bit-widths, degenerate all-zero tails).
//
// Four codecs are available, selected per-container via
// format.CompressionType:
//
//   - None: no compression, fastest, used when the bit-pack output is
//     already near-incompressible (typical for a full session of
//     distinct offsets).
//   - Zstd: best ratio, moderate speed; suited to cold storage and
//     archival days.
//   - S2: a fast Snappy-compatible codec, balanced for hot-path appends.
//   - LZ4: fastest decompression, used when read latency dominates.
//
// All four implement the same Codec interface:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// CreateCodec and GetCodec construct a Codec from a format.CompressionType.
// The container package calls CreateCodec when a container is configured
// (and when one is deserialized) and runs the resulting Codec when a day
// is appended with compression enabled and when a compressed day is later
// read back; it never compresses the individual blocks, only the whole
// assembled day,
// since compressing already bit-packed residues block-by-block would
// destroy the fixed-stride layout random access depends on.
package compress
