// Package format defines the small set of wire-level enums and constants
// shared across daytick's codecs and container layout: the day-block bit
// width convention, the optional payload compression selector, and the
// serialized container's magic/version numbers.
package format

// CompressionType selects the codec used to compress an assembled day's
// bytes before it is appended to a container's payload buffer. It has no
// effect on the bit-pack pipeline itself, which always operates on
// uncompressed residues.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores day bytes unmodified.
	CompressionZstd CompressionType = 0x2 // CompressionZstd uses Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 uses the S2 (Snappy-compatible) codec.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 uses LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

const (
	// Magic identifies a serialized daytick container: ASCII "TMS1".
	Magic uint32 = 0x544D5331
	// Version is the current serialized container format version. The
	// format is versioned but not frozen: a version bump may change the
	// layout incompatibly.
	Version uint16 = 1
)

// LaneWidth is the number of 32-bit lanes processed per SIMD vector by the
// delta coder and bit-pack codec (8 lanes for 256-bit vectors). It is
// baked into BlockSize below; porting to a different vector width means
// picking a new BlockSize that stays a multiple of 32*LaneWidth.
const LaneWidth = 8

// BlockSize is the fixed number of offsets per delta/bit-pack block.
const BlockSize = 256

// MaxBitWidth is the largest representable residue bit-width.
const MaxBitWidth = 32

// SessionDurationMS is the length of the fixed intraday session window in
// milliseconds (09:30 to 16:00, 6.5 hours), and therefore one past the
// maximum valid offset.
const SessionDurationMS = 23_400_000
