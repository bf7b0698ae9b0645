package compress

import (
	"fmt"

	"github.com/arloliu/daytick/format"
)

// Compressor compresses an assembled day's encoded bytes.
//
// Day payloads are already bit-packed, so the redundancy left for a
// general-purpose codec is structural: repeated headers, runs of
// identical width bytes, zero padding, and degenerate all-zero blocks.
// Implementations are tuned for payloads of a few KB per day.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated,
	//     except that NoOpCompressor returns the input slice itself
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a compressed day payload.
//
// Separate from Compressor because the two sides have asymmetric
// resource profiles: a container that only reads never pays for encoder
// state, and decode-heavy callers can pool decoders independently.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching
	// Compressor. It returns an error if the input is corrupted or was
	// compressed with an incompatible algorithm.
	//
	// Memory management mirrors Compress: the returned slice is
	// caller-owned (the input itself for NoOpCompressor, otherwise newly
	// allocated), and the input is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. The container package holds one Codec
// per container and runs every appended or fetched day through it.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats summarizes one compression pass over a day payload,
// for callers that monitor storage efficiency across appends.
type CompressionStats struct {
	// Algorithm identifies the codec used.
	Algorithm format.CompressionType

	// OriginalSize is the assembled day's byte length before compression.
	OriginalSize int64

	// CompressedSize is the byte length actually appended to the payload
	// buffer.
	CompressedSize int64
}

// CompressionRatio returns compressed size over original size. Values
// below 1.0 indicate the codec helped; bit-packed days with high entropy
// routinely land near 1.0, which is why CompressionNone is the default.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a Codec for the given compression type. target
// names the usage site and only appears in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the given compression
// type. All built-ins are stateless or internally pooled, so sharing one
// instance across containers is safe.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
