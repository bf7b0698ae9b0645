package compress

// NoOpCompressor passes day payloads through untouched. It is the
// default codec: a full session of distinct offsets bit-packs to
// near-incompressible bytes, and skipping the copy keeps appends cheap.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is, without copying. The result aliases the
// input, so callers that hold both must not mutate one through the
// other; the container package copies appended bytes into its payload
// buffer immediately, which is why the alias is acceptable there.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is, without copying. The same aliasing
// caveat as Compress applies.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
