package compress

// ZstdCompressor favors ratio over speed: the right codec for archival
// containers holding months of sessions, where days are appended once
// and read back rarely.
//
// Two implementations exist behind build tags: a cgo binding
// (zstd_cgo.go) when cgo is available, and a pure-Go fallback
// (zstd_pure.go) otherwise. Both produce standard Zstandard frames, so
// containers compressed by one decode with the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
