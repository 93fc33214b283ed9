package compress

// ZstdCompressor provides Zstandard compression, the best ratio in the codec
// family at a moderate speed cost. Suitable for archival of decoded route
// payloads.
//
// Two implementations exist behind build tags: a cgo binding (build tag
// zstdcgo) and a pure-Go implementation (the default). Both produce
// interoperable streams.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
