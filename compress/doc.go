// Package compress provides the decompression codecs used to unpack route
// payloads, plus the matching compression direction for tooling.
//
// The route pipeline only ever exercises one codec, raw DEFLATE (RFC 1951)
// with no zlib or gzip wrapper, selected by format.CompressionFlate, since
// that is the format the producing addon emits. The remaining codecs (Zstd,
// S2, LZ4, NoOp) round out the family for external tooling that stores or
// re-ships decoded payloads.
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are obtained through GetCodec or CreateCodec keyed by
// format.CompressionType. All codecs are stateless values safe for concurrent
// use; implementations that benefit from reusable internal state (flate
// readers, zstd encoders/decoders, lz4 compressors) keep that state in
// sync.Pool rather than on the codec.
//
// Decompression is the load-bearing direction: it validates the input stream
// and returns an error, with no partial output, when the stream is truncated
// or corrupted.
package compress
