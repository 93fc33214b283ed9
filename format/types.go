package format

// RouteMarker prefixes route strings produced with the modern compression
// path. Strings without the marker are decoded the same way; legacy
// compression variants are not supported.
const RouteMarker = '!'

// PaddingChar may trail an encoded route string. It carries no bit value and
// is stripped before decoding.
const PaddingChar = '='

// SerializerLabel identifies the table-serialization family assumed for
// decompressed route payloads.
const SerializerLabel = "AceSerializer"

// PayloadSentinel is the fixed 2-byte marker preceding serialized route
// payloads. It is a sentinel, not a parsed version number.
var PayloadSentinel = [2]byte{0x01, 0x00}

// CompressionType identifies a compression algorithm for route payloads.
type CompressionType uint8

const (
	CompressionNone  CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionFlate CompressionType = 0x2 // CompressionFlate represents raw DEFLATE (RFC 1951), the route-string format.
	CompressionZstd  CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2    CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4   CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionFlate:
		return "Flate"
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
