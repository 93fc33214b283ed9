package mdtroute

import "github.com/NoleHealth/mdtroute/scan"

// Metadata describes the size transitions of a successful decode.
type Metadata struct {
	// OriginalLength is the character count of the input route string,
	// including the leading marker if present.
	OriginalLength int `json:"original_length"`
	// CompressedLength is the byte count after alphabet decoding.
	CompressedLength int `json:"compressed_length"`
	// DecompressedLength is the byte count after inflating.
	DecompressedLength int `json:"decompressed_length"`
	// CompressionRatio is compressed over decompressed length, rounded to two
	// decimal places; 0 when the decompressed payload is empty.
	CompressionRatio float64 `json:"compression_ratio"`
	// Fingerprint is the xxHash64 of the decompressed payload as 16 hex
	// digits. Identical routes share a fingerprint, so external tooling can
	// dedup without re-decoding.
	Fingerprint string `json:"fingerprint"`
}

// Result is the envelope returned by Decode. Exactly one of the two shapes is
// populated: Metadata and RouteData on success, Error and OriginalString on
// failure.
type Result struct {
	Metadata  *Metadata    `json:"metadata,omitempty"`
	RouteData *scan.Record `json:"route_data,omitempty"`

	// Error holds the failure message when the compressed stream could not
	// be inflated.
	Error string `json:"error,omitempty"`
	// OriginalString echoes the failing input, truncated to 100 characters
	// with a "..." suffix when longer.
	OriginalString string `json:"original_string,omitempty"`
}

// Failed reports whether the result is a failure envelope.
func (r *Result) Failed() bool {
	return r.Error != ""
}
