// Package mdtroute decodes Mythic Dungeon Tools route strings into an
// inspectable structured representation.
//
// Route strings are the chat-shareable encoding of a planned dungeon run:
// a serialized table, deflate-compressed, packed into a chat-safe 64-symbol
// alphabet, and prefixed with a '!' marker. This package reverses the outer
// two layers exactly and recovers the inner layer heuristically:
//
//	text --(alphabet codec)--> bytes --(raw deflate)--> bytes --(field scan)--> record
//
// # Basic Usage
//
//	result := mdtroute.Decode("!fBvtpUjmq0FrbH)aS9X...")
//	if result.Failed() {
//	    fmt.Println(result.Error)
//	    return
//	}
//	fmt.Println(result.RouteData.DungeonID, result.Metadata.CompressionRatio)
//
// Decode never returns an error and never panics on malformed input: all
// failures are represented in the returned envelope. The pipeline is purely
// functional, so concurrent calls on independent inputs need no
// synchronization.
//
// # Package Structure
//
// The root package sequences the pipeline. The stages live in subpackages:
// encoding (alphabet codec), compress (decompression codecs), and scan
// (heuristic field extraction). See each package's documentation for the
// stage contracts.
package mdtroute

import (
	"fmt"
	"math"

	"github.com/NoleHealth/mdtroute/compress"
	"github.com/NoleHealth/mdtroute/encoding"
	"github.com/NoleHealth/mdtroute/format"
	"github.com/NoleHealth/mdtroute/internal/hash"
	"github.com/NoleHealth/mdtroute/scan"
)

// truncateLimit bounds the input echo in failure envelopes.
const truncateLimit = 100

var flateCodec = compress.NewFlateCompressor()

// Decode runs the full route pipeline on the given route string and returns
// a result envelope.
//
// The leading '!' marker is stripped when present; input without the marker
// is decoded as-is. Decompression failure is the only hard failure and
// produces a failure envelope; anomalies in the alphabet codec or the field
// scanner degrade silently instead.
//
// Parameters:
//   - route: The encoded route string, with or without the leading marker
//
// Returns:
//   - *Result: Success envelope (metadata + route data) or failure envelope
//     (error + truncated input echo), never nil
func Decode(route string) *Result {
	body := route
	if len(body) > 0 && body[0] == format.RouteMarker {
		body = body[1:]
	}

	packed := encoding.DecodeAlphabet(body)

	payload, err := flateCodec.Decompress(packed)
	if err != nil {
		return &Result{
			Error:          fmt.Sprintf("failed to decode route string: %v", err),
			OriginalString: truncate(route),
		}
	}

	return &Result{
		Metadata: &Metadata{
			OriginalLength:     len(route),
			CompressedLength:   len(packed),
			DecompressedLength: len(payload),
			CompressionRatio:   compressionRatio(len(packed), len(payload)),
			Fingerprint:        fmt.Sprintf("%016x", hash.Sum(payload)),
		},
		RouteData: scan.Extract(payload),
	}
}

// compressionRatio returns compressed/decompressed rounded to two decimal
// places, or 0 for an empty decompressed payload.
func compressionRatio(compressedLen, decompressedLen int) float64 {
	if decompressedLen == 0 {
		return 0
	}

	return math.Round(float64(compressedLen)/float64(decompressedLen)*100) / 100
}

func truncate(route string) string {
	if len(route) > truncateLimit {
		return route[:truncateLimit] + "..."
	}

	return route
}
