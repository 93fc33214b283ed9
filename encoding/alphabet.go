package encoding

import "github.com/NoleHealth/mdtroute/format"

// RouteAlphabet is the 64-symbol alphabet used by route strings. A symbol's
// position in the string is its 6-bit value (a=0 ... )=63.
const RouteAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789()"

// alphabetValues maps a byte to its 6-bit alphabet value, or -1 for bytes
// outside the alphabet. Initialized once at startup and read-only afterwards,
// so concurrent decodes need no synchronization.
var alphabetValues [256]int16

func init() {
	for i := range alphabetValues {
		alphabetValues[i] = -1
	}
	for i := 0; i < len(RouteAlphabet); i++ {
		alphabetValues[RouteAlphabet[i]] = int16(i)
	}
}

// DecodeAlphabet unpacks an alphabet-encoded route string into raw bytes.
//
// The codec is a least-significant-bit-first bit packer: each symbol
// contributes 6 bits above the bits already buffered, and a byte is emitted
// whenever 8 or more bits are buffered. A trailing group of fewer than 8 bits
// is discarded, so the output length is always floor(6*n/8) for n valid
// symbols.
//
// Trailing '=' padding is stripped first. Characters outside the alphabet are
// skipped as noise rather than rejected, so DecodeAlphabet never fails; noisy
// or short input simply yields fewer bytes.
//
// Parameters:
//   - text: Alphabet-encoded input, without the leading route marker
//
// Returns:
//   - []byte: Decoded bytes (empty slice for empty or all-noise input)
func DecodeAlphabet(text string) []byte {
	for len(text) > 0 && text[len(text)-1] == format.PaddingChar {
		text = text[:len(text)-1]
	}

	out := make([]byte, 0, len(text)*6/8)

	var acc uint32
	var bits uint
	for i := 0; i < len(text); i++ {
		v := alphabetValues[text[i]]
		if v < 0 {
			continue
		}

		acc |= uint32(v) << bits
		bits += 6
		for bits >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			bits -= 8
		}
	}

	return out
}

// EncodeAlphabet packs raw bytes into the route alphabet, the inverse of
// DecodeAlphabet. Each input byte contributes 8 bits above the bits already
// buffered and a symbol is emitted for every 6 buffered bits; a final partial
// group is emitted zero-extended. No '=' padding is appended.
//
// The route pipeline itself is decode-only; the encode direction exists for
// tooling and for constructing test fixtures.
//
// Parameters:
//   - data: Raw bytes to encode
//
// Returns:
//   - string: Alphabet-encoded text, ceil(8*len(data)/6) symbols long
func EncodeAlphabet(data []byte) string {
	out := make([]byte, 0, (len(data)*8+5)/6)

	var acc uint32
	var bits uint
	for _, b := range data {
		acc |= uint32(b) << bits
		bits += 8
		for bits >= 6 {
			out = append(out, RouteAlphabet[acc&0x3f])
			acc >>= 6
			bits -= 6
		}
	}
	if bits > 0 {
		out = append(out, RouteAlphabet[acc&0x3f])
	}

	return string(out)
}
