package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeAlphabet_KnownVector(t *testing.T) {
	// 'a'=0, 'e'=4: LSB-first packing buffers 0b000000 then 0b000100 above
	// it, and the low 8 bits are 0x00. The remaining 4 bits are discarded.
	decoded := DecodeAlphabet("ae")
	require.Equal(t, []byte{0x00}, decoded)
}

func TestDecodeAlphabet_Empty(t *testing.T) {
	require.Empty(t, DecodeAlphabet(""))
}

func TestDecodeAlphabet_PaddingTrimmed(t *testing.T) {
	require.Equal(t, DecodeAlphabet("ae"), DecodeAlphabet("ae=="))
}

func TestDecodeAlphabet_NoiseSkipped(t *testing.T) {
	// Characters outside the alphabet carry no bits and no error.
	require.Equal(t, DecodeAlphabet("ae"), DecodeAlphabet("a!e"))
	require.Equal(t, DecodeAlphabet("ae"), DecodeAlphabet("a\x00\ne "))
	require.Empty(t, DecodeAlphabet("!@#$%^&*"))
}

func TestDecodeAlphabet_OutputLength(t *testing.T) {
	// len(output) == floor(6 * validChars / 8) for any input.
	inputs := []string{"", "a", "ab", "abc", "abcd", "abcde", "zZ9()a", "a!b=", "((()))"}
	for _, input := range inputs {
		valid := 0
		for i := 0; i < len(input); i++ {
			if input[i] != '=' && alphabetValues[input[i]] >= 0 {
				valid++
			}
		}
		require.Len(t, DecodeAlphabet(input), valid*6/8, "input %q", input)
	}
}

func TestDecodeAlphabet_LSBFirstOrdering(t *testing.T) {
	// 'b'=1, 'a'=0: the first symbol occupies the low bits, so the emitted
	// byte is 0x01, not 0x40 as MSB-first concatenation would produce.
	require.Equal(t, []byte{0x01}, DecodeAlphabet("ba"))
}

func TestEncodeAlphabet_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x00},
		{0xff},
		{0x01, 0x00, 0x41, 0x42},
		[]byte("the quick brown fox jumps over the lazy dog"),
	}
	for _, payload := range payloads {
		encoded := EncodeAlphabet(payload)
		require.Equal(t, payload, DecodeAlphabet(encoded), "payload %x", payload)
	}

	// Longer pseudo-random payload
	payload := make([]byte, 1024)
	for i := range payload {
		payload[i] = byte(i*31 + 7)
	}
	require.Equal(t, payload, DecodeAlphabet(EncodeAlphabet(payload)))
}

func TestEncodeAlphabet_AlphabetOnly(t *testing.T) {
	encoded := EncodeAlphabet([]byte{0x00, 0x7f, 0x80, 0xff})
	for i := 0; i < len(encoded); i++ {
		require.GreaterOrEqual(t, alphabetValues[encoded[i]], int16(0), "symbol %q outside alphabet", encoded[i])
	}
}
