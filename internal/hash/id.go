package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 fingerprint of a decoded route payload.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
