package compress

// NoOpCompressor is a pass-through codec that returns data unmodified.
//
// It is useful for measuring pipeline overhead without compression and for
// tooling that handles payloads which are already compressed.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying.
//
// The returned slice shares the input's underlying memory; callers that plan
// to keep the result must not modify the input afterwards.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying.
//
// The returned slice shares the input's underlying memory; callers that plan
// to keep the result must not modify the input afterwards.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
