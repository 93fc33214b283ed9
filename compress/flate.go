package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/NoleHealth/mdtroute/internal/pool"
)

// flateReaderPool pools flate readers for reuse. The flate package supports
// resetting a reader onto a new source stream, which avoids rebuilding the
// Huffman decoding state on every decompression.
var flateReaderPool = sync.Pool{
	New: func() any {
		return flate.NewReader(nil)
	},
}

// FlateCompressor provides raw DEFLATE (RFC 1951) compression and
// decompression with no zlib or gzip container.
//
// This is the compression format of modern route strings: the payload that
// comes out of the alphabet codec is a bare deflate stream with no header or
// checksum wrapper.
type FlateCompressor struct{}

var _ Codec = (*FlateCompressor)(nil)

// NewFlateCompressor creates a new raw-deflate codec.
func NewFlateCompressor() FlateCompressor {
	return FlateCompressor{}
}

// Compress compresses the input data into a raw deflate stream.
func (c FlateCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	w, err := flate.NewWriter(buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("flate writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("flate compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flate compression failed: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress inflates a raw deflate stream.
//
// Returns an error if the stream is truncated, references output that was
// never produced, or otherwise violates the DEFLATE grammar. No partial
// output is returned on failure. A zero-length input is a truncated stream
// (the grammar requires at least a final block) and fails like any other
// malformed input.
func (c FlateCompressor) Decompress(data []byte) ([]byte, error) {
	r, _ := flateReaderPool.Get().(io.ReadCloser)
	defer flateReaderPool.Put(r)

	// flate.NewReader always returns a Resetter.
	if err := r.(flate.Resetter).Reset(bytes.NewReader(data), nil); err != nil {
		return nil, fmt.Errorf("flate decompression failed: %w", err)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("flate decompression failed: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
