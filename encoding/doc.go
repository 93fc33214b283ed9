// Package encoding implements the text-to-binary transform used by route
// strings.
//
// Route strings carry compressed binary data through chat channels, so the
// producer packs the bytes into a custom 64-symbol alphabet (a-z, A-Z, 0-9,
// and the two parentheses) that survives chat transport unmodified. This
// package provides the decode direction used by the route pipeline and the
// matching encode direction for tooling.
//
// The packing order is least-significant-bit first: symbols fill a bit
// accumulator from the low end and whole bytes are emitted as they complete.
// A reference implementation that concatenates per-symbol 6-bit strings
// most-significant-bit first produces different bytes for the same input;
// that ordering is a known defect and is not reproduced here.
//
// The codec never fails: '=' padding is stripped, characters outside the
// alphabet are skipped as transport noise, and a trailing sub-byte group of
// bits is discarded.
package encoding
