// Package scan recovers structured fields from decompressed route payloads.
//
// Payloads are AceSerializer-family serialized tables. Rather than implement
// that grammar (type tags, string interning, nested references), this package
// applies a fixed set of heuristic rules against the raw bytes: literal
// substring checks for presence flags and anchor-then-digit-run scans for
// numeric fields. The result is an intentionally lossy projection; every
// record says so via its notice field.
package scan
