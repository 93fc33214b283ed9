package scan

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/NoleHealth/mdtroute/format"
)

// PartialParseNotice is attached to every successfully scanned record to make
// clear the record is a heuristic projection, not a full deserialization.
const PartialParseNotice = "partial parse only; full AceSerializer decoding is not implemented"

// Record is the lossy projection of a decompressed route payload recovered by
// Extract. Numeric fields hold the digit run found after their anchor token
// and are absent (empty, omitted from JSON) when no match was found.
type Record struct {
	Format string `json:"format,omitempty"`
	RawHex string `json:"raw_hex"`
	Notice string `json:"notice,omitempty"`
	Error  string `json:"error,omitempty"`

	DungeonID  string `json:"dungeon_id,omitempty"`
	Week       string `json:"week,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`

	ContainsWeekInfo bool `json:"contains_week_info,omitempty"`
	ContainsObjects  bool `json:"contains_objects,omitempty"`
	ContainsPulls    bool `json:"contains_pulls,omitempty"`
}

// presenceRules maps literal substrings to the presence flag they set. The
// payload is scanned as raw bytes; the tokens are ASCII so no text decoding
// is involved.
var presenceRules = []struct {
	token  []byte
	assign func(*Record)
}{
	{[]byte("week"), func(r *Record) { r.ContainsWeekInfo = true }},
	{[]byte("objects"), func(r *Record) { r.ContainsObjects = true }},
	{[]byte("pulls"), func(r *Record) { r.ContainsPulls = true }},
}

// numericRules is the fixed, ordered rule set for numeric field extraction:
// find the anchor token, then capture the first decimal digit run anywhere
// after it. Only the first match per field is kept.
var numericRules = []struct {
	anchor []byte
	assign func(*Record, string)
}{
	{[]byte("dungeonIdx"), func(r *Record, v string) { r.DungeonID = v }},
	{[]byte("week"), func(r *Record, v string) { r.Week = v }},
	{[]byte("difficulty"), func(r *Record, v string) { r.Difficulty = v }},
}

// Extract recovers a best-effort partial record from a decompressed route
// payload without implementing the full serialization grammar.
//
// The 2-byte payload sentinel (0x01 0x00) is stripped when present, then the
// remaining bytes are scanned for the known literal tokens and digit runs.
// The record always carries the assumed format label, a hex dump of the
// scanned bytes, and a notice that parsing is partial.
//
// Extract never fails: an unexpected internal panic degrades to a record
// holding only the hex dump and an error description.
//
// Parameters:
//   - payload: Decompressed route payload
//
// Returns:
//   - *Record: The extracted partial record, never nil
func Extract(payload []byte) (rec *Record) {
	defer func() {
		if r := recover(); r != nil {
			rec = &Record{
				RawHex: hex.EncodeToString(payload),
				Error:  fmt.Sprintf("failed to scan serialized data: %v", r),
			}
		}
	}()

	data := payload
	if len(data) >= 2 && data[0] == format.PayloadSentinel[0] && data[1] == format.PayloadSentinel[1] {
		data = data[2:]
	}

	rec = &Record{
		Format: format.SerializerLabel,
		RawHex: hex.EncodeToString(data),
		Notice: PartialParseNotice,
	}

	for _, rule := range presenceRules {
		if bytes.Contains(data, rule.token) {
			rule.assign(rec)
		}
	}

	for _, rule := range numericRules {
		if v, ok := digitRunAfter(data, rule.anchor); ok {
			rule.assign(rec, v)
		}
	}

	return rec
}

// digitRunAfter locates the first occurrence of anchor in data and returns
// the first run of decimal digits found at or after the anchor's end. The
// digits need not be adjacent to the anchor.
func digitRunAfter(data, anchor []byte) (string, bool) {
	idx := bytes.Index(data, anchor)
	if idx < 0 {
		return "", false
	}

	rest := data[idx+len(anchor):]
	start := -1
	for i := 0; i < len(rest); i++ {
		if rest[i] >= '0' && rest[i] <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := start
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}

	return string(rest[start:end]), true
}
