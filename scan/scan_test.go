package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NoleHealth/mdtroute/format"
)

func TestExtract_SentinelStripped(t *testing.T) {
	rec := Extract([]byte{0x01, 0x00, 0x41, 0x42})
	require.Equal(t, "4142", rec.RawHex)
	require.Equal(t, format.SerializerLabel, rec.Format)
	require.Equal(t, PartialParseNotice, rec.Notice)
}

func TestExtract_NoSentinel(t *testing.T) {
	// Bytes without the 0x01 0x00 prefix are scanned unchanged.
	rec := Extract([]byte{0x41, 0x42})
	require.Equal(t, "4142", rec.RawHex)

	// A lone 0x01 is not the sentinel.
	rec = Extract([]byte{0x01})
	require.Equal(t, "01", rec.RawHex)
}

func TestExtract_Empty(t *testing.T) {
	rec := Extract(nil)
	require.Equal(t, "", rec.RawHex)
	require.Equal(t, format.SerializerLabel, rec.Format)
	require.Empty(t, rec.Error)
	require.False(t, rec.ContainsWeekInfo)
}

func TestExtract_PresenceFlags(t *testing.T) {
	rec := Extract([]byte("\x01\x00...week...objects..."))
	require.True(t, rec.ContainsWeekInfo)
	require.True(t, rec.ContainsObjects)
	require.False(t, rec.ContainsPulls)

	rec = Extract([]byte("pulls only"))
	require.False(t, rec.ContainsWeekInfo)
	require.False(t, rec.ContainsObjects)
	require.True(t, rec.ContainsPulls)
}

func TestExtract_NumericFields(t *testing.T) {
	rec := Extract([]byte("\x01\x00^SdungeonIdx^N42^Sweek^N3^Sdifficulty^N18"))
	require.Equal(t, "42", rec.DungeonID)
	require.Equal(t, "3", rec.Week)
	require.Equal(t, "18", rec.Difficulty)
}

func TestExtract_AdjacentDigits(t *testing.T) {
	rec := Extract([]byte("dungeonIdx42"))
	require.Equal(t, "42", rec.DungeonID)
}

func TestExtract_DigitsNotRequired(t *testing.T) {
	// Anchors with no digits anywhere after them leave the field unset.
	rec := Extract([]byte("dungeonIdx and nothing numeric"))
	require.Empty(t, rec.DungeonID)
	require.Empty(t, rec.Week)
	require.Empty(t, rec.Difficulty)
}

func TestExtract_FirstMatchWins(t *testing.T) {
	rec := Extract([]byte("week^N7 ... week^N9"))
	require.Equal(t, "7", rec.Week)
	require.True(t, rec.ContainsWeekInfo)
}

func TestExtract_NonAdjacentDigitRun(t *testing.T) {
	// The digit run does not have to follow the anchor immediately.
	rec := Extract([]byte("difficulty^^N^S25x9"))
	require.Equal(t, "25", rec.Difficulty)
}

func TestDigitRunAfter(t *testing.T) {
	v, ok := digitRunAfter([]byte("week123abc456"), []byte("week"))
	require.True(t, ok)
	require.Equal(t, "123", v)

	_, ok = digitRunAfter([]byte("no anchor here"), []byte("week"))
	require.False(t, ok)

	_, ok = digitRunAfter([]byte("week only text"), []byte("week"))
	require.False(t, ok)
}

func TestExtract_LargePayload(t *testing.T) {
	payload := []byte("\x01\x00" + strings.Repeat("x", 64*1024) + "dungeonIdx7")
	rec := Extract(payload)
	require.Equal(t, "7", rec.DungeonID)
	require.Len(t, rec.RawHex, 2*(64*1024+len("dungeonIdx7")))
}
