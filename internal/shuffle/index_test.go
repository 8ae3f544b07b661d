package shuffle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndexEntry_RoundTrip(t *testing.T) {
	entries := []IndexEntry{
		{Offset: 0, LenA: 10, LenB: 20},
		{Offset: 30, LenA: 0, LenB: 0},
		{Offset: 1 << 40, LenA: 1<<32 - 1, LenB: 5},
	}

	var packed []byte
	for _, e := range entries {
		packed = e.AppendTo(packed)
	}

	if len(packed) != len(entries)*IndexEntrySize {
		t.Fatalf("packed length = %d, want %d", len(packed), len(entries)*IndexEntrySize)
	}

	decoded := DecodeIndex(packed)

	if diff := cmp.Diff(entries, decoded); diff != "" {
		t.Fatalf("decoded index differs from original (-want +got):\n%s", diff)
	}
}

func TestIndexEntrySize_MatchesFieldWidths(t *testing.T) {
	// u64 offset (8 bytes) + u32 lenA (4 bytes) + u32 lenB (4 bytes) = 16.
	if IndexEntrySize != 16 {
		t.Fatalf("IndexEntrySize = %d, want 16", IndexEntrySize)
	}
}
