// Package shuffle implements the paired external-memory shuffler: the
// block layout, bucket store, Fisher-Yates permutation, distribution
// pass, and driver that together produce a uniformly random permutation
// of paired-end record streams too large to fit in memory.
package shuffle

import "encoding/binary"

// IndexEntrySize is the packed on-disk size of an [IndexEntry]: an 8-byte
// offset plus two 4-byte lengths (§3, §4.3).
const IndexEntrySize = 8 + 4 + 4

// IndexEntry locates one record pair within a contiguous byte buffer: A
// occupies buf[Offset : Offset+LenA], B occupies
// buf[Offset+LenA : Offset+LenA+LenB].
type IndexEntry struct {
	Offset uint64
	LenA   uint32
	LenB   uint32
}

// AppendTo appends the little-endian packed form of e to buf and returns
// the extended slice.
func (e IndexEntry) AppendTo(buf []byte) []byte {
	var tmp [IndexEntrySize]byte
	binary.LittleEndian.PutUint64(tmp[0:8], e.Offset)
	binary.LittleEndian.PutUint32(tmp[8:12], e.LenA)
	binary.LittleEndian.PutUint32(tmp[12:16], e.LenB)

	return append(buf, tmp[:]...)
}

// DecodeIndexEntry unpacks one [IndexEntry] from the front of buf, which
// must contain at least [IndexEntrySize] bytes.
func DecodeIndexEntry(buf []byte) IndexEntry {
	return IndexEntry{
		Offset: binary.LittleEndian.Uint64(buf[0:8]),
		LenA:   binary.LittleEndian.Uint32(buf[8:12]),
		LenB:   binary.LittleEndian.Uint32(buf[12:16]),
	}
}

// DecodeIndex unpacks a full index file's contents into a slice of
// entries, in file order. buf's length must be a multiple of
// [IndexEntrySize].
func DecodeIndex(buf []byte) []IndexEntry {
	n := len(buf) / IndexEntrySize
	entries := make([]IndexEntry, n)

	for i := range entries {
		entries[i] = DecodeIndexEntry(buf[i*IndexEntrySize:])
	}

	return entries
}
