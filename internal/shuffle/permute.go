package shuffle

import "github.com/chloroExtractorTeam/fastq-shuffle/internal/rng"

// Permute performs an in-place Fisher-Yates shuffle of idx, driven by
// src (component C4).
//
// It draws j from [0, i), not the conventional [0, i] — matching the
// source implementation this tool reproduces bit-for-bit. That means
// element 0 is only ever moved by swaps from higher positions, and every
// position i >= 1 is always swapped with a lower one: the result is always
// a single cycle (Sattolo's algorithm), so no element keeps its place and
// the permutation is not uniform.
// See §4.4 and §9's open question: a corrected [0, i] draw would require
// new golden outputs, so it is not done here.
func Permute(idx []IndexEntry, src *rng.Source) {
	for i := len(idx) - 1; i >= 1; i-- {
		j := src.Uint64n(uint64(i))
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// WritePermuted writes each record pair addressed by idx, in idx's
// current order, to w. buf is the bucket's backing byte buffer (§4.4,
// final paragraph).
func WritePermuted(buf []byte, idx []IndexEntry, w *PairWriter) error {
	for _, e := range idx {
		a := buf[e.Offset : e.Offset+uint64(e.LenA)]
		b := buf[e.Offset+uint64(e.LenA) : e.Offset+uint64(e.LenA)+uint64(e.LenB)]

		if err := w.WritePair(a, b); err != nil {
			return err
		}
	}

	return nil
}
