// Package rng implements the deterministic, seeded random source used to
// drive the external-memory shuffle (component C1 of the design).
//
// The stream is a pure function of the seed: reseeding with the same bytes
// always reproduces the same sequence of draws, on any platform, making the
// whole shuffler bit-for-bit reproducible given the same inputs and seed.
package rng

import (
	"crypto/sha256"
	"strconv"
	"time"
)

// nowUnix is overridable by tests that need a fixed fallback seed.
var nowUnix = func() int64 { return time.Now().Unix() }

// wordsPerBlock is the number of little-endian uint64 words a single
// SHA-256 digest (32 bytes) yields.
const wordsPerBlock = sha256.Size / 8

// Source is a deterministic random stream. The zero value is not usable;
// construct one with [Seed].
//
// A Source is mutated only by its draw methods and Reseed. It is not safe for
// concurrent use — the driver owns one Source per shuffle and reseeds it
// explicitly between phases, rather than relying on a process-wide
// singleton.
type Source struct {
	prev    []byte   // seed bytes, then the previous SHA-256 digest
	counter uint64   // number of blocks drawn so far
	waiting []uint64 // undrawn words from the most recent block, FIFO
}

// Seed installs fresh state derived from s and returns the seed actually
// used. If s is empty, the current wall-clock time in seconds (as decimal
// ASCII) is used instead, matching the CLI default for --seed.
func Seed(s string) (*Source, string) {
	if s == "" {
		s = strconv.FormatInt(nowUnix(), 10)
	}

	src := &Source{
		prev: []byte(s),
	}

	return src, s
}

// Reseed replaces the Source's state in place, as if freshly constructed
// via [Seed]. It is used between shuffle phases, where each bucket's
// permutation must depend only on (seed, bucket id) and not on how many
// draws the distribution pass happened to consume.
func (s *Source) Reseed(seed string) {
	s.prev = []byte(seed)
	s.counter = 0
	s.waiting = s.waiting[:0]
}

// Float64 draws one uint64 from the stream and returns it scaled to
// [0, 1). Only the top 53 bits feed the result, matching math/rand's
// Float64: dividing a full 64-bit value by 2^64 would round up to
// exactly 1.0 for the top 1024 values, breaking the documented range.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Uint64n returns a value in [0, n) drawn from the stream. n must be > 0.
func (s *Source) Uint64n(n uint64) uint64 {
	return uint64(float64(n) * s.Float64())
}

// Uint64 draws the next raw 64-bit word from the stream, refilling the
// queue with a fresh SHA-256 block when it runs dry.
func (s *Source) Uint64() uint64 {
	if len(s.waiting) == 0 {
		s.refill()
	}

	word := s.waiting[0]
	s.waiting = s.waiting[1:]

	return word
}

// refill computes block := SHA-256(ascii(counter) ++ prev), replacing prev
// and appending the block's eight little-endian uint64 words to waiting.
func (s *Source) refill() {
	h := sha256.New()
	h.Write([]byte(strconv.FormatUint(s.counter, 10)))
	h.Write(s.prev)
	block := h.Sum(nil)

	s.prev = block
	s.counter++

	words := make([]uint64, wordsPerBlock)
	for i := range words {
		words[i] = littleEndianUint64(block[i*8 : i*8+8])
	}

	s.waiting = append(s.waiting[:0], words...)
}

func littleEndianUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return v
}

// Salt renders the per-bucket salt the driver appends to the top-level
// seed before reseeding for bucket b, matching the source's literal
// "-1", "0", "1", ... convention (§4.6). b == -1 denotes the in-memory
// bucket; b >= 0 denotes spill bucket b+1.
func Salt(seed string, b int) string {
	return seed + strconv.Itoa(b)
}
