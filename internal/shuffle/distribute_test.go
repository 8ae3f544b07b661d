package shuffle

import (
	"testing"

	"github.com/chloroExtractorTeam/fastq-shuffle/internal/rng"
)

func TestChooseBucket_StaysWithinRange(t *testing.T) {
	src, _ := rng.Seed("distribute-range")

	for i := 0; i < 2000; i++ {
		b := ChooseBucket(5, src)
		if b < 0 || b > 5 {
			t.Fatalf("ChooseBucket(5, ...) = %d, out of [0,5]", b)
		}
	}
}

func TestChooseBucket_ZeroBucketsAlwaysPicksMemory(t *testing.T) {
	src, _ := rng.Seed("distribute-zero")

	for i := 0; i < 100; i++ {
		if b := ChooseBucket(0, src); b != 0 {
			t.Fatalf("ChooseBucket(0, ...) = %d, want 0", b)
		}
	}
}

func TestChooseBucket_IsDeterministicForFixedSeed(t *testing.T) {
	srcA, _ := rng.Seed("distribute-determinism")
	srcB, _ := rng.Seed("distribute-determinism")

	for i := 0; i < 50; i++ {
		a := ChooseBucket(4, srcA)
		b := ChooseBucket(4, srcB)

		if a != b {
			t.Fatalf("draw %d diverged: %d vs %d", i, a, b)
		}
	}
}
