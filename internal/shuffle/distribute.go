package shuffle

import "github.com/chloroExtractorTeam/fastq-shuffle/internal/rng"

// ChooseBucket draws the bucket id for one incoming record pair, uniform
// over {0, 1, ..., k} where k is the number of spill buckets (component
// C5). 0 is the in-memory bucket; each pair lands anywhere with
// probability 1/(k+1), giving the in-memory bucket equal footing with
// every spill bucket.
func ChooseBucket(k int, src *rng.Source) int {
	return int(src.Uint64n(uint64(k + 1)))
}
