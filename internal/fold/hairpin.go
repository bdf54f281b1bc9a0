// Package fold holds the approximate secondary-structure scanners:
// hairpins, self- and cross-dimers, 3' end stability. These are O(n²)
// sliding scans over the nearest-neighbor model, not a full folding
// algorithm.
package fold

import (
	"plexer/internal/seq"
	"plexer/internal/thermo"
)

const (
	minStem = 3
	minLoop = 3
)

// hairpin loop entropy penalties, kcal/mol, by loop length
var loopPenalty = map[int]float64{
	3: 5.2,
	4: 4.5,
	5: 4.4,
	6: 4.3,
	7: 4.1,
	8: 4.2,
	9: 4.5,
}

func loopDG(n int) float64 {
	if n < minLoop {
		// unreachable by construction
		return 999
	}
	if p, ok := loopPenalty[n]; ok {
		return p
	}
	return 4.6 + 0.1*float64(n-9)
}

// Hairpin is the most stable fold-back found in a scan.
type Hairpin struct {
	StemLen int
	LoopLen int
	Start   int // index of the first stem base
	End     int // index of the last stem base
	Stem    string
	DG      float64 // kcal/mol, stem duplex plus loop penalty
}

// HairpinScan finds the minimum-ΔG hairpin in raw, or nil when no window
// grows a complementary stem of at least 3 with a loop of at least 3.
// For every start i and end j the stem grows symmetrically outward from
// (i, j-1) while the bases are IUPAC-complementary and the remaining gap
// still fits the loop. The stem is scored as a duplex of the left arm
// concatenated with the reverse complement of the right arm, with the
// same symmetry correction the self-dimer path uses, so hairpins and
// self-dimers share one energy scale.
func HairpinScan(raw string) *Hairpin {
	s := seq.Normalize(raw)
	n := len(s)

	var best *Hairpin
	for i := 0; i < n; i++ {
		for j := i + minStem + minLoop; j <= n; j++ {
			k := 0
			for {
				pi, pj := i+k, j-1-k
				if pj-pi-1 < minLoop {
					break
				}
				if !seq.Complementary(s[pi], s[pj]) {
					break
				}
				k++
			}
			if k < minStem {
				continue
			}

			left := s[i : i+k]
			right := s[j-k : j]
			loopLen := j - i - 2*k
			dg := thermo.DuplexDG37(left+seq.ReverseComplement(right), true) + loopDG(loopLen)
			if best == nil || dg < best.DG {
				best = &Hairpin{
					StemLen: k,
					LoopLen: loopLen,
					Start:   i,
					End:     j - 1,
					Stem:    left,
					DG:      dg,
				}
			}
		}
	}
	return best
}
