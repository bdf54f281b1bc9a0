package fold

import (
	"math"

	"plexer/internal/seq"
	"plexer/internal/thermo"
)

// Dimer is the most stable primer-primer interaction found by a scan.
type Dimer struct {
	Overlap  string // the run's substring of the query strand
	Offset   int    // alignment offset of RC(b) against a
	Touches3 bool   // the run ends on the query's 3' terminal base
	DG       float64
}

// DimerScan slides the reverse complement of b against a at every offset
// and scores every contiguous complementary run of length >= 2 as a
// non-symmetric duplex, returning the globally most negative candidate or
// nil when no run qualifies. Touches3 is computed in one place, at run
// flush: the aligned query index of the run's final base equals len(a)-1.
func DimerScan(rawA, rawB string) *Dimer {
	a := seq.Normalize(rawA)
	b := seq.Normalize(rawB)
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	rb := seq.ReverseComplement(b)

	var best *Dimer
	flush := func(off, qs, qe int) {
		if qe-qs+1 < 2 {
			return
		}
		sub := a[off+qs : off+qe+1]
		dg := thermo.DuplexDG37(sub, false)
		if math.IsNaN(dg) {
			return
		}
		if best == nil || dg < best.DG {
			best = &Dimer{
				Overlap:  sub,
				Offset:   off,
				Touches3: off+qe == len(a)-1,
				DG:       dg,
			}
		}
	}

	for off := -(len(rb) - 1); off <= len(a)-1; off++ {
		qLo := 0
		if -off > qLo {
			qLo = -off
		}
		qHi := len(rb) - 1
		if len(a)-1-off < qHi {
			qHi = len(a) - 1 - off
		}

		runStart := -1
		for q := qLo; q <= qHi; q++ {
			if seq.Compat(a[off+q], rb[q]) {
				if runStart < 0 {
					runStart = q
				}
				continue
			}
			if runStart >= 0 {
				flush(off, runStart, q-1)
				runStart = -1
			}
		}
		if runStart >= 0 {
			flush(off, runStart, qHi)
		}
	}
	return best
}

// SelfDimerScan scans a primer against a second copy of itself.
func SelfDimerScan(raw string) *Dimer {
	return DimerScan(raw, raw)
}

// ThreePrimeDG is the symmetric duplex ΔG of the last window bases,
// a proxy for how tightly the extension end clamps. window defaults to 4.
func ThreePrimeDG(raw string, window int) float64 {
	if window <= 0 {
		window = 4
	}
	s := seq.Normalize(raw)
	if len(s) > window {
		s = s[len(s)-window:]
	}
	return thermo.DuplexDG37(s, true)
}
