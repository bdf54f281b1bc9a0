// Package thermo implements nearest-neighbor duplex thermodynamics
// (SantaLucia unified parameters) with worst-case handling of IUPAC
// ambiguity codes. Units: dH kcal/mol, dS cal/(K·mol), Tm °C.
package thermo

import (
	"math"

	"plexer/internal/seq"
)

const (
	// gas constant, cal/(K·mol)
	Rcal = 1.987

	// reference temperature for ΔG37, kelvin
	RefTempK = 310.15
)

// Watson-Crick propagation parameters at 1 M Na+, keyed by the top-strand
// dinucleotide 5'→3'.
var nnDH = map[string]float64{
	"AA": -7.9, "TT": -7.9, "AT": -7.2, "TA": -7.2,
	"CA": -8.5, "TG": -8.5, "GT": -8.4, "AC": -8.4,
	"CT": -7.8, "AG": -7.8, "GA": -8.2, "TC": -8.2,
	"CG": -10.6, "GC": -9.8, "GG": -8.0, "CC": -8.0,
}

var nnDS = map[string]float64{
	"AA": -22.2, "TT": -22.2, "AT": -20.4, "TA": -21.3,
	"CA": -22.7, "TG": -22.7, "GT": -22.4, "AC": -22.4,
	"CT": -21.0, "AG": -21.0, "GA": -22.2, "TC": -22.2,
	"CG": -27.2, "GC": -24.4, "GG": -19.9, "CC": -19.9,
}

const (
	initDH = 0.2
	initDS = -5.7

	// self-complementary duplex symmetry correction
	symmetryDS = -1.4
)

// Estimate is the accumulated enthalpy/entropy of a duplex.
type Estimate struct {
	DH float64 // kcal/mol
	DS float64 // cal/(K·mol)
}

// DG37 is the free energy of the estimate at 37 °C.
func (e Estimate) DG37() float64 {
	return dg37(e.DH, e.DS)
}

func dg37(dh, ds float64) float64 {
	return dh - RefTempK*ds/1000.0
}

// AccumulateWorstCase sums dH/dS over every dinucleotide step of the
// normalized sequence. Ambiguity codes are resolved per step by
// enumerating the cartesian product of both positions' base sets and
// keeping the entry with the lowest ΔG37, ie the most stable concrete
// reading. Returns nil when the normalized sequence is shorter than 2 nt
// or a step has no entry in the table.
func AccumulateWorstCase(raw string) *Estimate {
	s := seq.Normalize(raw)
	if len(s) < 2 {
		return nil
	}

	var dH, dS float64
	for i := 0; i < len(s)-1; i++ {
		left := seq.BaseSet(s[i])
		right := seq.BaseSet(s[i+1])

		bestG := math.Inf(1)
		var bestH, bestS float64
		for _, a := range left {
			for _, b := range right {
				key := string([]byte{a, b})
				dh, okH := nnDH[key]
				ds, okS := nnDS[key]
				if !okH || !okS {
					continue
				}
				if g := dg37(dh, ds); g < bestG {
					bestG, bestH, bestS = g, dh, ds
				}
			}
		}
		if math.IsInf(bestG, 1) {
			// no concrete pairing for this step
			return nil
		}
		dH += bestH
		dS += bestS
	}

	dH += initDH
	dS += initDS
	return &Estimate{DH: dH, DS: dS}
}

// DuplexDG37 is the free energy of the duplex at 37 °C, with the entropy
// reduced by the symmetry correction when the duplex is self-complementary.
// NaN when the sequence cannot be accumulated.
func DuplexDG37(raw string, symmetric bool) float64 {
	est := AccumulateWorstCase(raw)
	if est == nil {
		return math.NaN()
	}
	ds := est.DS
	if symmetric {
		ds += symmetryDS
	}
	return dg37(est.DH, ds)
}
