package thermo

import (
	"math"

	"plexer/internal/seq"
)

// EffectiveMonovalent folds Mg2+ into a single Na+-equivalent molar
// concentration: (Na_mM + 4·sqrt(Mg_mM)) / 1000. Negative Mg is treated
// as absent.
func EffectiveMonovalent(naMM, mgMM float64) float64 {
	return (naMM + 4.0*math.Sqrt(math.Max(mgMM, 0))) / 1000.0
}

// TmNN is the salt-corrected nearest-neighbor melting temperature in °C.
// naMM and mgMM are in mM, concNM is total primer concentration in nM.
// NaN when the sequence is under 2 nt, the concentration is non-positive
// or the effective monovalent concentration is non-positive.
func TmNN(raw string, naMM, mgMM, concNM float64) float64 {
	s := seq.Normalize(raw)
	if len(s) < 2 || concNM <= 0 {
		return math.NaN()
	}
	naEq := EffectiveMonovalent(naMM, mgMM)
	if naEq <= 0 {
		return math.NaN()
	}
	est := AccumulateWorstCase(s)
	if est == nil {
		return math.NaN()
	}

	cp := concNM * 1e-9 // mol/L
	dsEff := est.DS + Rcal*math.Log(cp/4.0) + 0.368*float64(len(s)-1)*math.Log(naEq)
	tmK := est.DH * 1000.0 / dsEff
	return tmK - 273.15
}
