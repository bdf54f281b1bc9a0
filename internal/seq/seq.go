// Package seq has primitives for IUPAC-encoded DNA sequences: normalization,
// base-set expansion, complementation and simple composition checks. Every
// other package builds on these.
package seq

import "strings"

// iupacMask maps each accepted symbol to its concrete base set.
// bit0=A bit1=C bit2=G bit3=T
var iupacMask [256]byte

// complement maps each IUPAC symbol to its ambiguity-aware complement.
var complement [256]byte

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('R', 1|4)   // A/G
	set('Y', 2|8)   // C/T
	set('S', 2|4)   // C/G
	set('W', 1|8)   // A/T
	set('K', 4|8)   // G/T
	set('M', 1|2)   // A/C
	set('B', 2|4|8) // C/G/T
	set('D', 1|4|8) // A/G/T
	set('H', 1|2|8) // A/C/T
	set('V', 1|2|4) // A/C/G
	set('N', 1|2|4|8)

	comp := func(a, b byte) { complement[a] = b; complement[b] = a }
	comp('A', 'T')
	comp('C', 'G')
	comp('R', 'Y')
	comp('K', 'M')
	comp('B', 'V')
	comp('D', 'H')
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['N'] = 'N'
}

// Normalize uppercases raw and keeps only accepted symbols: the 15 IUPAC
// codes plus U (mapped to T) and the extended I/P/X codes (mapped to N).
// Everything else, whitespace and digits included, is dropped. The result
// may be empty.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch {
		case c == 'U':
			c = 'T'
		case c == 'I' || c == 'P' || c == 'X':
			c = 'N'
		}
		if iupacMask[c] != 0 {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// BaseSet expands an IUPAC symbol into its concrete bases, in A,C,G,T
// order. Unknown symbols expand to nothing.
func BaseSet(sym byte) []byte {
	m := iupacMask[sym]
	if m == 0 {
		return nil
	}
	out := make([]byte, 0, 4)
	if m&1 != 0 {
		out = append(out, 'A')
	}
	if m&2 != 0 {
		out = append(out, 'C')
	}
	if m&4 != 0 {
		out = append(out, 'G')
	}
	if m&8 != 0 {
		out = append(out, 'T')
	}
	return out
}

// Compat reports whether two symbols could stand for the same concrete
// base, ie their base sets intersect.
func Compat(a, b byte) bool {
	return iupacMask[a]&iupacMask[b] != 0
}

// Complementary reports whether a could pair with b in a duplex: a's base
// set intersects the base set of b's complement.
func Complementary(a, b byte) bool {
	return iupacMask[a]&iupacMask[complement[b]] != 0
}

// Complement returns the ambiguity-aware complement. Symbols without a
// complement entry become N.
func Complement(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := complement[s[i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}

// ReverseComplement reverses s and complements each symbol.
func ReverseComplement(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}

// GCPct is the percentage of G and C symbols in s, 0 for an empty string.
func GCPct(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s)) * 100
}

// HasHomopolymer reports whether any maximal run of a single concrete base
// (A, C, G or T, case-insensitive) reaches maxRun. maxRun of 1 or less is
// never a homopolymer.
func HasHomopolymer(s string, maxRun int) bool {
	if maxRun <= 1 {
		return false
	}
	run := 0
	var last byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			run = 0
			last = 0
			continue
		}
		if c == last {
			run++
		} else {
			run = 1
			last = c
		}
		if run >= maxRun {
			return true
		}
	}
	return false
}
