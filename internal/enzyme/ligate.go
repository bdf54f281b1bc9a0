package enzyme

import "plexer/internal/seq"

// EndType classifies a digestion terminus.
type EndType int

const (
	EndUnknown EndType = iota
	EndBlunt
	EndSticky
)

func (t EndType) String() string {
	switch t {
	case EndBlunt:
		return "blunt"
	case EndSticky:
		return "sticky"
	default:
		return "unknown"
	}
}

// End is one fragment terminus: blunt, or sticky with its overhang motif.
type End struct {
	Type EndType
	Seq  string
}

// Terminus is the end an enzyme's cut leaves behind.
func Terminus(e Enzyme) End {
	if e.Sticky() {
		return End{Type: EndSticky, Seq: e.Overhang}
	}
	return End{Type: EndBlunt}
}

// CanLigate reports whether two termini are compatible: blunt ends always
// ligate to each other, sticky ends only when their overhangs are
// identical or exact reverse complements, and an unknown end never
// ligates.
func CanLigate(a, b End) bool {
	switch {
	case a.Type == EndUnknown || b.Type == EndUnknown:
		return false
	case a.Type == EndBlunt && b.Type == EndBlunt:
		return true
	case a.Type == EndSticky && b.Type == EndSticky:
		return a.Seq == b.Seq || a.Seq == seq.ReverseComplement(b.Seq)
	default:
		return false
	}
}

// Relation is the pairwise relationship of two overhang motifs.
type Relation int

const (
	RelNone Relation = iota
	RelSame
	RelRevComp
)

func (r Relation) String() string {
	switch r {
	case RelSame:
		return "same"
	case RelRevComp:
		return "revcomp"
	default:
		return "none"
	}
}

// OverhangMatrix computes the pairwise same/reverse-complement relation
// over a labeled list of overhang motifs. A palindromic overhang relates
// to itself as same.
func OverhangMatrix(overhangs []string) [][]Relation {
	n := len(overhangs)
	m := make([][]Relation, n)
	for i := range m {
		m[i] = make([]Relation, n)
		for j := range m[i] {
			switch {
			case overhangs[i] == overhangs[j]:
				m[i][j] = RelSame
			case overhangs[i] == seq.ReverseComplement(overhangs[j]):
				m[i][j] = RelRevComp
			}
		}
	}
	return m
}
