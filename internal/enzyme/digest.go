package enzyme

import (
	"fmt"
	"sort"
	"strings"

	"plexer/internal/circ"
	"plexer/internal/seq"
)

// Cut is a Type II cut site. Top and Bottom are 0-based positions on the
// forward strand; Bottom is informational.
type Cut struct {
	SiteStart int
	Top       int
	Bottom    int
}

// IISCut is a Type IIS cut position. Forward marks cuts placed downstream
// of a forward-motif occurrence; otherwise the cut sits upstream of a
// reverse-motif occurrence. Both are forward-strand coordinates.
type IISCut struct {
	SiteStart int
	Pos       int
	Forward   bool
}

// Fragment is one digestion product. End is exclusive; on circular
// templates a fragment may wrap, in which case End < Start.
type Fragment struct {
	Start int
	End   int
	Seq   string
}

// FindSites returns the start position of every exact, possibly
// overlapping occurrence of motif in s.
func FindSites(s, motif string) []int {
	if motif == "" || len(motif) > len(s) {
		return nil
	}
	var sites []int
	for from := 0; ; {
		i := strings.Index(s[from:], motif)
		if i < 0 {
			break
		}
		sites = append(sites, from+i)
		from += i + 1
	}
	return sites
}

// CutsTypeII computes both strand cuts for every occurrence of a Type II
// enzyme's site. The name must be a Type II record.
func CutsTypeII(raw, name string) ([]Cut, error) {
	e, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnzyme, name)
	}
	if e.Class != TypeII {
		return nil, fmt.Errorf("%s is not a Type II enzyme", name)
	}

	s := seq.Normalize(raw)
	var cuts []Cut
	for _, start := range FindSites(s, e.Site) {
		cuts = append(cuts, Cut{
			SiteStart: start,
			Top:       start + e.Cut5,
			Bottom:    start + len(e.Site) - e.Cut5,
		})
	}
	return cuts, nil
}

// topCuts unions top-strand cut positions for a list of Type II enzymes,
// deduplicated and sorted.
func topCuts(s string, names []string) ([]int, error) {
	uniq := map[int]bool{}
	for _, name := range names {
		cuts, err := CutsTypeII(s, name)
		if err != nil {
			return nil, err
		}
		for _, c := range cuts {
			uniq[c.Top] = true
		}
	}
	positions := make([]int, 0, len(uniq))
	for p := range uniq {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return positions, nil
}

// DigestLinear cuts a linear sequence with one enzyme. With no sites the
// whole sequence comes back as a single fragment.
func DigestLinear(raw, name string) ([]Fragment, error) {
	return DigestLinearMulti(raw, []string{name})
}

// DigestLinearMulti cuts a linear sequence with the union of several
// enzymes' cut positions.
func DigestLinearMulti(raw string, names []string) ([]Fragment, error) {
	s := seq.Normalize(raw)
	cuts, err := topCuts(s, names)
	if err != nil {
		return nil, err
	}

	breaks := append([]int{0}, cuts...)
	if len(s) == 0 || breaks[len(breaks)-1] != len(s) {
		breaks = append(breaks, len(s))
	}

	var frags []Fragment
	for i := 0; i < len(breaks)-1; i++ {
		a, b := breaks[i], breaks[i+1]
		if a == b {
			continue
		}
		frags = append(frags, Fragment{Start: a, End: b, Seq: s[a:b]})
	}
	return frags, nil
}

// DigestCircular cuts a circular sequence with one enzyme. Fragments run
// between consecutive cuts, the last wrapping through the origin; with no
// sites the whole circle is one fragment.
func DigestCircular(raw, name string) ([]Fragment, error) {
	return DigestCircularMulti(raw, []string{name})
}

// DigestCircularMulti is DigestCircular with a union of enzymes.
func DigestCircularMulti(raw string, names []string) ([]Fragment, error) {
	s := seq.Normalize(raw)
	cuts, err := topCuts(s, names)
	if err != nil {
		return nil, err
	}

	if len(s) == 0 {
		return nil, nil
	}
	if len(cuts) == 0 {
		return []Fragment{{Start: 0, End: len(s), Seq: s}}, nil
	}

	frags := make([]Fragment, 0, len(cuts))
	for i, start := range cuts {
		end := cuts[(i+1)%len(cuts)]
		frags = append(frags, Fragment{Start: start, End: end, Seq: circ.Subseq(s, start, end)})
	}
	return frags, nil
}

// CutsTypeIIS scans the forward and reverse motifs independently.
// Forward occurrences cut downstream of the site end, reverse occurrences
// upstream of the site start; cuts falling outside the sequence are
// dropped.
func CutsTypeIIS(raw, name string) ([]IISCut, error) {
	e, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnzyme, name)
	}
	if e.Class != TypeIIS {
		return nil, fmt.Errorf("%s is not a Type IIS enzyme", name)
	}

	s := seq.Normalize(raw)
	var cuts []IISCut
	for _, start := range FindSites(s, e.Site) {
		pos := start + len(e.Site) + e.CutF
		if pos >= 0 && pos <= len(s) {
			cuts = append(cuts, IISCut{SiteStart: start, Pos: pos, Forward: true})
		}
	}
	for _, start := range FindSites(s, e.RC) {
		pos := start - e.CutR
		if pos >= 0 && pos <= len(s) {
			cuts = append(cuts, IISCut{SiteStart: start, Pos: pos})
		}
	}
	return cuts, nil
}

// OverhangSlice is the sequence context around one Type IIS cut. No
// strand topology is inferred; these are plain forward-strand slices.
type OverhangSlice struct {
	Pos        int
	Upstream   string
	Downstream string
}

// TypeIISOverhangs reports the slices of width window around every cut of
// the named enzyme. window of 0 or less means the enzyme's own overhang
// length.
func TypeIISOverhangs(raw, name string, window int) ([]OverhangSlice, error) {
	e, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnzyme, name)
	}
	if window <= 0 {
		window = e.OverhangLen
	}

	cuts, err := CutsTypeIIS(raw, name)
	if err != nil {
		return nil, err
	}

	s := seq.Normalize(raw)
	out := make([]OverhangSlice, 0, len(cuts))
	for _, c := range cuts {
		up := c.Pos - window
		if up < 0 {
			up = 0
		}
		down := c.Pos + window
		if down > len(s) {
			down = len(s)
		}
		out = append(out, OverhangSlice{
			Pos:        c.Pos,
			Upstream:   s[up:c.Pos],
			Downstream: s[c.Pos:down],
		})
	}
	return out, nil
}
