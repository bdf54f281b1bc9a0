// Package amplicon finds tolerant primer binding sites on templates with
// a seed-and-extend strategy: the 3' end of a primer must match exactly,
// the 5' remainder tolerates a bounded fraction of mismatches.
package amplicon

import "plexer/internal/seq"

const (
	defaultSeedLen  = 10
	defaultMaxRatio = 0.2
)

// MatchAt reports whether primer binds template at pos. The last seedLen
// bases (the extension-critical 3' end) must match position for position;
// the 5'-ward prefix tolerates up to maxRatio of its own length in
// mismatches. seedLen of 0 or less means min(10, primer length); a
// negative maxRatio means the 0.2 default. Base comparison is
// ambiguity-aware on both sides.
func MatchAt(template string, pos int, primer string, seedLen int, maxRatio float64) bool {
	n := len(primer)
	if n == 0 || pos < 0 || pos+n > len(template) {
		return false
	}
	if seedLen <= 0 || seedLen > n {
		seedLen = defaultSeedLen
		if n < seedLen {
			seedLen = n
		}
	}
	if maxRatio < 0 {
		maxRatio = defaultMaxRatio
	}

	for j := n - seedLen; j < n; j++ {
		if !seq.Compat(template[pos+j], primer[j]) {
			return false
		}
	}

	prefix := n - seedLen
	allowed := int(maxRatio * float64(prefix))
	mm := 0
	for j := 0; j < prefix; j++ {
		if !seq.Compat(template[pos+j], primer[j]) {
			mm++
			if mm > allowed {
				return false
			}
		}
	}
	return true
}

// Amplicon is one candidate product: a forward hit paired with a
// downstream reverse-complement hit.
type Amplicon struct {
	FwdPos int
	RevPos int
	Start  int
	End    int // exclusive
	Length int
	Seq    string
}

// Find scans every template position for tolerant matches of fwd and of
// the reverse complement of rev, then pairs every forward hit with every
// strictly-downstream reverse hit.
func Find(template, fwd, rev string, seedLen int, maxRatio float64) []Amplicon {
	t := seq.Normalize(template)
	f := seq.Normalize(fwd)
	r := seq.ReverseComplement(seq.Normalize(rev))
	if len(t) == 0 || len(f) == 0 || len(r) == 0 {
		return nil
	}

	var fwdHits, revHits []int
	for pos := 0; pos+len(f) <= len(t); pos++ {
		if MatchAt(t, pos, f, seedLen, maxRatio) {
			fwdHits = append(fwdHits, pos)
		}
	}
	for pos := 0; pos+len(r) <= len(t); pos++ {
		if MatchAt(t, pos, r, seedLen, maxRatio) {
			revHits = append(revHits, pos)
		}
	}

	var out []Amplicon
	for _, fp := range fwdHits {
		for _, rp := range revHits {
			if fp >= rp {
				continue
			}
			end := rp + len(r)
			out = append(out, Amplicon{
				FwdPos: fp,
				RevPos: rp,
				Start:  fp,
				End:    end,
				Length: end - fp,
				Seq:    t[fp:end],
			})
		}
	}
	return out
}

// Template is a named caller-supplied sequence.
type Template struct {
	Name string
	Seq  string
}

// OffTargets screens a primer pair against a set of templates and
// returns, in input order, the names of every template other than the
// pair's own target that yields at least one amplicon.
func OffTargets(fwd, rev, target string, templates []Template, seedLen int, maxRatio float64) []string {
	var hits []string
	for _, tmpl := range templates {
		if tmpl.Name == target {
			continue
		}
		if len(Find(tmpl.Seq, fwd, rev, seedLen, maxRatio)) > 0 {
			hits = append(hits, tmpl.Name)
		}
	}
	return hits
}
