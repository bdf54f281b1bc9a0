// Package circ is modular coordinate arithmetic for circular templates
// (plasmids). Positions are always reduced into [0, L).
package circ

// Mod reduces pos into [0, L). L must be positive.
func Mod(pos, L int) int {
	return ((pos % L) + L) % L
}

// Subseq extracts the subsequence from start to end (exclusive) on a
// circle, wrapping through the origin when start > end. Equal positions
// mean the whole circle.
func Subseq(s string, start, end int) string {
	L := len(s)
	if L == 0 {
		return ""
	}
	start = Mod(start, L)
	end = Mod(end, L)
	switch {
	case start < end:
		return s[start:end]
	case start > end:
		return s[start:] + s[:end]
	default:
		return s[start:] + s[:start]
	}
}

// Rotate re-anchors the circle's origin at offset.
func Rotate(s string, offset int) string {
	L := len(s)
	if L == 0 {
		return ""
	}
	offset = Mod(offset, L)
	return s[offset:] + s[:offset]
}

// DistPlus is the forward-direction arc length from from to to, in
// [0, L-1].
func DistPlus(L, from, to int) int {
	return Mod(to-from, L)
}

// arc takes length bases starting at start, wrapping if needed.
func arc(s string, start, length int) string {
	L := len(s)
	start = Mod(start, L)
	if start+length <= L {
		return s[start : start+length]
	}
	return s[start:] + s[:start+length-L]
}

// ProductSeq is the PCR product on a circular template between the
// forward primer 3' position f3 and the reverse primer 3' position r3,
// inclusive of both endpoints.
func ProductSeq(s string, f3, r3 int) string {
	L := len(s)
	if L == 0 {
		return ""
	}
	return arc(s, f3, DistPlus(L, Mod(f3, L), Mod(r3, L))+1)
}

// Product is one arc of a circular template.
type Product struct {
	Seq    string
	Start  int
	End    int
	Length int
}

// Candidates are the two complementary PCR products a primer pair can
// form on a circle: the inward arc f3→r3 and the outward arc r3→f3.
// Counted inclusively, their lengths always sum to L+2.
type Candidates struct {
	Inward  Product
	Outward Product
}

// Shorter returns the arc with the smaller length, the inward arc on a
// tie.
func (c Candidates) Shorter() Product {
	if c.Outward.Length < c.Inward.Length {
		return c.Outward
	}
	return c.Inward
}

// Longer returns the arc with the larger length.
func (c Candidates) Longer() Product {
	if c.Outward.Length > c.Inward.Length {
		return c.Outward
	}
	return c.Inward
}

// ProductCandidates computes both arcs between f3 and r3. Counted
// inclusively the lengths sum to L+2; when f3 equals r3 the outward arc
// runs the whole way around and revisits its start. An empty template
// yields the degenerate all-empty result.
func ProductCandidates(s string, f3, r3 int) Candidates {
	L := len(s)
	if L == 0 {
		return Candidates{}
	}
	f3 = Mod(f3, L)
	r3 = Mod(r3, L)

	din := DistPlus(L, f3, r3)
	inward := arc(s, f3, din+1)
	outward := arc(s, r3, L-din+1)
	return Candidates{
		Inward:  Product{Seq: inward, Start: f3, End: r3, Length: len(inward)},
		Outward: Product{Seq: outward, Start: r3, End: f3, Length: len(outward)},
	}
}
