// Package enzyme implements the restriction digestion engine: a static
// reference database of Type II and Type IIS enzymes, cut-site
// computation on linear and circular templates, and terminus/overhang
// compatibility.
package enzyme

import (
	"errors"
	"fmt"
	"sort"
)

// Class distinguishes enzymes cutting within their recognition site from
// those cutting at a fixed distance outside it.
type Class int

const (
	TypeII Class = iota
	TypeIIS
)

func (c Class) String() string {
	if c == TypeIIS {
		return "Type IIS"
	}
	return "Type II"
}

// Enzyme is one immutable database record. Type II records use Site,
// Cut5 and Overhang; Type IIS records use Site, RC, OverhangLen, CutF
// and CutR.
type Enzyme struct {
	Name  string
	Class Class

	Site string // forward recognition motif

	// Type II
	Cut5     int    // top-strand cut offset from site start
	Overhang string // sticky overhang motif, "" for blunt cutters

	// Type IIS
	RC          string // reverse-strand recognition motif
	OverhangLen int
	CutF        int // downstream cut distance from the site end
	CutR        int // upstream cut distance from the rc-site start
}

// Sticky reports whether the enzyme leaves single-stranded overhangs.
func (e Enzyme) Sticky() bool {
	if e.Class == TypeIIS {
		return e.OverhangLen > 0
	}
	return e.Overhang != ""
}

// the two raw reference sets are disjoint by name and merged once at init

var typeIIRaw = []Enzyme{
	{Name: "EcoRI", Site: "GAATTC", Cut5: 1, Overhang: "AATT"},
	{Name: "BamHI", Site: "GGATCC", Cut5: 1, Overhang: "GATC"},
	{Name: "HindIII", Site: "AAGCTT", Cut5: 1, Overhang: "AGCT"},
	{Name: "XhoI", Site: "CTCGAG", Cut5: 1, Overhang: "TCGA"},
	{Name: "SalI", Site: "GTCGAC", Cut5: 1, Overhang: "TCGA"},
	{Name: "NcoI", Site: "CCATGG", Cut5: 1, Overhang: "CATG"},
	{Name: "XbaI", Site: "TCTAGA", Cut5: 1, Overhang: "CTAG"},
	{Name: "SpeI", Site: "ACTAGT", Cut5: 1, Overhang: "CTAG"},
	{Name: "NheI", Site: "GCTAGC", Cut5: 1, Overhang: "CTAG"},
	{Name: "NdeI", Site: "CATATG", Cut5: 2, Overhang: "TA"},
	{Name: "NotI", Site: "GCGGCCGC", Cut5: 2, Overhang: "GGCC"},
	{Name: "KpnI", Site: "GGTACC", Cut5: 5, Overhang: "GTAC"},
	{Name: "SacI", Site: "GAGCTC", Cut5: 5, Overhang: "AGCT"},
	{Name: "PstI", Site: "CTGCAG", Cut5: 5, Overhang: "TGCA"},
	{Name: "SphI", Site: "GCATGC", Cut5: 5, Overhang: "CATG"},
	{Name: "EcoRV", Site: "GATATC", Cut5: 3},
	{Name: "SmaI", Site: "CCCGGG", Cut5: 3},
	{Name: "HpaI", Site: "GTTAAC", Cut5: 3},
	{Name: "PvuII", Site: "CAGCTG", Cut5: 3},
	{Name: "ScaI", Site: "AGTACT", Cut5: 3},
}

var typeIISRaw = []Enzyme{
	{Name: "BsaI", Site: "GGTCTC", RC: "GAGACC", OverhangLen: 4, CutF: 1, CutR: 5},
	{Name: "BsmBI", Site: "CGTCTC", RC: "GAGACG", OverhangLen: 4, CutF: 1, CutR: 5},
	{Name: "BbsI", Site: "GAAGAC", RC: "GTCTTC", OverhangLen: 4, CutF: 2, CutR: 6},
	{Name: "SapI", Site: "GCTCTTC", RC: "GAAGAGC", OverhangLen: 3, CutF: 1, CutR: 4},
	{Name: "PaqCI", Site: "CACCTGC", RC: "GCAGGTG", OverhangLen: 4, CutF: 4, CutR: 8},
}

var db map[string]Enzyme

func init() {
	db = make(map[string]Enzyme, len(typeIIRaw)+len(typeIISRaw))
	for _, e := range typeIIRaw {
		e.Class = TypeII
		db[e.Name] = e
	}
	for _, e := range typeIISRaw {
		e.Class = TypeIIS
		if _, dup := db[e.Name]; dup {
			panic(fmt.Sprintf("enzyme %s in both reference sets", e.Name))
		}
		db[e.Name] = e
	}
}

// ErrUnknownEnzyme is returned when a requested name is not in the
// reference database.
var ErrUnknownEnzyme = errors.New("unknown enzyme")

// Get looks an enzyme up by name.
func Get(name string) (Enzyme, bool) {
	e, ok := db[name]
	return e, ok
}

// Names lists every enzyme in the database, sorted.
func Names() []string {
	names := make([]string, 0, len(db))
	for name := range db {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
