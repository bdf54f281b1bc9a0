package fold

// Severity is a coarse three-way verdict on an interaction, kept as an
// enum so callers can map it to whatever presentation they want.
type Severity int

const (
	Ok Severity = iota
	Warn
	Bad
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Bad:
		return "bad"
	default:
		return "ok"
	}
}

// Class is the qualitative reading of an interaction ΔG.
type Class struct {
	Label      string
	Severity   Severity
	ThreePrime bool
}

// ClassifyDG buckets a ΔG into weak/moderate/strong/very strong and marks
// 3'-anchored interactions, which a polymerase can extend. NaN falls
// through every threshold and classifies as weak.
func ClassifyDG(dG float64, touches3 bool) Class {
	var label string
	var sev Severity
	switch {
	case dG <= -7:
		label, sev = "very strong", Bad
	case dG <= -5:
		label, sev = "strong", Bad
	case dG <= -3:
		label, sev = "moderate", Warn
	default:
		label, sev = "weak", Ok
	}

	tp := touches3 && sev != Ok
	if tp {
		label = "3' " + label
	}
	return Class{Label: label, Severity: sev, ThreePrime: tp}
}
